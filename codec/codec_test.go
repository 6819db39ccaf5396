package codec_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sooomo/ranged"
	"github.com/sooomo/ranged/codec"
	"github.com/sooomo/ranged/collection"
)

var marshalers = []struct {
	name string
	m    codec.Marshaler
}{
	{name: "json", m: codec.Json},
	{name: "msgpack", m: codec.MsgPack},
	{name: "yaml", m: codec.Yaml},
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, tt := range marshalers {
		t.Run(tt.name, func(t *testing.T) {
			c := &collection.ArrayList[int]{}
			c.PushAll(1, 2, 3)
			r, err := ranged.New[int](c, 1, 5)
			if err != nil {
				t.Fatalf("New(1, 5) = %v, want nil", err)
			}

			data, err := codec.Encode(tt.m, r)
			if err != nil {
				t.Fatalf("Encode() = %v, want nil", err)
			}

			back, err := codec.Decode[int](tt.m, data, &collection.ArrayList[int]{}, 1, 5)
			if err != nil {
				t.Fatalf("Decode() = %v, want nil", err)
			}
			got, _ := back.View()
			if !cmp.Equal(got, []int{1, 2, 3}) {
				t.Errorf("round trip = %v, want [1 2 3]", got)
			}
		})
	}
}

func TestEncode_EmptyCollection(t *testing.T) {
	for _, tt := range marshalers {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ranged.New[int](&collection.ArrayList[int]{}, 0, 3)
			if err != nil {
				t.Fatalf("New(0, 3) = %v, want nil", err)
			}
			data, err := codec.Encode(tt.m, r)
			if err != nil {
				t.Fatalf("Encode() = %v, want nil", err)
			}
			back, err := codec.Decode[int](tt.m, data, &collection.ArrayList[int]{}, 0, 3)
			if err != nil {
				t.Fatalf("Decode() = %v, want nil", err)
			}
			if sz := back.Size(); sz != 0 {
				t.Errorf("size = %v, want 0", sz)
			}
		})
	}
}

func TestDecode_Revalidates(t *testing.T) {
	for _, tt := range marshalers {
		t.Run(tt.name, func(t *testing.T) {
			c := &collection.ArrayList[int]{}
			c.PushAll(1, 2, 3, 4)
			r, err := ranged.New[int](c, 0, 10)
			if err != nil {
				t.Fatalf("New(0, 10) = %v, want nil", err)
			}
			data, err := codec.Encode(tt.m, r)
			if err != nil {
				t.Fatalf("Encode() = %v, want nil", err)
			}

			// 界收紧后解码必须失败，而不是悄悄截断
			if _, err := codec.Decode[int](tt.m, data, &collection.ArrayList[int]{}, 0, 3); !errors.Is(err, ranged.ErrTooLarge) {
				t.Errorf("Decode(0, 3) = %v, want ErrTooLarge", err)
			}
			// 也不是悄悄补齐
			if _, err := codec.Decode[int](tt.m, data, &collection.ArrayList[int]{}, 5, 10); !errors.Is(err, ranged.ErrTooSmall) {
				t.Errorf("Decode(5, 10) = %v, want ErrTooSmall", err)
			}
		})
	}
}

func TestEncodeDecode_LinkList(t *testing.T) {
	l := &collection.LinkList[string]{}
	l.Push("a")
	l.Push("b")
	r, err := ranged.New[string](l, 1, 3)
	if err != nil {
		t.Fatalf("New(1, 3) = %v, want nil", err)
	}
	data, err := codec.Encode(codec.Json, r)
	if err != nil {
		t.Fatalf("Encode() = %v, want nil", err)
	}
	back, err := codec.Decode[string](codec.Json, data, &collection.LinkList[string]{}, 1, 3)
	if err != nil {
		t.Fatalf("Decode() = %v, want nil", err)
	}
	got, _ := back.View()
	if !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("round trip = %v, want [a b]", got)
	}
}

func TestDecode_BadData(t *testing.T) {
	if _, err := codec.Decode[int](codec.Json, []byte("{not json"), &collection.ArrayList[int]{}, 0, 3); err == nil {
		t.Errorf("Decode() = nil, want error")
	}
}

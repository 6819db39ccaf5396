package collection_test

import (
	"errors"
	"testing"

	"github.com/sooomo/ranged"
	"github.com/sooomo/ranged/collection"
	"github.com/sooomo/ranged/rangedtest"
)

func TestRunes_Suite(t *testing.T) {
	rangedtest.Collection(t, func() *collection.Runes { return &collection.Runes{} }, func(i int) rune { return rune('a' + i) })
	rangedtest.Ranged(t, func() *collection.Runes { return &collection.Runes{} }, func(i int) rune { return rune('a' + i) })
}

func TestRunes_String(t *testing.T) {
	r := collection.NewRunes("好的")
	r.Push('!')
	if got := r.String(); got != "好的!" {
		t.Errorf("String() = %v, want 好的!", got)
	}
	if val, ok := r.Pop(); !ok || val != '!' {
		t.Errorf("Pop() = %q, %v, want '!', true", val, ok)
	}
	if sz := r.Size(); sz != 2 {
		t.Errorf("Size() = %v, want 2", sz)
	}
}

func TestNonEmptyText(t *testing.T) {
	if _, err := collection.NewNonEmptyText(""); !errors.Is(err, ranged.ErrTooSmall) {
		t.Errorf("NewNonEmptyText(\"\") = %v, want ErrTooSmall", err)
	}

	txt, err := collection.NewNonEmptyText("go")
	if err != nil {
		t.Fatalf("NewNonEmptyText(\"go\") = %v, want nil", err)
	}
	if val, ok := txt.Pop(); !ok || val != 'o' {
		t.Errorf("Pop() = %q, %v, want 'o', true", val, ok)
	}
	// 只剩一个字符，非空下界拒绝再弹
	if _, ok := txt.Pop(); ok {
		t.Errorf("Pop() at min: ok = true, want false")
	}
	if got := txt.Inner().String(); got != "g" {
		t.Errorf("String() = %v, want g", got)
	}
}

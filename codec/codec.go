package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shamaton/msgpack/v2"
	"github.com/sooomo/ranged"
	"gopkg.in/yaml.v3"
)

// 底层集合未实现 ranged.Viewer，无法取出元素序列
var ErrNotViewable = errors.New("codec: collection does not implement ranged.Viewer")

// 序列化器抽象，便于在 json/msgpack/yaml 之间切换
type Marshaler interface {
	Marshal(val any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

var (
	Json    Marshaler = jsonMarshaler{}
	MsgPack Marshaler = msgpackMarshaler{}
	Yaml    Marshaler = yamlMarshaler{}
)

type jsonMarshaler struct{}

func (jsonMarshaler) Marshal(val any) ([]byte, error) { return json.Marshal(val) }

func (jsonMarshaler) Unmarshal(data []byte, out any) error { return json.Unmarshal(data, out) }

type msgpackMarshaler struct{}

func (msgpackMarshaler) Marshal(val any) ([]byte, error) { return msgpack.Marshal(val) }

func (msgpackMarshaler) Unmarshal(data []byte, out any) error { return msgpack.Unmarshal(data, out) }

type yamlMarshaler struct{}

func (yamlMarshaler) Marshal(val any) ([]byte, error) { return yaml.Marshal(val) }

func (yamlMarshaler) Unmarshal(data []byte, out any) error { return yaml.Unmarshal(data, out) }

// 把包装器编码成与底层集合一致的元素序列，不携带界信息
func Encode[T any, C ranged.Collection[T]](m Marshaler, r *ranged.Ranged[T, C]) ([]byte, error) {
	items, ok := r.View()
	if !ok {
		return nil, ErrNotViewable
	}
	if items == nil {
		items = []T{}
	}
	return m.Marshal(items)
}

// 解码元素序列到 into（应传入空集合），并重新校验长度范围。
// 长度越界时返回包装了 ranged.ErrTooLarge/ErrTooSmall 的错误，不做截断也不做补齐
func Decode[T any, C ranged.Collection[T]](m Marshaler, data []byte, into C, min, max int) (*ranged.Ranged[T, C], error) {
	var items []T
	if err := m.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	ranged.Reserve[T](into, len(items))
	for _, val := range items {
		into.Push(val)
	}
	out, err := ranged.New[T](into, min, max)
	if err != nil {
		return nil, fmt.Errorf("codec: decoded collection does not fit: %w", err)
	}
	return out, nil
}

package message

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type valueKind int

const (
	kindInt valueKind = iota + 1
	kindString
)

// Value 字段值：整数或字符串
type Value struct {
	kind valueKind
	i    int
	s    string
}

// Int 创建整数值
func Int(v int) Value {
	return Value{kind: kindInt, i: v}
}

// String 创建字符串值
func String(s string) Value {
	return Value{kind: kindString, s: s}
}

// AsInt 返回整数值，类型不符时 ok=false
func (v Value) AsInt() (int, bool) {
	return v.i, v.kind == kindInt
}

// AsString 返回字符串值，类型不符时 ok=false
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == kindString
}

func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return fmt.Sprintf("%d", v.i)
	case kindString:
		return fmt.Sprintf("%q", v.s)
	}
	return "<invalid>"
}

// MarshalYAML 以原始整数或字符串输出
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case kindInt:
		return v.i, nil
	case kindString:
		return v.s, nil
	}
	return nil, fmt.Errorf("invalid message value")
}

// Dict 一条消息
type Dict map[Key]Value

// Keys 返回按数值排序的键
func (d Dict) Keys() []Key {
	keys := make([]Key, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Clone 返回浅拷贝
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// MarshalYAML 按键的数值顺序输出，键名使用 Key.String()
func (d Dict) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.Keys() {
		var value yaml.Node
		if err := value.Encode(d[k]); err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()},
			&value)
	}
	return node, nil
}

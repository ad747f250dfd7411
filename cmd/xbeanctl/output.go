package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/omeyang/xbean/pkg/collection/xcoll"
)

// rawOutput 原样输出，不经过 JSON/YAML 编码。用于 decimal 结果，避免精度损失。
type rawOutput string

// object 是保持 key 顺序的输出对象。
type object []yaml.MapItem

// MarshalYAML 按插入顺序输出。
func (o object) MarshalYAML() (any, error) {
	return yaml.MapSlice(o), nil
}

// MarshalJSON 按插入顺序输出，encoding/json 对 map 会按 key 排序。
func (o object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, item := range o {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// objectOf 把分组结果转为输出对象，key 渲染为文本（见 renderKeys）。
func objectOf[V any](m *xcoll.OrderedMap[any, V]) object {
	keys := renderKeys(m.Keys())
	o := make(object, 0, m.Len())
	for _, v := range m.Values() {
		o = append(o, yaml.MapItem{Key: keys[len(o)], Value: normalize(v)})
	}
	return o
}

// renderKeys 逐个渲染 key。不同的 key 渲染出相同文本时（如 1 与 "1"、nil 与 "null"），
// 字符串 key 加引号，其他 key 附带 Go 类型；仍然重复的再附加序号。
func renderKeys(keys []any) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = keyString(k)
	}
	for i, n := range countKeys(out) {
		if n < 2 {
			continue
		}
		if s, ok := keys[i].(string); ok {
			out[i] = strconv.Quote(s)
		} else {
			out[i] = fmt.Sprintf("%s (%T)", out[i], keys[i])
		}
	}
	for i, n := range countKeys(out) {
		if n > 1 {
			out[i] = fmt.Sprintf("%s #%d", out[i], i)
		}
	}
	return out
}

// countKeys 返回每个位置上的文本出现的总次数。
func countKeys(keys []string) []int {
	seen := make(map[string]int, len(keys))
	for _, k := range keys {
		seen[k]++
	}
	out := make([]int, len(keys))
	for i, k := range keys {
		out[i] = seen[k]
	}
	return out
}

// keyString 渲染分组 key：null 为 "null"，复合值按 JSON 编码。
func keyString(k any) string {
	switch v := k.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v)
	}
	data, err := json.Marshal(normalize(k))
	if err != nil {
		return fmt.Sprint(k)
	}
	return string(data)
}

// normalize 把结果转为两种编码器都能处理的形态。
// 非字符串 key 的 map 转为 object，切片逐项处理。
func normalize(v any) any {
	switch x := v.(type) {
	case object:
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		ks := make([]any, 0, len(x))
		for k := range x {
			ks = append(ks, k)
		}
		names := renderKeys(ks)
		out := make(object, len(ks))
		for i, k := range ks {
			out[i] = yaml.MapItem{Key: names[i], Value: normalize(x[k])}
		}
		return out
	case yaml.MapSlice:
		ks := make([]any, len(x))
		for i, item := range x {
			ks[i] = item.Key
		}
		names := renderKeys(ks)
		out := make(object, len(x))
		for i, item := range x {
			out[i] = yaml.MapItem{Key: names[i], Value: normalize(item.Value)}
		}
		return out
	default:
		return v
	}
}

// encodeJSON 以两空格缩进编码。
func encodeJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

package xprop

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// typeInfo 是结构体类型的属性索引，按 (类型, tag 名) 缓存。
type typeInfo struct {
	// fields 导出字段名 → 字段索引，包含提升字段
	fields map[string][]int
	// tags tag 名 → 字段索引
	tags map[string][]int
	// order 导出字段名，按声明顺序
	order []string
}

type typeKey struct {
	typ reflect.Type
	tag string
}

var typeInfos sync.Map // typeKey → *typeInfo

func infoOf(t reflect.Type, tagName string) *typeInfo {
	key := typeKey{typ: t, tag: tagName}
	if v, ok := typeInfos.Load(key); ok {
		return v.(*typeInfo)
	}

	info := &typeInfo{
		fields: make(map[string][]int),
		tags:   make(map[string][]int),
	}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		info.fields[f.Name] = f.Index
		info.order = append(info.order, f.Name)
		if tagName == "" {
			continue
		}
		if name, _, _ := strings.Cut(f.Tag.Get(tagName), ","); name != "" && name != "-" {
			if _, dup := info.tags[name]; !dup {
				info.tags[name] = f.Index
			}
		}
	}

	actual, _ := typeInfos.LoadOrStore(key, info)
	return actual.(*typeInfo)
}

// exportedName 把属性名首字母转为大写，"userInfo" → "UserInfo"。
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

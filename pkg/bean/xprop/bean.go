package xprop

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/omeyang/xbean/pkg/bean/xconv"
	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
)

var errorType = reflect.TypeFor[error]()

// readField 读取 bean 属性。查找顺序：
//
//  1. 导出字段（属性名首字母大写，含提升字段）
//  2. 无参方法 Name() / GetName() / IsName()，Is 前缀只接受 bool 结果；
//     方法可返回 (T) 或 (T, error)，T 不能是 error，因此 Close() error 这类方法不会被读取调用
//  3. tag 名匹配的导出字段（默认 json）
func (r *Resolver) readField(v reflect.Value, name string) (reflect.Value, bool, error) {
	info := infoOf(v.Type(), r.tagName)
	exported := exportedName(name)

	if idx, ok := info.fields[exported]; ok {
		return readIndex(v, idx, name)
	}
	for _, prefix := range [...]string{"", "Get", "Is"} {
		m := methodOf(v, prefix+exported)
		if m.IsValid() && isGetter(m.Type(), prefix == "Is") {
			return callGetter(m, name)
		}
	}
	if idx, ok := info.tags[name]; ok {
		return readIndex(v, idx, name)
	}
	return reflect.Value{}, false, noSuchProperty(v, name)
}

func readIndex(v reflect.Value, idx []int, name string) (reflect.Value, bool, error) {
	f, err := v.FieldByIndexErr(idx)
	if err != nil {
		// 经由 nil 嵌入指针提升的字段
		return reflect.Value{}, false, nil
	}
	if !f.CanInterface() {
		return reflect.Value{}, false, xerrs.New(xerrs.KindNoSuchProperty, "",
			"property %q of %s is not accessible", name, v.Type())
	}
	return f, true, nil
}

// methodOf 查找导出方法，值不可寻址时对指针接收者方法使用副本。
func methodOf(v reflect.Value, name string) reflect.Value {
	if !v.CanInterface() {
		return reflect.Value{}
	}
	if v.CanAddr() {
		return v.Addr().MethodByName(name)
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m
	}
	if _, ok := reflect.PointerTo(v.Type()).MethodByName(name); !ok {
		return reflect.Value{}
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p.MethodByName(name)
}

func isGetter(t reflect.Type, boolOnly bool) bool {
	if t.NumIn() != 0 || t.NumOut() == 0 || t.Out(0) == errorType {
		return false
	}
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return false
		}
	default:
		return false
	}
	return !boolOnly || t.Out(0).Kind() == reflect.Bool
}

func callGetter(m reflect.Value, name string) (reflect.Value, bool, error) {
	out := m.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, false, xerrs.New(xerrs.KindUnknown, "",
			"getter of %q failed", name).WithCause(out[1].Interface().(error))
	}
	return out[0], true, nil
}

// writeField 写入 bean 属性。查找顺序：可写导出字段 → SetName(v) 方法 → tag 匹配字段。
// 值按目标类型经 xconv 转换。
func (r *Resolver) writeField(v reflect.Value, name string, value any) error {
	if !v.CanAddr() {
		return xerrs.New(xerrs.KindNotWritable, "",
			"%s is not addressable, pass a pointer to write %q", v.Type(), name)
	}
	info := infoOf(v.Type(), r.tagName)
	exported := exportedName(name)

	idx, hasField := info.fields[exported]
	if hasField {
		if f, ok := fieldForWrite(v, idx); ok {
			return assign(f, value)
		}
	}
	if m := v.Addr().MethodByName("Set" + exported); m.IsValid() && isSetter(m.Type()) {
		return callSetter(m, name, value)
	}
	if !hasField {
		if idx, hasField = info.tags[name]; hasField {
			if f, ok := fieldForWrite(v, idx); ok {
				return assign(f, value)
			}
		}
	}
	if hasField {
		return xerrs.New(xerrs.KindNotWritable, "", "property %q of %s is not settable", name, v.Type())
	}
	return noSuchProperty(v, name)
}

// fieldForWrite 按索引取字段，沿途为 nil 嵌入指针分配零值。
func fieldForWrite(v reflect.Value, idx []int) (reflect.Value, bool) {
	for i, x := range idx {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, v.CanSet()
}

func assign(f reflect.Value, value any) error {
	conv, err := xconv.To(value, f.Type())
	if err != nil {
		return err
	}
	f.Set(conv)
	return nil
}

func isSetter(t reflect.Type) bool {
	if t.NumIn() != 1 {
		return false
	}
	return t.NumOut() == 0 || t.NumOut() == 1 && t.Out(0) == errorType
}

func callSetter(m reflect.Value, name string, value any) error {
	arg, err := xconv.To(value, m.Type().In(0))
	if err != nil {
		return err
	}
	out := m.Call([]reflect.Value{arg})
	if len(out) == 1 && !out[0].IsNil() {
		return xerrs.New(xerrs.KindNotWritable, "", "setter of %q failed", name).
			WithCause(out[0].Interface().(error))
	}
	return nil
}

func noSuchProperty(v reflect.Value, name string) error {
	return xerrs.New(xerrs.KindNoSuchProperty, "", "%s has no property %q", v.Type(), name)
}

// property 是 bean 上一个可读属性的快照。
type property struct {
	name  string
	value any
}

// properties 列出 bean 的全部可读属性：结构体为导出字段（声明顺序），
// map 为全部 key（按文本排序）。
func (r *Resolver) properties(op string, bean any) ([]property, error) {
	v := indirect(reflect.ValueOf(bean))
	if !v.IsValid() {
		return nil, xerrs.InvalidArgument(op, "bean is nil")
	}

	switch v.Kind() {
	case reflect.Struct:
		info := infoOf(v.Type(), r.tagName)
		props := make([]property, 0, len(info.order))
		for _, name := range info.order {
			f, err := v.FieldByIndexErr(info.fields[name])
			if err != nil || !f.CanInterface() {
				continue
			}
			props = append(props, property{name: name, value: export(f)})
		}
		return props, nil
	case reflect.Map:
		props := make([]property, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			props = append(props, property{
				name:  fmt.Sprint(iter.Key().Interface()),
				value: export(iter.Value()),
			})
		}
		slices.SortFunc(props, func(a, b property) int { return cmp.Compare(a.name, b.name) })
		return props, nil
	default:
		return nil, xerrs.New(xerrs.KindTypeMismatch, op, "%s is not a bean", v.Type()).WithRoot(bean)
	}
}

// GetProperty 读取 bean 的单个属性，name 不按路径语法解析。
// map 按 key 读取，缺失的 key 返回 nil。
func (r *Resolver) GetProperty(bean any, name string) (any, error) {
	if isBlank(name) {
		return nil, xerrs.InvalidArgument(opGetProperty, "property name is blank")
	}
	v, _, err := r.lenient().lookup(opGetProperty, bean, xpath.New(xpath.Field(name)))
	return v, err
}

// SetProperty 写入 bean 的单个属性。bean 为结构体时必须传指针。
func (r *Resolver) SetProperty(bean any, name string, value any) error {
	if isBlank(name) {
		return xerrs.InvalidArgument(opSetProperty, "property name is blank")
	}
	return r.lenient().setPath(opSetProperty, bean, xpath.New(xpath.Field(name)), value)
}

// CopyProperties 把 src 的属性复制到 dst（结构体指针或 map）。
//
// 指定 names 时逐个复制，任何一个读取、转换或写入失败都返回错误；
// 不指定时尽力复制 src 的全部可读属性，dst 上不存在、不可写或类型无法转换的属性被跳过。
func (r *Resolver) CopyProperties(dst, src any, names ...string) error {
	if !indirect(reflect.ValueOf(dst)).IsValid() {
		return xerrs.InvalidArgument(opCopy, "destination is nil")
	}
	if !indirect(reflect.ValueOf(src)).IsValid() {
		return xerrs.InvalidArgument(opCopy, "source is nil")
	}
	l := r.lenient()

	if len(names) > 0 {
		for _, name := range names {
			if isBlank(name) {
				return xerrs.InvalidArgument(opCopy, "property name is blank")
			}
		}
		for _, name := range names {
			v, err := l.GetProperty(src, name)
			if err != nil {
				return wrapOp(opCopy, err)
			}
			if err := l.SetProperty(dst, name, v); err != nil {
				return wrapOp(opCopy, err)
			}
		}
		return nil
	}

	props, err := l.properties(opCopy, src)
	if err != nil {
		return err
	}
	for _, p := range props {
		_ = l.SetProperty(dst, p.name, p.value)
	}
	return nil
}

// Describe 返回 bean 全部可读属性的快照。结构体以 Go 字段名为 key。
func (r *Resolver) Describe(bean any) (map[string]any, error) {
	props, err := r.properties(opDescribe, bean)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(props))
	for _, p := range props {
		out[p.name] = p.value
	}
	return out, nil
}

// lenient 返回允许以字段语法读写 map 的副本，供单属性操作使用。
func (r *Resolver) lenient() *Resolver {
	if r.mapFields {
		return r
	}
	c := *r
	c.mapFields = true
	return &c
}

func wrapOp(op string, err error) error {
	if e, ok := err.(*xerrs.Error); ok {
		return e.WithOp(op)
	}
	return err
}

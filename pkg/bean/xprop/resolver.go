package xprop

import (
	"reflect"
	"strings"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
)

const (
	opParse       = "parse"
	opResolve     = "resolve"
	opGet         = "get"
	opSet         = "set"
	opGetProperty = "getProperty"
	opSetProperty = "setProperty"
	opCopy        = "copyProperties"
	opDescribe    = "describe"
)

// Resolver 沿路径在对象图上读写值。
//
// Resolver 创建后不可修改，可在多个 goroutine 间共享。
// 包级函数使用 [Default] 返回的实例。
type Resolver struct {
	tagName   string
	mapFields bool
	cache     *xpath.Cache
}

// NewResolver 创建 Resolver。默认按 json tag 兜底匹配字段，
// 对 map 只接受 (key) 段。
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{tagName: defaultTagName}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// std 是包级函数使用的 Resolver，创建后不再修改。
var std = NewResolver()

// Default 返回包级函数及未显式指定 Resolver 的 xpred、xcoll 操作使用的 Resolver，
// 即 NewResolver() 的默认配置。它不可替换，需要其他配置时创建自己的 Resolver 并显式传递。
func Default() *Resolver {
	return std
}

// Parse 解析路径表达式。空白字符串返回 [xerrs.KindInvalidArgument]，
// 语法错误返回 [xerrs.KindInvalidPathSyntax]。配置了缓存时经缓存解析。
func (r *Resolver) Parse(s string) (xpath.Path, error) {
	if isBlank(s) {
		return xpath.Path{}, xerrs.InvalidArgument(opParse, "path is blank")
	}
	if r.cache != nil {
		return r.cache.Parse(s)
	}
	return xpath.Parse(s)
}

// Resolve 返回 root 上路径 p 处的值。
//
// 链路中间遇到 nil（指针、接口、map、slice）或缺失的 map key 时返回 (nil, nil)。
// 段与值的形态不匹配、下标越界、属性不存在时返回 *xerrs.Error。
func (r *Resolver) Resolve(root any, p xpath.Path) (any, error) {
	v, _, err := r.lookup(opResolve, root, p)
	return v, err
}

// Lookup 与 Resolve 相同，但额外报告路径上的每一跳是否都存在。
//
//   - (v, true, nil)：路径完整存在，v 可能为 nil（值本身为空）
//   - (nil, false, nil)：中途遇到 nil 或缺失的 map key
func (r *Resolver) Lookup(root any, p xpath.Path) (any, bool, error) {
	return r.lookup(opResolve, root, p)
}

// Get 解析 path 并在 root 上求值。
func (r *Resolver) Get(root any, path string) (any, error) {
	p, err := r.Parse(path)
	if err != nil {
		return nil, wrapOp(opGet, err)
	}
	v, _, err := r.lookup(opGet, root, p)
	return v, err
}

// Set 解析 path 并把 value 写入 root 上的对应位置。
//
// 写结构体字段时 root 必须是指针；value 按目标类型转换。
// 父路径为 nil 时返回 [xerrs.KindTypeMismatch]。
func (r *Resolver) Set(root any, path string, value any) error {
	p, err := r.Parse(path)
	if err != nil {
		return wrapOp(opSet, err)
	}
	return r.setPath(opSet, root, p, value)
}

// SetPath 与 Set 相同，接受已解析的路径。
func (r *Resolver) SetPath(root any, p xpath.Path, value any) error {
	return r.setPath(opSet, root, p, value)
}

func (r *Resolver) lookup(op string, root any, p xpath.Path) (any, bool, error) {
	if p.IsZero() {
		return nil, false, xerrs.InvalidArgument(op, "path is empty")
	}
	v, found, err := r.walk(reflect.ValueOf(root), p, p.Len())
	if err != nil {
		return nil, false, r.fail(op, p, root, err)
	}
	if !found {
		return nil, false, nil
	}
	return export(v), true, nil
}

func (r *Resolver) setPath(op string, root any, p xpath.Path, value any) error {
	if p.IsZero() {
		return xerrs.InvalidArgument(op, "path is empty")
	}
	parent, found, err := r.walk(reflect.ValueOf(root), p, p.Len()-1)
	if err != nil {
		return r.fail(op, p, root, err)
	}
	last := p.Last()
	target := indirect(parent)
	if !found || !target.IsValid() {
		return r.fail(op, p, root, xerrs.New(xerrs.KindTypeMismatch, "", "cannot set %s on nil", last))
	}
	acc, ok := accessorFor(target)
	if !ok {
		return r.fail(op, p, root, mismatch(target, last))
	}
	if err := acc.set(target, last, value, r); err != nil {
		return r.fail(op, p, root, err)
	}
	return nil
}

// walk 依次应用 p 的前 n 段。中途遇到 nil 或缺失的 key 时 found 为 false。
func (r *Resolver) walk(cur reflect.Value, p xpath.Path, n int) (reflect.Value, bool, error) {
	for i := range n {
		seg := p.At(i)
		cur = indirect(cur)
		if !cur.IsValid() || cur.Kind() == reflect.Slice && cur.IsNil() {
			return reflect.Value{}, false, nil
		}
		acc, ok := accessorFor(cur)
		if !ok {
			return reflect.Value{}, false, mismatch(cur, seg)
		}
		next, found, err := acc.get(cur, seg, r)
		if err != nil || !found {
			return reflect.Value{}, false, err
		}
		cur = next
	}
	return cur, true, nil
}

func (r *Resolver) fail(op string, p xpath.Path, root any, err error) error {
	e, ok := err.(*xerrs.Error)
	if !ok {
		e = xerrs.New(xerrs.KindUnknown, op, "").WithCause(err)
	}
	e = e.WithOp(op).WithRoot(root)
	if e.Path == "" {
		e = e.WithPath(p.String())
	}
	return e
}

// mapKeyOf 返回段对应的 map key 文本。宽松模式下字段段也按 key 处理。
func (r *Resolver) mapKeyOf(seg xpath.Segment) (string, bool) {
	switch {
	case seg.Kind == xpath.KindMapKey:
		return seg.Key, true
	case seg.Kind == xpath.KindField && r.mapFields:
		return seg.Name, true
	default:
		return "", false
	}
}

// indirect 穿透指针与接口，遇到 nil 返回无效值。
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// export 把解析结果转为 any，各种 typed nil 统一为 nil。
func export(v reflect.Value) any {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	return v.Interface()
}

// IsNil 报告 v 是否为 nil，包括 typed nil 的指针、接口、map、slice、func、chan。
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ---------------------------------------------------------------------------
// 包级函数，均委托给 Default()

// Parse 使用默认 Resolver 解析路径。
func Parse(s string) (xpath.Path, error) { return Default().Parse(s) }

// Resolve 使用默认 Resolver 求值，见 [Resolver.Resolve]。
func Resolve(root any, p xpath.Path) (any, error) { return Default().Resolve(root, p) }

// Lookup 使用默认 Resolver 求值并报告存在性，见 [Resolver.Lookup]。
func Lookup(root any, p xpath.Path) (any, bool, error) { return Default().Lookup(root, p) }

// Get 解析 path 并求值，见 [Resolver.Get]。
func Get(root any, path string) (any, error) { return Default().Get(root, path) }

// Set 解析 path 并写入，见 [Resolver.Set]。
func Set(root any, path string, value any) error { return Default().Set(root, path, value) }

// SetPath 按已解析路径写入，见 [Resolver.SetPath]。
func SetPath(root any, p xpath.Path, value any) error { return Default().SetPath(root, p, value) }

// GetProperty 读取单个属性，见 [Resolver.GetProperty]。
func GetProperty(bean any, name string) (any, error) { return Default().GetProperty(bean, name) }

// SetProperty 写入单个属性，见 [Resolver.SetProperty]。
func SetProperty(bean any, name string, value any) error {
	return Default().SetProperty(bean, name, value)
}

// CopyProperties 复制属性，见 [Resolver.CopyProperties]。
func CopyProperties(dst, src any, names ...string) error {
	return Default().CopyProperties(dst, src, names...)
}

// Describe 返回属性快照，见 [Resolver.Describe]。
func Describe(bean any) (map[string]any, error) { return Default().Describe(bean) }

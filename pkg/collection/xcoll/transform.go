package xcoll

import (
	"reflect"
	"strings"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/bean/xprop"
	"github.com/omeyang/xbean/pkg/collection/xkey"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

// Collect 对每个元素应用转换器，返回等长的新 slice。
// nil 元素不调用转换器，对应位置为 R 的零值。
// 基于路径的转换器默认使用 xprop.Default()，需要其他 Resolver 时用 xpred.BindTransformer 绑定。
func Collect[T, R any](coll []T, tr xpred.Transformer[T, R]) ([]R, error) {
	if err := validate(opCollect, tr); err != nil {
		return nil, err
	}
	out := make([]R, len(coll))
	for i, e := range coll {
		if xprop.IsNil(e) {
			continue
		}
		r, err := tr.Transform(e)
		if err != nil {
			return nil, elemErr(opCollect, i, err)
		}
		out[i] = r
	}
	return out, nil
}

// CollectInto 为每个元素创建一个新的 R，并复制属性（见 xprop.CopyProperties）。
//
// R 可以是结构体、结构体指针或 map。指定 names 时只复制这些属性，
// 任何一个不可读或不可写都返回错误；不指定时尽力复制全部同名属性。
// nil 元素对应 R 的零值。
func CollectInto[T, R any](coll []T, names ...string) ([]R, error) {
	return CollectIntoUsing[T, R](nil, coll, names...)
}

// CollectIntoUsing 与 CollectInto 相同，用 r 读写属性；r 为 nil 时使用 xprop.Default()。
func CollectIntoUsing[T, R any](r *xprop.Resolver, coll []T, names ...string) ([]R, error) {
	if r == nil {
		r = xprop.Default()
	}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, xerrs.InvalidArgument(opCollect, "property name is blank")
		}
	}
	newTarget, err := targetFactory[R]()
	if err != nil {
		return nil, err
	}

	out := make([]R, len(coll))
	for i, e := range coll {
		if xprop.IsNil(e) {
			continue
		}
		dst, result := newTarget()
		if err := r.CopyProperties(dst, e, names...); err != nil {
			return nil, elemErr(opCollect, i, err)
		}
		out[i] = result()
	}
	return out, nil
}

// targetFactory 返回创建 R 的函数：dst 用于写入，result 返回最终的 R。
func targetFactory[R any]() (func() (any, func() R), error) {
	t := reflect.TypeFor[R]()
	switch {
	case t.Kind() == reflect.Struct:
		return func() (any, func() R) {
			p := new(R)
			return p, func() R { return *p }
		}, nil
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		return func() (any, func() R) {
			p := reflect.New(t.Elem())
			return p.Interface(), func() R { return p.Interface().(R) }
		}, nil
	case t.Kind() == reflect.Map:
		return func() (any, func() R) {
			m := reflect.MakeMap(t)
			return m.Interface(), func() R { return m.Interface().(R) }
		}, nil
	default:
		return nil, xerrs.InvalidArgument(opCollect, "target type %s is not a struct, struct pointer or map", t)
	}
}

// RemoveDuplicate 去重，每个组合 key 保留第一个元素，不修改 coll。
//
// 组合 key 由 paths 处的值组成；不指定 paths 时按元素自身相等（xkey.Equal）。
// nil 元素各属性的值视为 nil，与 Group 的归类一致。
func RemoveDuplicate[T any](coll []T, paths ...string) ([]T, error) {
	return Query[T]{}.RemoveDuplicate(coll, paths...)
}

// RemoveDuplicate 见 [RemoveDuplicate]。
func (q Query[T]) RemoveDuplicate(coll []T, paths ...string) ([]T, error) {
	ps, err := q.parsePaths(opDedupe, paths)
	if err != nil {
		return nil, err
	}
	seen := NewOrderedSet[any]()
	out := make([]T, 0, len(coll))
	for i, e := range coll {
		k, err := q.dedupeKey(e, ps)
		if err != nil {
			return nil, elemErr(opDedupe, i, err)
		}
		if seen.Add(k) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (q Query[T]) dedupeKey(e T, ps []xpath.Path) (any, error) {
	if len(ps) == 0 {
		return e, nil
	}
	k := make(xkey.Tuple, len(ps))
	if !xprop.IsNil(e) {
		for j, p := range ps {
			v, err := q.Resolver().Resolve(e, p)
			if err != nil {
				return nil, err
			}
			k[j] = v
		}
	}
	if len(k) == 1 {
		return k[0], nil
	}
	return k, nil
}

// ForEach 把每个元素 path 处的值设为 value，跳过 nil 元素。
//
// 这是唯一修改元素的操作：值类型元素通过 &coll[i] 原位修改。
// 多个 goroutine 对重叠的元素调用时需要调用方同步。
func ForEach[T any](coll []T, path string, value any) error {
	return Query[T]{}.ForEach(coll, path, value)
}

// ForEach 见 [ForEach]。
func (q Query[T]) ForEach(coll []T, path string, value any) error {
	p, err := q.parsePath(opForEach, path)
	if err != nil {
		return err
	}
	r := q.Resolver()
	for i := range coll {
		if xprop.IsNil(coll[i]) {
			continue
		}
		if err := r.SetPath(&coll[i], p, value); err != nil {
			return elemErr(opForEach, i, err)
		}
	}
	return nil
}

// PropertyValueList 返回每个元素 path 处的值，与 coll 等长；nil 元素与链路中途的 nil 得到 nil。
func PropertyValueList[T any](coll []T, path string) ([]any, error) {
	return Query[T]{}.PropertyValueList(coll, path)
}

// PropertyValueList 见 [PropertyValueList]。
func (q Query[T]) PropertyValueList(coll []T, path string) ([]any, error) {
	p, err := q.parsePath(opValueList, path)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(coll))
	err = q.eachValue(opValueList, coll, p, func(_ int, _ T, v any) {
		out = append(out, v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PropertyValueSet 返回 path 处的值去重后的集合，保持首次出现的顺序。
func PropertyValueSet[T any](coll []T, path string) (*OrderedSet[any], error) {
	return Query[T]{}.PropertyValueSet(coll, path)
}

// PropertyValueSet 见 [PropertyValueSet]。
func (q Query[T]) PropertyValueSet(coll []T, path string) (*OrderedSet[any], error) {
	p, err := q.parsePath(opValueSet, path)
	if err != nil {
		return nil, err
	}
	out := NewOrderedSet[any]()
	err = q.eachValue(opValueSet, coll, p, func(_ int, _ T, v any) {
		out.Add(v)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PropertyValueMap 以 keyPath 处的值为 key、valuePath 处的值为值建立映射。
// key 冲突时后出现的元素覆盖先出现的。nil 元素没有任何属性，被跳过，
// 不会覆盖链路中途为 nil 而得到 nil key 的元素。
func PropertyValueMap[T any](coll []T, keyPath, valuePath string) (*OrderedMap[any, any], error) {
	return Query[T]{}.PropertyValueMap(coll, keyPath, valuePath)
}

// PropertyValueMap 见 [PropertyValueMap]。
func (q Query[T]) PropertyValueMap(coll []T, keyPath, valuePath string) (*OrderedMap[any, any], error) {
	kp, err := q.parsePath(opValueMap, keyPath)
	if err != nil {
		return nil, err
	}
	vp, err := q.parsePath(opValueMap, valuePath)
	if err != nil {
		return nil, err
	}
	r := q.Resolver()
	out := NewOrderedMap[any, any]()
	for i, e := range coll {
		if xprop.IsNil(e) {
			continue
		}
		k, err := r.Resolve(e, kp)
		if err != nil {
			return nil, elemErr(opValueMap, i, err)
		}
		v, err := r.Resolve(e, vp)
		if err != nil {
			return nil, elemErr(opValueMap, i, err)
		}
		out.Set(k, v)
	}
	return out, nil
}

// Partition 把 coll 按顺序切分为长度不超过 size 的子 slice。
// 子 slice 是 coll 的副本。size <= 0 返回 KindInvalidArgument。
func Partition[T any](coll []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, xerrs.InvalidArgument(opPartition, "size must be positive, got %d", size)
	}
	out := make([][]T, 0, (len(coll)+size-1)/size)
	for start := 0; start < len(coll); start += size {
		end := min(start+size, len(coll))
		chunk := make([]T, end-start)
		copy(chunk, coll[start:end])
		out = append(out, chunk)
	}
	return out, nil
}

package xcoll

import (
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/bean/xprop"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

// Group 按 path 处的值分组。
//
// key 与组内元素都保持首次出现的顺序；nil 元素归入 nil key。
// 所有组按 key 顺序拼接起来恰好是 coll 的一个排列。
func Group[T any](coll []T, path string) (*OrderedMap[any, []T], error) {
	return Query[T]{}.Group(coll, path)
}

// Group 见 [Group]。
func (q Query[T]) Group(coll []T, path string) (*OrderedMap[any, []T], error) {
	p, err := q.parsePath(opGroup, path)
	if err != nil {
		return nil, err
	}
	return groupBy(opGroup, coll, q.property(p), nil)
}

// GroupWith 与 Group 相同，但只对满足 pred 的元素分组，其余元素被排除。
func GroupWith[T any](coll []T, path string, pred xpred.Predicate[T]) (*OrderedMap[any, []T], error) {
	return Query[T]{}.GroupWith(coll, path, pred)
}

// GroupWith 见 [GroupWith]。
func (q Query[T]) GroupWith(coll []T, path string, pred xpred.Predicate[T]) (*OrderedMap[any, []T], error) {
	p, err := q.parsePath(opGroup, path)
	if err != nil {
		return nil, err
	}
	if err := validate(opGroup, pred); err != nil {
		return nil, err
	}
	return groupBy(opGroup, coll, q.property(p), q.bind(pred))
}

// property 返回绑定到 q 的 Resolver 的属性转换器。
func (q Query[T]) property(p xpath.Path) xpred.Transformer[T, any] {
	return xpred.BindTransformer(xpred.Property[T](p), q.r)
}

// GroupBy 按转换器给出的 key 分组。
// 基于路径的转换器默认使用 xprop.Default()，需要其他 Resolver 时用 xpred.BindTransformer 绑定。
func GroupBy[T, K any](coll []T, keyOf xpred.Transformer[T, K]) (*OrderedMap[K, []T], error) {
	return groupBy(opGroup, coll, keyOf, nil)
}

// GroupByWith 与 GroupBy 相同，但只对满足 pred 的元素分组。
func GroupByWith[T, K any](coll []T, keyOf xpred.Transformer[T, K], pred xpred.Predicate[T]) (*OrderedMap[K, []T], error) {
	if err := validate(opGroup, pred); err != nil {
		return nil, err
	}
	return groupBy(opGroup, coll, keyOf, pred)
}

func groupBy[T, K any](op string, coll []T, keyOf xpred.Transformer[T, K], pred xpred.Predicate[T]) (*OrderedMap[K, []T], error) {
	if err := validate(op, keyOf); err != nil {
		return nil, err
	}
	out := NewOrderedMap[K, []T]()
	for i, e := range coll {
		if pred != nil {
			ok, err := pred.Test(e)
			if err != nil {
				return nil, elemErr(op, i, err)
			}
			if !ok {
				continue
			}
		}
		k, err := keyOf.Transform(e)
		if err != nil {
			return nil, elemErr(op, i, err)
		}
		out.Upsert(k, func(group []T, _ bool) []T { return append(group, e) })
	}
	return out, nil
}

// GroupOne 按 path 处的值建立 key → 元素 的映射。
// 同一 key 出现多次时保留最后一个元素，key 的位置仍是首次出现的位置。
func GroupOne[T any](coll []T, path string) (*OrderedMap[any, T], error) {
	return Query[T]{}.GroupOne(coll, path)
}

// GroupOne 见 [GroupOne]。
func (q Query[T]) GroupOne(coll []T, path string) (*OrderedMap[any, T], error) {
	p, err := q.parsePath(opGroupOne, path)
	if err != nil {
		return nil, err
	}
	out := NewOrderedMap[any, T]()
	err = q.eachValue(opGroupOne, coll, p, func(_ int, e T, k any) {
		out.Set(k, e)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupCount 统计 path 处每个值出现的次数，key 保持首次出现的顺序。
func GroupCount[T any](coll []T, path string) (*OrderedMap[any, int], error) {
	return Query[T]{}.GroupCount(coll, path)
}

// GroupCount 见 [GroupCount]。
func (q Query[T]) GroupCount(coll []T, path string) (*OrderedMap[any, int], error) {
	p, err := q.parsePath(opGroupCount, path)
	if err != nil {
		return nil, err
	}
	out := NewOrderedMap[any, int]()
	err = q.eachValue(opGroupCount, coll, p, func(_ int, _ T, k any) {
		out.Upsert(k, func(n int, _ bool) int { return n + 1 })
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// eachValue 对每个元素解析 p 并回调；nil 元素的值为 nil。
func (q Query[T]) eachValue(op string, coll []T, p xpath.Path, fn func(i int, e T, v any)) error {
	r := q.Resolver()
	for i, e := range coll {
		var v any
		if !xprop.IsNil(e) {
			var err error
			if v, err = r.Resolve(e, p); err != nil {
				return elemErr(op, i, err)
			}
		}
		fn(i, e, v)
	}
	return nil
}

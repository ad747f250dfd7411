package xcoll

import (
	"maps"
	"slices"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

// Select 返回 path 处的值等于 values 之一的元素，保持原顺序。
// values 为空时结果为空；nil 元素不匹配。
func Select[T any](coll []T, path string, values ...any) ([]T, error) {
	return Query[T]{}.Select(coll, path, values...)
}

// Select 见 [Select]。
func (q Query[T]) Select(coll []T, path string, values ...any) ([]T, error) {
	return q.selectBy(opSelect, coll, path, xpred.Natural, values, true)
}

// SelectFold 与 Select 相同，字符串比较忽略大小写。
func SelectFold[T any](coll []T, path string, values ...any) ([]T, error) {
	return Query[T]{}.SelectFold(coll, path, values...)
}

// SelectFold 见 [SelectFold]。
func (q Query[T]) SelectFold(coll []T, path string, values ...any) ([]T, error) {
	return q.selectBy(opSelect, coll, path, xpred.Fold, values, true)
}

// SelectWith 返回满足 pred 的元素。
func SelectWith[T any](coll []T, pred xpred.Predicate[T]) ([]T, error) {
	return Query[T]{}.SelectWith(coll, pred)
}

// SelectWith 见 [SelectWith]。
func (q Query[T]) SelectWith(coll []T, pred xpred.Predicate[T]) ([]T, error) {
	return filter(opSelect, coll, q.bind(pred), true)
}

// SelectRejected 返回 Select 的补集：path 处的值不等于任何 values 的元素，含 nil 元素。
func SelectRejected[T any](coll []T, path string, values ...any) ([]T, error) {
	return Query[T]{}.SelectRejected(coll, path, values...)
}

// SelectRejected 见 [SelectRejected]。
func (q Query[T]) SelectRejected(coll []T, path string, values ...any) ([]T, error) {
	return q.selectBy(opSelectRejected, coll, path, xpred.Natural, values, false)
}

// SelectRejectedFold 是 SelectFold 的补集。
func SelectRejectedFold[T any](coll []T, path string, values ...any) ([]T, error) {
	return Query[T]{}.SelectRejectedFold(coll, path, values...)
}

// SelectRejectedFold 见 [SelectRejectedFold]。
func (q Query[T]) SelectRejectedFold(coll []T, path string, values ...any) ([]T, error) {
	return q.selectBy(opSelectRejected, coll, path, xpred.Fold, values, false)
}

// SelectRejectedWith 返回不满足 pred 的元素。
func SelectRejectedWith[T any](coll []T, pred xpred.Predicate[T]) ([]T, error) {
	return Query[T]{}.SelectRejectedWith(coll, pred)
}

// SelectRejectedWith 见 [SelectRejectedWith]。
func (q Query[T]) SelectRejectedWith(coll []T, pred xpred.Predicate[T]) ([]T, error) {
	return filter(opSelectRejected, coll, q.bind(pred), false)
}

// SelectBy 与 Select 相同，使用指定的值比较方式（如 xpred.Numeric）。
func SelectBy[T any](coll []T, path string, match xpred.ValueMatcher, values ...any) ([]T, error) {
	return Query[T]{}.SelectBy(coll, path, match, values...)
}

// SelectBy 见 [SelectBy]。
func (q Query[T]) SelectBy(coll []T, path string, match xpred.ValueMatcher, values ...any) ([]T, error) {
	return q.selectBy(opSelect, coll, path, match, values, true)
}

// SelectRejectedBy 是 SelectBy 的补集。
func SelectRejectedBy[T any](coll []T, path string, match xpred.ValueMatcher, values ...any) ([]T, error) {
	return Query[T]{}.SelectRejectedBy(coll, path, match, values...)
}

// SelectRejectedBy 见 [SelectRejectedBy]。
func (q Query[T]) SelectRejectedBy(coll []T, path string, match xpred.ValueMatcher, values ...any) ([]T, error) {
	return q.selectBy(opSelectRejected, coll, path, match, values, false)
}

func (q Query[T]) selectBy(op string, coll []T, path string, match xpred.ValueMatcher, values []any, keep bool) ([]T, error) {
	p, err := q.parsePath(op, path)
	if err != nil {
		return nil, err
	}
	return filter(op, coll, q.bind(xpred.EqualBy[T](p, match, values...)), keep)
}

// filter 保留 pred 结果等于 keep 的元素。
func filter[T any](op string, coll []T, pred xpred.Predicate[T], keep bool) ([]T, error) {
	if err := validate(op, pred); err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for i, e := range coll {
		ok, err := pred.Test(e)
		if err != nil {
			return nil, elemErr(op, i, err)
		}
		if ok == keep {
			out = append(out, e)
		}
	}
	return out, nil
}

// Find 返回第一个 path 处的值等于 value 的元素。
// 没有匹配（含 coll 为 nil）时返回零值与 false。
func Find[T any](coll []T, path string, value any) (T, bool, error) {
	return Query[T]{}.Find(coll, path, value)
}

// Find 见 [Find]。
func (q Query[T]) Find(coll []T, path string, value any) (T, bool, error) {
	var zero T
	p, err := q.parsePath(opFind, path)
	if err != nil {
		return zero, false, err
	}
	return q.FindWith(coll, xpred.Equal[T](p, value))
}

// FindWith 返回第一个满足 pred 的元素。
func FindWith[T any](coll []T, pred xpred.Predicate[T]) (T, bool, error) {
	return Query[T]{}.FindWith(coll, pred)
}

// FindWith 见 [FindWith]。
func (q Query[T]) FindWith(coll []T, pred xpred.Predicate[T]) (T, bool, error) {
	var zero T
	i, err := indexWhere(opFind, coll, q.bind(pred))
	if err != nil || i < 0 {
		return zero, false, err
	}
	return coll[i], true, nil
}

// FindByProperties 返回第一个 props 中全部属性都相等的元素（逻辑与）。
// props 为空返回 KindInvalidArgument：没有条件时不存在有意义的“第一个匹配”。
func FindByProperties[T any](coll []T, props map[string]any) (T, bool, error) {
	return Query[T]{}.FindByProperties(coll, props)
}

// FindByProperties 见 [FindByProperties]。
func (q Query[T]) FindByProperties(coll []T, props map[string]any) (T, bool, error) {
	var zero T
	if len(props) == 0 {
		return zero, false, xerrs.InvalidArgument(opFind, "no properties")
	}
	conds := make([]xpred.Cond, 0, len(props))
	// 按名称顺序求值，错误信息稳定
	for _, name := range slices.Sorted(maps.Keys(props)) {
		p, err := q.parsePath(opFind, name)
		if err != nil {
			return zero, false, err
		}
		conds = append(conds, xpred.Cond{Path: p, Value: props[name]})
	}
	return q.FindWith(coll, xpred.Matches[T](conds...))
}

// IndexOf 返回第一个 path 处的值等于 value 的元素下标，没有匹配时返回 -1。
func IndexOf[T any](coll []T, path string, value any) (int, error) {
	return Query[T]{}.IndexOf(coll, path, value)
}

// IndexOf 见 [IndexOf]。
func (q Query[T]) IndexOf(coll []T, path string, value any) (int, error) {
	p, err := q.parsePath(opIndexOf, path)
	if err != nil {
		return -1, err
	}
	return indexWhere(opIndexOf, coll, q.bind(xpred.Equal[T](p, value)))
}

// IndexWhere 返回第一个满足 pred 的元素下标，没有匹配时返回 -1。
func IndexWhere[T any](coll []T, pred xpred.Predicate[T]) (int, error) {
	return Query[T]{}.IndexWhere(coll, pred)
}

// IndexWhere 见 [IndexWhere]。
func (q Query[T]) IndexWhere(coll []T, pred xpred.Predicate[T]) (int, error) {
	return indexWhere(opIndexOf, coll, q.bind(pred))
}

func indexWhere[T any](op string, coll []T, pred xpred.Predicate[T]) (int, error) {
	if err := validate(op, pred); err != nil {
		return -1, err
	}
	for i, e := range coll {
		ok, err := pred.Test(e)
		if err != nil {
			return -1, elemErr(op, i, err)
		}
		if ok {
			return i, nil
		}
	}
	return -1, nil
}

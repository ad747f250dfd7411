package xpred

import (
	"strings"

	"github.com/omeyang/xbean/pkg/bean/xconv"
	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/bean/xprop"
	"github.com/omeyang/xbean/pkg/collection/xkey"
)

// ValueMatcher 比较解析出的属性值与期望值。
type ValueMatcher func(actual, want any) bool

// 内置的值比较方式。
var (
	// Natural 自然相等，见 xkey.Equal。
	Natural ValueMatcher = xkey.Equal
	// Fold 字符串忽略大小写，其余同 Natural。
	Fold ValueMatcher = foldEqual
	// Numeric 两侧都是数值（含数值字符串）时按 decimal 比较，其余同 Natural。
	Numeric ValueMatcher = numericEqual
)

// pathPredicate 判定元素在 path 处的值是否与 values 之一匹配。
type pathPredicate[T any] struct {
	name   string
	path   xpath.Path
	values []any
	match  ValueMatcher
	r      *xprop.Resolver
}

// Equal 返回“path 处的值等于 values 之一”的谓词。values 为空时恒假。
func Equal[T any](p xpath.Path, values ...any) Predicate[T] {
	return EqualBy[T](p, Natural, values...)
}

// EqualFold 与 Equal 相同，但字符串比较忽略大小写。
func EqualFold[T any](p xpath.Path, values ...any) Predicate[T] {
	return EqualBy[T](p, Fold, values...)
}

// NumericEqual 与 Equal 相同，但数值跨类型按 decimal 比较。
func NumericEqual[T any](p xpath.Path, values ...any) Predicate[T] {
	return EqualBy[T](p, Numeric, values...)
}

// EqualBy 使用指定的比较方式构造路径谓词，match 为 nil 时使用 Natural。
func EqualBy[T any](p xpath.Path, match ValueMatcher, values ...any) Predicate[T] {
	if match == nil {
		match = Natural
	}
	return pathPredicate[T]{name: "equal", path: p, values: values, match: match}
}

func (pp pathPredicate[T]) Test(elem T) (bool, error) {
	if err := pp.Validate(); err != nil {
		return false, err
	}
	if len(pp.values) == 0 || xprop.IsNil(elem) {
		return false, nil
	}
	v, err := resolverOf(pp.r).Resolve(elem, pp.path)
	if err != nil {
		return false, err
	}
	for _, want := range pp.values {
		if pp.match(v, want) {
			return true, nil
		}
	}
	return false, nil
}

func (pp pathPredicate[T]) bindPredicate(r *xprop.Resolver) Predicate[T] {
	pp.r = r
	return pp
}

func (pp pathPredicate[T]) Validate() error {
	if pp.path.IsZero() {
		return invalid(pp.name, "path is empty")
	}
	return nil
}

// Cond 是一个“path 处的值等于 Value”的条件。
type Cond struct {
	Path  xpath.Path
	Value any
}

// Matches 返回所有条件同时成立的谓词（逻辑与），按给定顺序求值；
// 不传条件时恒真。
func Matches[T any](conds ...Cond) Predicate[T] {
	return MatchesBy[T](Natural, conds...)
}

// MatchesBy 与 Matches 相同，使用指定的比较方式。
func MatchesBy[T any](match ValueMatcher, conds ...Cond) Predicate[T] {
	preds := make(and[T], 0, len(conds))
	for _, c := range conds {
		preds = append(preds, EqualBy[T](c.Path, match, c.Value))
	}
	return preds
}

type compare[T any] struct {
	path xpath.Path
	fn   func(v any) bool
	r    *xprop.Resolver
}

// Compare 返回“fn(path 处的值) 成立”的谓词。元素为 nil 时不调用 fn。
func Compare[T any](p xpath.Path, fn func(v any) bool) Predicate[T] {
	return compare[T]{path: p, fn: fn}
}

func (c compare[T]) Test(elem T) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if xprop.IsNil(elem) {
		return false, nil
	}
	v, err := resolverOf(c.r).Resolve(elem, c.path)
	if err != nil {
		return false, err
	}
	return c.fn(v), nil
}

func (c compare[T]) bindPredicate(r *xprop.Resolver) Predicate[T] {
	c.r = r
	return c
}

func (c compare[T]) Validate() error {
	if c.path.IsZero() {
		return invalid("compare", "path is empty")
	}
	if c.fn == nil {
		return invalid("compare", "function is nil")
	}
	return nil
}

func foldEqual(actual, want any) bool {
	a, aok := actual.(string)
	w, wok := want.(string)
	if aok && wok {
		return strings.EqualFold(a, w)
	}
	return xkey.Equal(actual, want)
}

func numericEqual(actual, want any) bool {
	a, aerr := xconv.Decimal(actual)
	w, werr := xconv.Decimal(want)
	if aerr == nil && werr == nil {
		return a.Equal(w)
	}
	return xkey.Equal(actual, want)
}

func invalid(op, msg string) *xerrs.Error {
	return xerrs.InvalidArgument(op, "%s", msg)
}

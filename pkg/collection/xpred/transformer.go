package xpred

import (
	"github.com/omeyang/xbean/pkg/bean/xconv"
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/bean/xprop"
)

// MapFunc 把普通转换函数适配为 Transformer。
type MapFunc[T, R any] func(T) R

// Transform 实现 Transformer。
func (f MapFunc[T, R]) Transform(elem T) (R, error) { return f(elem), nil }

// Validate 实现 Validator，f 为 nil 时返回 KindInvalidArgument。
func (f MapFunc[T, R]) Validate() error { return checkFunc(f == nil) }

// TransformFunc 把可能失败的转换函数适配为 Transformer。
type TransformFunc[T, R any] func(T) (R, error)

// Transform 实现 Transformer。
func (f TransformFunc[T, R]) Transform(elem T) (R, error) { return f(elem) }

// Validate 实现 Validator，f 为 nil 时返回 KindInvalidArgument。
func (f TransformFunc[T, R]) Validate() error { return checkFunc(f == nil) }

type property[T any] struct {
	path xpath.Path
	r    *xprop.Resolver
}

// Property 返回取 path 处属性值的转换器。元素为 nil 时得到 nil。
func Property[T any](p xpath.Path) Transformer[T, any] {
	return property[T]{path: p}
}

func (p property[T]) Transform(elem T) (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if xprop.IsNil(elem) {
		return nil, nil
	}
	return resolverOf(p.r).Resolve(elem, p.path)
}

func (p property[T]) bindTransformer(r *xprop.Resolver) Transformer[T, any] {
	p.r = r
	return p
}

func (p property[T]) Validate() error {
	if p.path.IsZero() {
		return invalid("property", "path is empty")
	}
	return nil
}

type propertyAs[T, R any] struct {
	property[T]
}

// PropertyAs 与 Property 相同，但把属性值转换为 R（见 xconv.Convert）。
// 属性值为 nil 时得到 R 的零值。
func PropertyAs[T, R any](p xpath.Path) Transformer[T, R] {
	return propertyAs[T, R]{property[T]{path: p}}
}

func (p propertyAs[T, R]) bindTransformer(r *xprop.Resolver) Transformer[T, R] {
	p.r = r
	return p
}

func (p propertyAs[T, R]) Transform(elem T) (R, error) {
	var zero R
	v, err := p.property.Transform(elem)
	if err != nil || v == nil {
		return zero, err
	}
	return xconv.Convert[R](v)
}

package xpred

import "github.com/omeyang/xbean/pkg/bean/xprop"

//go:generate mockgen -source=predicate.go -destination=mock_test.go -package=xpred_test

// Predicate 对集合元素做判定。
type Predicate[T any] interface {
	Test(elem T) (bool, error)
}

// Transformer 把集合元素转换为另一个值。
type Transformer[T, R any] interface {
	Transform(elem T) (R, error)
}

// Validator 由需要参数校验的谓词与转换器实现。
type Validator interface {
	Validate() error
}

// Validate 校验 v 的构造参数。v 未实现 [Validator] 时返回 nil。
func Validate(v any) error {
	if val, ok := v.(Validator); ok {
		return val.Validate()
	}
	return nil
}

// Func 把普通判定函数适配为 Predicate。
type Func[T any] func(T) bool

// Test 实现 Predicate。
func (f Func[T]) Test(elem T) (bool, error) { return f(elem), nil }

// Validate 实现 Validator，f 为 nil 时返回 KindInvalidArgument。
func (f Func[T]) Validate() error { return checkFunc(f == nil) }

// ErrFunc 把可能失败的判定函数适配为 Predicate。
type ErrFunc[T any] func(T) (bool, error)

// Test 实现 Predicate。
func (f ErrFunc[T]) Test(elem T) (bool, error) { return f(elem) }

// Validate 实现 Validator，f 为 nil 时返回 KindInvalidArgument。
func (f ErrFunc[T]) Validate() error { return checkFunc(f == nil) }

func checkFunc(isNil bool) error {
	if isNil {
		return invalid("func", "function is nil")
	}
	return nil
}

// Always 返回恒真谓词。
func Always[T any]() Predicate[T] {
	return Func[T](func(T) bool { return true })
}

type and[T any] []Predicate[T]

// And 返回所有谓词都成立时成立的谓词，遇到 false 或错误即停止。
// 不传参数时恒真。
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return and[T](preds)
}

func (a and[T]) Test(elem T) (bool, error) {
	for _, p := range a {
		ok, err := p.Test(elem)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (a and[T]) bindPredicate(r *xprop.Resolver) Predicate[T] {
	return and[T](bindAll(a, r))
}

func (a and[T]) Validate() error {
	return validateAll(a)
}

type or[T any] []Predicate[T]

// Or 返回任一谓词成立时成立的谓词，遇到 true 或错误即停止。
// 不传参数时恒假。
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return or[T](preds)
}

func (o or[T]) Test(elem T) (bool, error) {
	for _, p := range o {
		ok, err := p.Test(elem)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (o or[T]) bindPredicate(r *xprop.Resolver) Predicate[T] {
	return or[T](bindAll(o, r))
}

func (o or[T]) Validate() error {
	return validateAll(o)
}

type not[T any] struct {
	p Predicate[T]
}

// Not 返回 p 的否定。p 出错时错误原样返回。
func Not[T any](p Predicate[T]) Predicate[T] {
	return not[T]{p: p}
}

func (n not[T]) Test(elem T) (bool, error) {
	ok, err := n.p.Test(elem)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n not[T]) bindPredicate(r *xprop.Resolver) Predicate[T] {
	return not[T]{p: Bind(n.p, r)}
}

func (n not[T]) Validate() error {
	if n.p == nil {
		return invalid("not", "predicate is nil")
	}
	return Validate(n.p)
}

func validateAll[T any](preds []Predicate[T]) error {
	for _, p := range preds {
		if p == nil {
			return invalid("combine", "predicate is nil")
		}
		if err := Validate(p); err != nil {
			return err
		}
	}
	return nil
}

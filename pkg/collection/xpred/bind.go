package xpred

import "github.com/omeyang/xbean/pkg/bean/xprop"

// predicateBinder 由需要解析属性路径的谓词实现。
type predicateBinder[T any] interface {
	bindPredicate(r *xprop.Resolver) Predicate[T]
}

// transformerBinder 由需要解析属性路径的转换器实现。
type transformerBinder[T, R any] interface {
	bindTransformer(r *xprop.Resolver) Transformer[T, R]
}

// Bind 返回用 r 解析属性路径的 pred 副本，pred 本身不变。
//
// [And]、[Or]、[Not] 逐层绑定；函数谓词不读取路径，原样返回。
// r 为 nil 时返回 pred。未绑定的谓词使用 xprop.Default()。
func Bind[T any](pred Predicate[T], r *xprop.Resolver) Predicate[T] {
	if r == nil || pred == nil {
		return pred
	}
	if b, ok := pred.(predicateBinder[T]); ok {
		return b.bindPredicate(r)
	}
	return pred
}

// BindTransformer 与 Bind 相同，作用于 [Property]、[PropertyAs] 等转换器。
func BindTransformer[T, R any](tr Transformer[T, R], r *xprop.Resolver) Transformer[T, R] {
	if r == nil || tr == nil {
		return tr
	}
	if b, ok := tr.(transformerBinder[T, R]); ok {
		return b.bindTransformer(r)
	}
	return tr
}

func bindAll[T any](preds []Predicate[T], r *xprop.Resolver) []Predicate[T] {
	out := make([]Predicate[T], len(preds))
	for i, p := range preds {
		out[i] = Bind(p, r)
	}
	return out
}

// resolverOf 返回 r，未绑定时返回默认 Resolver。
func resolverOf(r *xprop.Resolver) *xprop.Resolver {
	if r == nil {
		return xprop.Default()
	}
	return r
}

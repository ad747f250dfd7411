package xcoll

import (
	"github.com/omeyang/xbean/pkg/bean/xprop"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

// Query 在指定的 xprop.Resolver 上执行集合操作。
//
// 包级函数等价于 Using[T](nil) 上的同名方法，使用 xprop.Default()。
// 需要 map 字段语法、自定义 tag 或路径缓存时，创建自己的 Resolver：
//
//	r := xprop.NewResolver(xprop.WithMapFields(true))
//	shu, err := xcoll.Using[any](r).Select(docs, "kingdom", "蜀")
//
// 传入的 xpred 谓词会经 xpred.Bind 绑定到同一个 Resolver。
// GroupBy、Collect 等带转换器的函数需要类型参数 K 或 R，不是方法，
// 转换器用 xpred.BindTransformer 绑定；CollectInto 对应 [CollectIntoUsing]。
//
// Query 是值类型，不可变，可在多个 goroutine 间共享。零值使用 xprop.Default()。
type Query[T any] struct {
	r *xprop.Resolver
}

// Using 返回使用 r 的 Query，r 为 nil 时使用 xprop.Default()。
func Using[T any](r *xprop.Resolver) Query[T] {
	return Query[T]{r: r}
}

// Resolver 返回 q 使用的 Resolver。
func (q Query[T]) Resolver() *xprop.Resolver {
	if q.r == nil {
		return xprop.Default()
	}
	return q.r
}

func (q Query[T]) bind(pred xpred.Predicate[T]) xpred.Predicate[T] {
	return xpred.Bind(pred, q.r)
}

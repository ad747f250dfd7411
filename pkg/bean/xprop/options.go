package xprop

import "github.com/omeyang/xbean/pkg/bean/xpath"

// defaultTagName 字段名与方法都不匹配时用于兜底的 struct tag。
const defaultTagName = "json"

// Option 定义 Resolver 的可选配置。
type Option func(*Resolver)

// WithTagName 设置兜底匹配的 struct tag 名，空字符串关闭 tag 匹配。
func WithTagName(name string) Option {
	return func(r *Resolver) {
		r.tagName = name
	}
}

// WithMapFields 允许在 map 上使用字段语法："user.name" 等价于 "user(name)"。
//
// 默认关闭，此时在 map 上做字段访问返回 [xerrs.KindTypeMismatch]。
// 解码自 JSON/YAML 的文档全部是 map，此时通常需要开启。
func WithMapFields(enable bool) Option {
	return func(r *Resolver) {
		r.mapFields = enable
	}
}

// WithPathCache 让 [Resolver.Parse] 及基于字符串路径的方法经缓存解析。
func WithPathCache(c *xpath.Cache) Option {
	return func(r *Resolver) {
		r.cache = c
	}
}

// Package xpath 解析属性路径表达式。
//
// 路径表达式用于定位 bean / map / slice / array 组成的对象图中的某个值：
//
//	"userInfo.age"     字段 userInfo 的字段 age
//	"attrMap(蜀国)"    字段 attrMap（一个 map）中 key 为 "蜀国" 的值
//	"loves[1]"         字段 loves（slice 或 array）的第 2 个元素
//	"(蜀国)"、"[0]"    直接作用于当前值（根为 map / slice 时使用）
//
// # 功能概览
//
//   - [Parse]: 解析为不可变的 [Path]，语法错误返回 xerrs.KindInvalidPathSyntax
//   - [MustParse]: 常量路径使用，失败 panic
//   - [Cache]: 基于 hashicorp/golang-lru 的解析缓存，由调用方显式持有
//
// # 语法
//
// '.' 分隔块；每块为名称，可带一个 "(key)" 或 "[index]" 后缀。括号内内容原样
// 保留（map key 可含 '.'）。下标只接受非负十进制整数。
//
// # 设计决策
//
// 同一块内连续后缀（"a(b)[0]"）是语法错误，而不是猜测其多级语义。
// 需要多级 map / 下标跳转时，使用只含后缀的块："a(b).(c)"、"m[0].[1]"。
//
// Path 不可变且解析是纯函数，因此 Cache 中的条目不会过期失效；
// 包级 Parse 不使用任何隐藏缓存。
package xpath

// Package xpred 定义集合查询使用的谓词与转换器。
//
// # 接口
//
//   - [Predicate]：对元素做判定，Test 返回 (bool, error)
//   - [Transformer]：把元素转换为另一个值，Transform 返回 (R, error)
//
// 错误只来自属性路径解析（类型不匹配、下标越界等），普通函数通过
// [Func]、[MapFunc] 适配后不会失败；需要返回错误时使用 [ErrFunc]、[TransformFunc]。
//
// # 基于路径的谓词
//
//   - [Equal]：属性值等于任一给定值（nil 等于 nil，其余使用 xkey.Equal）
//   - [EqualFold]：同 Equal，字符串忽略大小写
//   - [NumericEqual]：数值按 decimal 比较，28、int64(28)、"28.0" 相等
//   - [Matches]：多个属性同时相等（逻辑与）
//   - [Compare]：对属性值应用任意判定函数
//
// 元素本身为 nil 时，基于路径的谓词返回 false，不报错。
//
// # 组合
//
// [And]、[Or] 短路求值，[Not] 取反，[Always] 恒真。
//
// # Resolver
//
// 基于路径的谓词与转换器默认用 xprop.Default() 解析属性。[Bind]、[BindTransformer]
// 返回改用指定 Resolver 的副本（组合谓词逐层绑定），例如在 JSON 文档上开启
// map 字段语法：
//
//	r := xprop.NewResolver(xprop.WithMapFields(true))
//	pred := xpred.Bind(xpred.Equal[any](p, "关羽"), r)
//
// # 参数校验
//
// 谓词构造函数不返回错误。路径为零值、适配的函数为 nil 等参数问题通过 [Validate] 提前发现，
// xcoll 在处理任何元素之前调用它。
package xpred

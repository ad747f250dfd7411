// Package xerrs 定义 bean 属性访问与集合查询共用的结构化错误。
//
// 所有失败都以 [*Error] 返回，通过 [Kind] 区分类别：
//
//   - [KindInvalidArgument]：属性名、路径为空白等调用方违约，先于任何元素处理返回
//   - [KindInvalidPathSyntax]：路径表达式语法错误
//   - [KindTypeMismatch]、[KindIndexOutOfRange]、[KindNoSuchProperty]：
//     路径段无法作用于运行时值，整个操作中止，不返回部分结果
//   - [KindNotWritable]、[KindConversion]：写入属性失败
//
// 判定方式（两者等价）：
//
//	if errors.Is(err, xerrs.ErrTypeMismatch) { ... }
//	if xerrs.KindOf(err) == xerrs.KindTypeMismatch { ... }
//
// 集合为 nil、元素为 nil、路径中途为 nil 都不是错误，不会产生 *Error。
package xerrs

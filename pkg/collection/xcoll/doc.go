// Package xcoll 提供基于属性路径的泛型集合查询。
//
// # 操作
//
//   - 筛选：[Select]、[SelectRejected] 及其 Fold/With/By 变体
//   - 查找：[Find]、[FindWith]、[FindByProperties]、[IndexOf]、[IndexWhere]
//   - 分组：[Group]、[GroupBy]、[GroupOne]、[GroupCount]
//   - 转换：[Collect]、[CollectInto]、[RemoveDuplicate]、[PropertyValueList]、
//     [PropertyValueSet]、[PropertyValueMap]、[Partition]
//   - 聚合与排序：[Sum]、[Avg]、[SortBy]
//   - 修改：[ForEach]，唯一会修改元素的操作
//
// 除 ForEach 外，所有操作都不修改 coll 与其中的元素，返回新的 slice 或 map。
//
// # nil 的处理
//
// coll 为 nil 不是错误，按空集合处理：返回空 slice、空 map、-1 或零值与 false。
// nil 元素按“不匹配”处理，Group 等按值归类的操作把它归入 nil key，
// Collect 在对应位置保留零值。属性路径中途遇到 nil 时值为 nil，同样不是错误。
//
// # 错误
//
// 路径参数为空白、语法错误，或谓词、转换器为 nil 时，在处理任何元素之前返回错误。
// 单个元素解析失败（类型不匹配、下标越界等）会中止整个操作，不返回部分结果；
// 错误信息包含操作名与元素下标，可用 errors.Is 匹配 xerrs 的哨兵错误：
//
//	_, err := xcoll.Select(users, "loves[3]", "篮球")
//	if errors.Is(err, xerrs.ErrIndexOutOfRange) {
//	    // ...
//	}
//
// # Resolver
//
// 包级函数用 xprop.Default() 解析属性路径。需要其他配置（如在 JSON 文档上
// 开启 map 字段语法）时，通过 [Using] 得到绑定 Resolver 的 [Query]，
// 它提供除 GroupBy、Collect、CollectInto 外全部操作的同名方法：
//
//	q := xcoll.Using[any](xprop.NewResolver(xprop.WithMapFields(true)))
//	shu, err := q.Select(docs, "kingdom", "蜀")
//
// # 相等与 key
//
// 路径筛选默认使用 xkey.Equal，类型必须一致：int 28 与 int64 28 不相等，
// 需要跨类型的数值比较时使用 [SelectBy] 与 xpred.Numeric。
// 分组与去重的 key 可以是任意值，包括 slice、map 等不可比较的类型，
// 结果以 [OrderedMap]、[OrderedSet] 返回，保持首次出现的顺序。
package xcoll

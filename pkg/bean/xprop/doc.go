// Package xprop 沿属性路径读写对象图中的值。
//
// 对象图由结构体（bean）、map、slice、array 以及指向它们的指针和接口组成。
// 路径语法见 xpath 包："userInfo.age"、"attrMap(蜀国)"、"loves[1]"。
//
// # 按段访问
//
//   - 字段段作用于结构体：导出字段 → Name()/GetName()/IsName() 方法 → json tag
//   - (key) 段作用于 map：key 文本按 map 的 key 类型转换，缺失的 key 得到 nil
//   - [i] 段作用于 slice/array：越界返回 [xerrs.KindIndexOutOfRange]
//   - 其余组合返回 [xerrs.KindTypeMismatch]
//
// # 空值
//
// 链路中间的 nil 不是错误：Resolve 返回 (nil, nil)。需要区分“值为 nil”与
// “路径不存在”时使用 [Lookup]。
//
// # 写入
//
// [Set]、[SetProperty]、[CopyProperties] 写入可寻址的字段（或 SetName 方法）、
// map 元素与 slice 元素，值经 xconv 转换为目标类型。
//
// # 配置
//
// 包级函数使用 [Default]，它是不可替换的默认配置实例。需要 [WithMapFields]、
// [WithTagName]、[WithPathCache] 时用 [NewResolver] 创建，并显式传给
// xpred.Bind 或 xcoll.Using。
package xprop

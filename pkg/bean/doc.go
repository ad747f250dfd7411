// Package bean 提供 bean 属性访问相关的子包。
//
// 子包列表：
//   - xerrs: 统一的结构化错误与错误类别
//   - xpath: 属性路径表达式解析（"userInfo.age"、"attrMap(蜀国)"、"loves[1]"）
//   - xprop: 属性访问与路径解析，覆盖 struct、map、slice、array
//   - xconv: 属性写入时使用的类型转换
//
// 设计原则：
//   - 无状态：所有函数都是 (输入) → (输出) 的纯函数，可并发调用
//   - 失败显式：类型不匹配、下标越界是错误；路径中途遇到 nil 不是错误
package bean

// Package xkey 定义分组、去重、集合使用的键相等与哈希。
//
// 查询结果的键来自属性值，类型在运行时才确定，可能不可比较（slice、map），
// 不能直接作为 Go map 的 key。xkey 提供一对一致的函数：
//
//   - [Equal]：nil 与 nil 相等；可比较的值使用 ==（动态类型必须相同）；
//     不可比较的值使用 reflect.DeepEqual；time.Time 与 decimal.Decimal 按数值相等
//   - [Hash]：基于 xxhash，保证 Equal(a, b) 时 Hash(a) == Hash(b)
//
// [Tuple] 是多属性组合键，逐项使用 Equal 与 Hash。
package xkey

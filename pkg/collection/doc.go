// Package collection 提供集合查询相关的子包。
//
// 子包列表：
//   - xkey: 任意动态类型值的相等与哈希，用于分组、去重的 key
//   - xpred: 谓词与转换器，可由属性路径或函数构造
//   - xcoll: 泛型集合查询引擎（筛选、查找、分组、去重、提取、聚合、排序）
//
// 设计原则：
//   - 不修改输入集合，结果是新的 slice 或有序容器
//   - 分组与去重保持首次出现的顺序
package collection

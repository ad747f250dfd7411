// Package xconv 提供属性写入与比较时使用的类型转换。
//
// # 转换规则
//
// [To] 按以下顺序尝试把任意值转换为目标类型：
//
//   - 值可直接赋给目标类型：原样返回
//   - 同 Kind 或数值之间：reflect 转换（如 int32 → int64、MyInt → int）
//   - 目标为指针：先转换为元素类型再取地址
//   - 其余情况交给 mapstructure 的弱类型解码（"18" → int、1 → "1"、
//     "1m30s" → time.Duration、RFC3339 字符串 → time.Time、encoding.TextUnmarshaler）
//
// 失败返回 [xerrs.KindConversion] 类别的错误。
//
// # 数值比较
//
// [Decimal] 把任意数值、数值字符串或 decimal.Decimal 统一为 decimal.Decimal，
// 用于跨类型的数值相等判断、求和与排序。
package xconv

// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持文件轮转
//
// 设计原则：
//   - 日志方法以 context 为第一个参数，属性只用 slog.Attr
//   - 查询引擎本身不打日志，日志只出现在缓存淘汰与命令行工具中
package observability

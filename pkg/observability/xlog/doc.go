// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转）
//   - 动态级别调整（CLI 的 --log-level 与配置文件共用）
//   - 全局 Logger 便利函数
//   - 领域属性：路径、操作名、错误类别
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）。
// Builder 方法：SetLevel、SetLevelString、SetFormat、SetOutput、SetRotation、
// SetAddSource、SetOnError、SetReplaceAttr。
//
//	logger, cleanup, err := xlog.New().
//	    SetLevel(xlog.LevelDebug).
//	    SetFormat("json").
//	    SetRotation("/var/log/xbeanctl.log", xlog.Rotation{MaxSizeMB: 50}).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// 轮转基于 lumberjack，cleanup 负责关闭文件。
//
// # 全局 Logger
//
// 适用于 CLI 等简单场景，库代码通过选项注入 Logger（如 xpath.WithCacheLogger）。
//
//   - [Default]: 获取全局 Logger（未设置时为内置的 stderr、Warn 级别、text 格式）
//   - [SetDefault]: 替换全局 Logger，nil 恢复内置 Logger
//   - [Debug]、[Info]、[Warn]、[Error]: 全局便利函数
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// Level 实现 encoding.TextMarshaler/TextUnmarshaler，可直接从 koanf 配置解码。
//
// # 便捷属性
//
// [Err]、[Duration]、[Component]、[Operation]、[Count]、[Path]、[File]、[Kind]。
package xlog

package xlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// current 是 SetDefault 设置的 Logger，nil 表示使用内置 Logger。
var current atomic.Pointer[LoggerWithLevel]

// newBuilder 构建器工厂，测试可替换以覆盖 fallback 路径
var newBuilder = New

// builtin 惰性构建的内置 Logger
var builtin = sync.OnceValue(buildBuiltin)

// buildBuiltin 构建 stderr、Warn 级别、text 格式的 Logger；构建失败时降级，不 panic。
func buildBuiltin() LoggerWithLevel {
	logger, _, err := newBuilder().SetLevel(LevelWarn).Build()
	if err == nil {
		return logger
	}
	fmt.Fprintf(os.Stderr, "xlog: build builtin logger: %v, using fallback\n", err)
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	return &xlogger{
		handler:        slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar}),
		levelVar:       levelVar,
		errorCount:     new(atomic.Uint64),
		inErrorHandler: new(atomic.Bool),
	}
}

// Default 返回包级默认 Logger。
// 未调用 SetDefault 时返回内置 Logger，命令行工具启动后用 SetDefault 换成按配置构建的实例。
func Default() LoggerWithLevel {
	if l := current.Load(); l != nil {
		return *l
	}
	return builtin()
}

// SetDefault 替换包级默认 Logger，nil 恢复内置 Logger。
func SetDefault(l LoggerWithLevel) {
	if l == nil {
		current.Store(nil)
		return
	}
	current.Store(&l)
}

// 包级函数比实例方法多一层调用，需要额外跳过 1 帧
func logDefault(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	l := Default()
	if xl, ok := l.(*xlogger); ok {
		xl.logWithSkip(ctx, level, msg, attrs, 1)
		return
	}
	switch level {
	case slog.LevelDebug:
		l.Debug(ctx, msg, attrs...)
	case slog.LevelInfo:
		l.Info(ctx, msg, attrs...)
	case slog.LevelWarn:
		l.Warn(ctx, msg, attrs...)
	default:
		l.Error(ctx, msg, attrs...)
	}
}

// Debug 使用默认 Logger 记录 Debug 级别日志
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logDefault(ctx, slog.LevelDebug, msg, attrs)
}

// Info 使用默认 Logger 记录 Info 级别日志
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	logDefault(ctx, slog.LevelInfo, msg, attrs)
}

// Warn 使用默认 Logger 记录 Warn 级别日志
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	logDefault(ctx, slog.LevelWarn, msg, attrs)
}

// Error 使用默认 Logger 记录 Error 级别日志
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	logDefault(ctx, slog.LevelError, msg, attrs)
}

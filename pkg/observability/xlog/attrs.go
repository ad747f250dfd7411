package xlog

import (
	"fmt"
	"log/slog"
	"time"
)

// 常用属性 Key，保持日志字段名一致。
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyPath      = "path"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyKind      = "kind"
	KeyFile      = "file"
)

// Err 创建错误属性，err 为 nil 时返回空属性（被 slog 忽略）
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5ms"）
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性，如 "select"、"group"
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Path 创建属性路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// File 创建文件名属性
func File(name string) slog.Attr {
	return slog.String(KeyFile, name)
}

// Kind 创建错误类别属性；接受任意 fmt.Stringer，如 xerrs.Kind
func Kind(k fmt.Stringer) slog.Attr {
	if k == nil {
		return slog.Attr{}
	}
	return slog.String(KeyKind, k.String())
}

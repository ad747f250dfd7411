package xlog

import "sync"

// ResetBuiltinForTest 清除已构建的内置 Logger 与 SetDefault 设置，并替换构建器工厂。
// 返回恢复函数，测试结束时必须调用。
func ResetBuiltinForTest(fn func() *Builder) func() {
	oldBuilder, oldBuiltin := newBuilder, builtin
	if fn != nil {
		newBuilder = fn
	}
	builtin = sync.OnceValue(buildBuiltin)
	current.Store(nil)
	return func() {
		newBuilder, builtin = oldBuilder, oldBuiltin
		current.Store(nil)
	}
}

// ErrorCountForTest 返回内部错误计数。
func ErrorCountForTest(l Logger) uint64 {
	if xl, ok := l.(*xlogger); ok {
		return xl.errorCount.Load()
	}
	return 0
}

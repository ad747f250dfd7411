package xconf

import "errors"

var (
	// ErrEmptyPath 配置文件路径为空。
	ErrEmptyPath = errors.New("xconf: empty config path")
	// ErrUnsupportedFormat 不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xconf: unsupported config format")
	// ErrLoadFailed 读取配置文件失败。
	ErrLoadFailed = errors.New("xconf: failed to load config")
	// ErrParseFailed 配置内容无法解析。
	ErrParseFailed = errors.New("xconf: failed to parse config")
	// ErrUnmarshalFailed 配置无法解码到目标结构体。
	ErrUnmarshalFailed = errors.New("xconf: failed to unmarshal config")
	// ErrReloadUnsupported 从字节数据创建的配置不能重载。
	ErrReloadUnsupported = errors.New("xconf: cannot reload config created from bytes")
	// ErrInvalidSettings 配置值不合法。
	ErrInvalidSettings = errors.New("xconf: invalid settings")
)

package xconf

import "github.com/knadh/koanf/v2"

// Format 配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 是已加载的配置。
//
// 基础读取直接使用 Client() 返回的 koanf 实例；
// 结构化读取使用 Unmarshal 或 [LoadSettings]。
type Config interface {
	// Client 返回当前的 koanf 实例。Reload 之后旧实例仍可用，但数据过期。
	Client() *koanf.Koanf

	// Unmarshal 把 path 处的配置解码到 target，path 为空时解码全部配置。
	// target 中已有的值在配置缺失对应键时保留，可用来预置默认值。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件，失败时保留旧配置。
	// 从字节数据创建的 Config 返回 ErrReloadUnsupported。
	Reload() error

	// Path 返回配置文件路径，从字节数据创建时为空。
	Path() string

	// Format 返回配置格式。
	Format() Format
}

// MustUnmarshal 与 cfg.Unmarshal 相同，失败时 panic。仅用于启动阶段。
func MustUnmarshal(cfg Config, path string, target any) {
	if err := cfg.Unmarshal(path, target); err != nil {
		panic(err)
	}
}

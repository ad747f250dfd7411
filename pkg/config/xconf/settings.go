package xconf

import (
	"fmt"
	"strings"

	"github.com/omeyang/xbean/pkg/observability/xlog"
)

// Settings 是 xbeanctl 的运行配置。
//
//	resolver:
//	  tag_name: json
//	  map_fields: true
//	  path_cache_size: 256
//	log:
//	  level: warn
//	  format: text
//	  add_source: false
//	  timestamp: true
//	  file: /var/log/xbeanctl.log
//	  rotation:
//	    max_size_mb: 10
//	output: json
type Settings struct {
	Resolver ResolverSettings `koanf:"resolver"`
	Log      LogSettings      `koanf:"log"`
	// Output 结果输出格式：json 或 yaml。
	Output string `koanf:"output"`
}

// ResolverSettings 对应 xprop.Resolver 的选项。
type ResolverSettings struct {
	// TagName 属性名回退匹配的结构体标签。
	TagName string `koanf:"tag_name"`
	// MapFields 允许用 "a.b" 读取 map 的 key。解码后的 JSON/YAML 文档都是 map，默认开启。
	MapFields bool `koanf:"map_fields"`
	// PathCacheSize 路径解析缓存容量，0 表示不缓存。
	PathCacheSize int `koanf:"path_cache_size"`
}

// LogSettings 对应 xlog.Builder 的选项。File 为空时输出到 stderr。
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// AddSource 在日志中附带源码位置。
	AddSource bool `koanf:"add_source"`
	// Timestamp 为 false 时不输出时间，便于比对日志。
	Timestamp bool          `koanf:"timestamp"`
	File      string        `koanf:"file"`
	Rotation  xlog.Rotation `koanf:"rotation"`
}

// DefaultSettings 返回默认配置。
func DefaultSettings() Settings {
	return Settings{
		Resolver: ResolverSettings{TagName: "json", MapFields: true, PathCacheSize: 256},
		Log:      LogSettings{Level: "warn", Format: "text", Timestamp: true},
		Output:   "json",
	}
}

// LoadSettings 在默认配置之上叠加 cfg 中的值并校验。cfg 为 nil 时返回默认配置。
func LoadSettings(cfg Config) (Settings, error) {
	s := DefaultSettings()
	if cfg != nil {
		if err := cfg.Unmarshal("", &s); err != nil {
			return Settings{}, err
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate 校验配置值。
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Resolver.TagName) == "" {
		return fmt.Errorf("%w: resolver.tag_name is blank", ErrInvalidSettings)
	}
	if s.Resolver.PathCacheSize < 0 {
		return fmt.Errorf("%w: resolver.path_cache_size %d is negative", ErrInvalidSettings, s.Resolver.PathCacheSize)
	}
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidSettings, err)
	}
	switch strings.ToLower(s.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidSettings, s.Log.Format)
	}
	switch strings.ToLower(s.Output) {
	case "json", "yaml":
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidSettings, s.Output)
	}
	return nil
}

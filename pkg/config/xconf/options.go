package xconf

// Options 配置加载选项。
type Options struct {
	// Delim 键路径分隔符，默认 "."，如 "resolver.tag_name"。
	Delim string
	// Tag Unmarshal 使用的结构体标签，默认 "koanf"。
	Tag string
}

// Option 配置选项函数。
type Option func(*Options)

func applyOptions(opts []Option) *Options {
	o := &Options{Delim: ".", Tag: "koanf"}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithDelim 设置键路径分隔符。
func WithDelim(delim string) Option {
	return func(o *Options) {
		o.Delim = delim
	}
}

// WithTag 设置 Unmarshal 使用的结构体标签。
func WithTag(tag string) Option {
	return func(o *Options) {
		o.Tag = tag
	}
}

package xpath

import "errors"

var (
	// ErrInvalidCacheSize 表示缓存容量配置无效。
	ErrInvalidCacheSize = errors.New("xpath: cache size must be greater than 0")

	// ErrCacheSizeExceedsMax 表示缓存容量超过上限 (1,048,576)。
	ErrCacheSizeExceedsMax = errors.New("xpath: cache size must not exceed 1048576")
)

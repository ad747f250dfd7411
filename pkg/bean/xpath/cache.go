package xpath

import (
	"context"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/omeyang/xbean/pkg/observability/xlog"
)

// maxCacheSize 缓存条目数上限。
const maxCacheSize = 1 << 20

// CacheStats 是缓存命中统计快照。
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// CacheOption 定义 Cache 的可选配置。
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	logger xlog.Logger
}

// WithCacheLogger 设置淘汰日志输出。淘汰以 Debug 级别记录。
func WithCacheLogger(l xlog.Logger) CacheOption {
	return func(o *cacheOptions) {
		o.logger = l
	}
}

// Cache 按表达式原文缓存解析结果。
//
// Path 不可变，缓存项不会因根对象变化而过期；解析失败的结果不缓存。
// 包级函数 [Parse] 不经过任何缓存，需要缓存的调用方显式持有 Cache。
// 所有方法并发安全。
type Cache struct {
	lru    *lru.Cache[string, Path]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache 创建容量为 size 的解析缓存。
// size <= 0 返回 ErrInvalidCacheSize，超过上限返回 ErrCacheSizeExceedsMax。
func NewCache(size int, opts ...CacheOption) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidCacheSize
	}
	if size > maxCacheSize {
		return nil, ErrCacheSizeExceedsMax
	}

	o := &cacheOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	var onEvict func(string, Path)
	if o.logger != nil {
		logger := o.logger
		onEvict = func(key string, _ Path) {
			logger.Debug(context.Background(), "path cache eviction",
				xlog.Component("xpath"), slog.String(xlog.KeyPath, key))
		}
	}

	c, err := lru.NewWithEvict[string, Path](size, onEvict)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Parse 返回 s 的解析结果，命中缓存时不重新解析。
func (c *Cache) Parse(s string) (Path, error) {
	if p, ok := c.lru.Get(s); ok {
		c.hits.Add(1)
		return p, nil
	}
	c.misses.Add(1)

	p, err := Parse(s)
	if err != nil {
		return Path{}, err
	}
	c.lru.Add(s, p)
	return p, nil
}

// Len 返回当前缓存条目数。
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge 清空缓存，不重置统计。
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Stats 返回统计快照。
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.lru.Len(),
	}
}

package xcoll

import (
	"iter"

	"github.com/omeyang/xbean/pkg/collection/xkey"
)

// OrderedMap 是保持首次插入顺序的 map，key 可以是任意动态类型。
//
// key 的相等与哈希由 xkey 决定，因此 slice、map 等不可比较的属性值也能作为 key。
// 覆盖已有 key 的值不改变其位置。零值不可用，使用 [NewOrderedMap] 创建；
// nil *OrderedMap 的只读方法按空 map 处理。非并发安全。
type OrderedMap[K, V any] struct {
	index   map[uint64][]int
	entries []entry[K, V]
}

type entry[K, V any] struct {
	key   K
	value V
}

// NewOrderedMap 创建空的 OrderedMap。
func NewOrderedMap[K, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{index: make(map[uint64][]int)}
}

func (m *OrderedMap[K, V]) find(key K) (uint64, int) {
	h := xkey.Hash(key)
	if m == nil {
		return h, -1
	}
	for _, i := range m.index[h] {
		if xkey.Equal(m.entries[i].key, key) {
			return h, i
		}
	}
	return h, -1
}

// Get 返回 key 对应的值。
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if _, i := m.find(key); i >= 0 {
		return m.entries[i].value, true
	}
	var zero V
	return zero, false
}

// Has 报告 key 是否存在。
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, i := m.find(key)
	return i >= 0
}

// Set 设置 key 的值。新 key 追加到末尾，已有 key 原位覆盖。
func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.Upsert(key, func(V, bool) V { return value })
}

// Upsert 以 fn(旧值, 是否存在) 的结果更新 key。
func (m *OrderedMap[K, V]) Upsert(key K, fn func(old V, exists bool) V) {
	h, i := m.find(key)
	if i >= 0 {
		m.entries[i].value = fn(m.entries[i].value, true)
		return
	}
	var zero V
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, entry[K, V]{key: key, value: fn(zero, false)})
}

// Len 返回条目数。
func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys 按插入顺序返回全部 key。
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	for k := range m.All() {
		out = append(out, k)
	}
	return out
}

// Values 按 key 的插入顺序返回全部值。
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, 0, m.Len())
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// All 按插入顺序遍历。
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// ToMap 把 OrderedMap 转为 Go map，丢失顺序。
// K 必须可比较；动态类型不可比较的 key 会在运行时 panic。
func ToMap[K comparable, V any](m *OrderedMap[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// OrderedSet 是保持首次插入顺序的集合，元素相等性同 [OrderedMap] 的 key。
type OrderedSet[K any] struct {
	m *OrderedMap[K, struct{}]
}

// NewOrderedSet 创建空集合。
func NewOrderedSet[K any]() *OrderedSet[K] {
	return &OrderedSet[K]{m: NewOrderedMap[K, struct{}]()}
}

// Add 加入元素，返回是否为新元素。
func (s *OrderedSet[K]) Add(v K) bool {
	added := false
	s.m.Upsert(v, func(_ struct{}, exists bool) struct{} {
		added = !exists
		return struct{}{}
	})
	return added
}

// Has 报告元素是否存在。
func (s *OrderedSet[K]) Has(v K) bool {
	if s == nil {
		return false
	}
	return s.m.Has(v)
}

// Len 返回元素数。
func (s *OrderedSet[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// Values 按插入顺序返回全部元素。
func (s *OrderedSet[K]) Values() []K {
	if s == nil {
		return []K{}
	}
	return s.m.Keys()
}

// All 按插入顺序遍历。
func (s *OrderedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		if s == nil {
			return
		}
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

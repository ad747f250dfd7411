package xcoll_test

import (
	"fmt"
	"testing"

	"github.com/omeyang/xbean/pkg/collection/xcoll"
)

func benchHeroes(n int) []*User {
	kingdoms := [...]string{"蜀", "魏", "吴"}
	out := make([]*User, n)
	for i := range out {
		out[i] = user(fmt.Sprintf("hero-%d", i), kingdoms[i%3], 20+i%40, float64(i%100))
	}
	return out
}

func BenchmarkSelect(b *testing.B) {
	for _, n := range []int{100, 10000} {
		coll := benchHeroes(n)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = xcoll.Select(coll, "userInfo.age", 28, 30)
			}
		})
	}
}

func BenchmarkGroup(b *testing.B) {
	coll := benchHeroes(10000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = xcoll.Group(coll, "kingdom")
	}
}

func BenchmarkRemoveDuplicate(b *testing.B) {
	coll := benchHeroes(10000)
	b.Run("single", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = xcoll.RemoveDuplicate(coll, "userInfo.age")
		}
	})
	b.Run("composite", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = xcoll.RemoveDuplicate(coll, "kingdom", "userInfo.age")
		}
	})
}

func BenchmarkSortBy(b *testing.B) {
	coll := benchHeroes(10000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = xcoll.SortBy(coll, "kingdom", "score desc")
	}
}

func BenchmarkSum(b *testing.B) {
	coll := benchHeroes(10000)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = xcoll.Sum(coll, "score")
	}
}

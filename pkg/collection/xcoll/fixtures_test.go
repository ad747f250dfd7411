package xcoll_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omeyang/xbean/pkg/bean/xpath"
)

type UserInfo struct {
	Age  any
	City string
}

type User struct {
	Name     string
	Kingdom  string
	UserInfo *UserInfo
	AttrMap  map[string]any
	Loves    []string
	Score    float64
}

func user(name, kingdom string, age int, score float64) *User {
	return &User{
		Name:     name,
		Kingdom:  kingdom,
		UserInfo: &UserInfo{Age: age},
		AttrMap:  map[string]any{"国": kingdom},
		Loves:    []string{"骑马", "读书"},
		Score:    score,
	}
}

// heroes 返回测试用的集合，每次调用都是新的副本。
func heroes() []*User {
	return []*User{
		user("张飞", "蜀", 28, 90.5),
		user("关羽", "蜀", 30, 95),
		user("曹操", "魏", 35, 88),
		user("赵云", "蜀", 28, 92),
		user("孙权", "吴", 27, 85),
	}
}

func names(us []*User) []string {
	out := make([]string, 0, len(us))
	for _, u := range us {
		if u == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, u.Name)
	}
	return out
}

func mustParse(t *testing.T, s string) xpath.Path {
	t.Helper()
	p, err := xpath.Parse(s)
	require.NoError(t, err)
	return p
}

package xcoll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xprop"
	"github.com/omeyang/xbean/pkg/collection/xcoll"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	g, err := xcoll.Group(heroes(), "kingdom")
	require.NoError(t, err)
	assert.Equal(t, []any{"蜀", "魏", "吴"}, g.Keys())

	shu, ok := g.Get("蜀")
	require.True(t, ok)
	assert.Equal(t, []string{"张飞", "关羽", "赵云"}, names(shu))
}

func TestGroup_Partitions(t *testing.T) {
	t.Parallel()

	coll := append(heroes(), nil, &User{Name: "无名"})
	for _, path := range []string{"kingdom", "userInfo.age", "attrMap(国)", "loves"} {
		g, err := xcoll.Group(coll, path)
		require.NoError(t, err, path)

		var all []*User
		for k, bucket := range g.All() {
			require.NotEmpty(t, bucket, path)
			for _, u := range bucket {
				v, err := xprop.Get(u, path)
				require.NoError(t, err)
				assert.Equal(t, k, v, "%s: %v", path, u)
			}
			all = append(all, bucket...)
		}
		assert.ElementsMatch(t, coll, all, path)
	}
}

func TestGroup_NilElementsShareNilKey(t *testing.T) {
	t.Parallel()

	coll := []*User{nil, {Name: "无名"}, user("张飞", "蜀", 28, 0)}
	g, err := xcoll.Group(coll, "userInfo.age")
	require.NoError(t, err)

	assert.Equal(t, []any{nil, 28}, g.Keys())
	bucket, _ := g.Get(nil)
	assert.Equal(t, []string{"<nil>", "无名"}, names(bucket))
}

func TestGroupWith(t *testing.T) {
	t.Parallel()

	notWei := xpred.Not(xpred.Equal[*User](mustParse(t, "kingdom"), "魏"))
	g, err := xcoll.GroupWith(heroes(), "userInfo.age", notWei)
	require.NoError(t, err)

	assert.Equal(t, []any{28, 30, 27}, g.Keys())
	assert.False(t, g.Has(35))
}

func TestGroupBy(t *testing.T) {
	t.Parallel()

	band := xpred.MapFunc[*User, string](func(u *User) string {
		if u.Score >= 90 {
			return "A"
		}
		return "B"
	})
	g, err := xcoll.GroupBy[*User, string](heroes(), band)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, g.Keys())

	b, _ := g.Get("B")
	assert.Equal(t, []string{"曹操", "孙权"}, names(b))

	g, err = xcoll.GroupByWith[*User, string](heroes(), band, xpred.Func[*User](func(u *User) bool { return u.Kingdom == "蜀" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, g.Keys())
}

func TestGroupOne_LastWins(t *testing.T) {
	t.Parallel()

	type item struct {
		Name string
		V    int
	}
	coll := []item{{"A", 1}, {"B", 1}, {"A", 2}}

	g, err := xcoll.GroupOne(coll, "name")
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, g.Keys())

	a, ok := g.Get("A")
	require.True(t, ok)
	assert.Equal(t, item{"A", 2}, a)

	// Group 收集全部，二者策略不同
	all, err := xcoll.Group(coll, "name")
	require.NoError(t, err)
	bucket, _ := all.Get("A")
	assert.Equal(t, []item{{"A", 1}, {"A", 2}}, bucket)
}

func TestGroupOne_Property(t *testing.T) {
	t.Parallel()

	coll := heroes()
	g, err := xcoll.GroupOne(coll, "userInfo.age")
	require.NoError(t, err)

	for k, got := range g.All() {
		var last *User
		for _, u := range coll {
			if u.UserInfo.Age == k {
				last = u
			}
		}
		assert.Same(t, last, got, "key %v", k)
	}
}

func TestGroupCount(t *testing.T) {
	t.Parallel()

	g, err := xcoll.GroupCount(heroes(), "kingdom")
	require.NoError(t, err)
	assert.Equal(t, map[any]int{"蜀": 3, "魏": 1, "吴": 1}, xcoll.ToMap(g))
	assert.Equal(t, []int{3, 1, 1}, g.Values())
}

func TestGroup_NilCollection(t *testing.T) {
	t.Parallel()

	g, err := xcoll.Group[*User](nil, "name")
	require.NoError(t, err)
	assert.Zero(t, g.Len())

	one, err := xcoll.GroupOne[*User](nil, "name")
	require.NoError(t, err)
	assert.Zero(t, one.Len())
}

func TestGroup_ArgumentErrors(t *testing.T) {
	t.Parallel()

	for _, coll := range [][]*User{nil, heroes()} {
		_, err := xcoll.Group(coll, "")
		assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)

		_, err = xcoll.GroupOne(coll, " ")
		assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)

		_, err = xcoll.GroupCount(coll, "a..b")
		assert.ErrorIs(t, err, xerrs.ErrInvalidPathSyntax)

		_, err = xcoll.GroupWith[*User](coll, "name", nil)
		assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)

		_, err = xcoll.GroupBy[*User, string](coll, nil)
		assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)
	}
}

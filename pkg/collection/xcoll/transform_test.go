package xcoll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/collection/xcoll"
	"github.com/omeyang/xbean/pkg/collection/xkey"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

type UserView struct {
	Name  string
	Score string
}

func TestCollect(t *testing.T) {
	t.Parallel()

	coll := []*User{user("张飞", "蜀", 28, 90.5), nil, {Name: "无名"}}

	ages, err := xcoll.Collect(coll, xpred.Property[*User](mustParse(t, "userInfo.age")))
	require.NoError(t, err)
	assert.Equal(t, []any{28, nil, nil}, ages)

	called := 0
	lens, err := xcoll.Collect[*User, int](coll, xpred.MapFunc[*User, int](func(u *User) int {
		called++
		return len(u.Loves)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 0}, lens)
	assert.Equal(t, 2, called)

	_, err = xcoll.Collect[*User, int](coll, nil)
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)

	_, err = xcoll.Collect(coll, xpred.MapFunc[*User, string](nil))
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)

	_, err = xcoll.Collect(coll, xpred.TransformFunc[*User, string](nil))
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)
}

func TestCollect_ElementError(t *testing.T) {
	t.Parallel()

	_, err := xcoll.Collect(heroes(), xpred.PropertyAs[*User, int](mustParse(t, "name")))
	assert.ErrorIs(t, err, xerrs.ErrConversion)
	assert.Contains(t, err.Error(), "collect: element 0")
}

func TestCollectInto_Struct(t *testing.T) {
	t.Parallel()

	coll := []*User{user("张飞", "蜀", 28, 90.5), nil}

	views, err := xcoll.CollectInto[*User, UserView](coll)
	require.NoError(t, err)
	assert.Equal(t, []UserView{{Name: "张飞", Score: "90.5"}, {}}, views)

	ptrs, err := xcoll.CollectInto[*User, *UserView](coll, "name")
	require.NoError(t, err)
	require.Len(t, ptrs, 2)
	assert.Equal(t, &UserView{Name: "张飞"}, ptrs[0])
	assert.Nil(t, ptrs[1])
}

func TestCollectInto_Map(t *testing.T) {
	t.Parallel()

	out, err := xcoll.CollectInto[*User, map[string]any](heroes()[:1], "name", "kingdom")
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"name": "张飞", "kingdom": "蜀"}}, out)
}

func TestCollectInto_Errors(t *testing.T) {
	t.Parallel()

	_, err := xcoll.CollectInto[*User, UserView](heroes(), "kingdom")
	assert.ErrorIs(t, err, xerrs.ErrNoSuchProperty)

	_, err = xcoll.CollectInto[*User, UserView](heroes(), "nope")
	assert.ErrorIs(t, err, xerrs.ErrNoSuchProperty)

	_, err = xcoll.CollectInto[*User, UserView](nil, "name", " ")
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)

	_, err = xcoll.CollectInto[*User, int](heroes())
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)
}

func TestRemoveDuplicate(t *testing.T) {
	t.Parallel()

	coll := heroes()

	got, err := xcoll.RemoveDuplicate(coll, "kingdom")
	require.NoError(t, err)
	assert.Equal(t, []string{"张飞", "曹操", "孙权"}, names(got))

	got, err = xcoll.RemoveDuplicate(coll, "kingdom", "userInfo.age")
	require.NoError(t, err)
	assert.Equal(t, []string{"张飞", "关羽", "曹操", "孙权"}, names(got))

	// 原集合不变
	assert.Len(t, coll, 5)
	assert.Equal(t, "关羽", coll[1].Name)
}

func TestRemoveDuplicate_NaturalEquality(t *testing.T) {
	t.Parallel()

	got, err := xcoll.RemoveDuplicate([]any{1, "1", 1, nil, []int{1}, []int{1}, nil, int64(1)})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "1", nil, []int{1}, int64(1)}, got)

	tuples, err := xcoll.RemoveDuplicate([]xkey.Tuple{{"a", 1}, {"a", 2}, {"a", 1}})
	require.NoError(t, err)
	assert.Equal(t, []xkey.Tuple{{"a", 1}, {"a", 2}}, tuples)
}

func TestRemoveDuplicate_Idempotent(t *testing.T) {
	t.Parallel()

	coll := append(heroes(), nil, nil, &User{Name: "无名"})
	for _, paths := range [][]string{nil, {"kingdom"}, {"userInfo.age", "kingdom"}, {"loves"}} {
		once, err := xcoll.RemoveDuplicate(coll, paths...)
		require.NoError(t, err)
		twice, err := xcoll.RemoveDuplicate(once, paths...)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "%v", paths)
	}
}

func TestForEach(t *testing.T) {
	t.Parallel()

	coll := append(heroes(), nil)
	require.NoError(t, xcoll.ForEach(coll, "userInfo.city", "洛阳"))
	for _, u := range coll[:5] {
		assert.Equal(t, "洛阳", u.UserInfo.City)
	}

	require.NoError(t, xcoll.ForEach(coll, "attrMap(国)", "汉"))
	assert.Equal(t, "汉", coll[0].AttrMap["国"])

	// 值类型元素原位修改
	values := []User{{Name: "a"}, {Name: "b"}}
	require.NoError(t, xcoll.ForEach(values, "score", "60"))
	assert.InDelta(t, 60.0, values[1].Score, 0)

	err := xcoll.ForEach(values, "userInfo.city", "x")
	assert.ErrorIs(t, err, xerrs.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "forEach: element 0")

	assert.ErrorIs(t, xcoll.ForEach(values, "", 1), xerrs.ErrInvalidArgument)
}

func TestPropertyValueList(t *testing.T) {
	t.Parallel()

	coll := []*User{
		{UserInfo: &UserInfo{Age: 28}},
		{UserInfo: &UserInfo{Age: nil}},
	}
	got, err := xcoll.PropertyValueList(coll, "userInfo.age")
	require.NoError(t, err)
	assert.Equal(t, []any{28, nil}, got)

	coll = []*User{
		{AttrMap: map[string]any{"蜀国": "赵子龙"}},
		{AttrMap: map[string]any{"蜀国": "赵子龙"}},
	}
	got, err = xcoll.PropertyValueList(coll, "attrMap(蜀国)")
	require.NoError(t, err)
	assert.Equal(t, []any{"赵子龙", "赵子龙"}, got)

	got, err = xcoll.PropertyValueList([]*User{nil, {}}, "userInfo.age")
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil}, got)

	got, err = xcoll.PropertyValueList[*User](nil, "name")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPropertyValueSet(t *testing.T) {
	t.Parallel()

	set, err := xcoll.PropertyValueSet(heroes(), "userInfo.age")
	require.NoError(t, err)
	assert.Equal(t, []any{28, 30, 35, 27}, set.Values())
	assert.True(t, set.Has(35))
	assert.False(t, set.Has(int64(35)))
}

func TestPropertyValueMap(t *testing.T) {
	t.Parallel()

	m, err := xcoll.PropertyValueMap(heroes(), "kingdom", "name")
	require.NoError(t, err)
	assert.Equal(t, []any{"蜀", "魏", "吴"}, m.Keys())
	assert.Equal(t, []any{"赵云", "曹操", "孙权"}, m.Values())

	_, err = xcoll.PropertyValueMap(heroes(), "kingdom", "")
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)
}

func TestPropertyValueMap_NilElementSkipped(t *testing.T) {
	t.Parallel()

	// 链路中途为 nil 的元素得到 nil key，之后的 nil 元素不覆盖它
	coll := []*User{{Name: "无名"}, nil}
	m, err := xcoll.PropertyValueMap(coll, "userInfo.age", "name")
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get(nil)
	require.True(t, ok)
	assert.Equal(t, "无名", v)

	m, err = xcoll.PropertyValueMap([]*User{nil, nil}, "name", "name")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestPartition(t *testing.T) {
	t.Parallel()

	parts, err := xcoll.Partition([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, parts)

	src := []int{1, 2}
	parts, err = xcoll.Partition(src, 5)
	require.NoError(t, err)
	parts[0][0] = 9
	assert.Equal(t, 1, src[0])

	parts, err = xcoll.Partition[int](nil, 3)
	require.NoError(t, err)
	assert.Empty(t, parts)

	_, err = xcoll.Partition([]int{1}, 0)
	assert.ErrorIs(t, err, xerrs.ErrInvalidArgument)
}

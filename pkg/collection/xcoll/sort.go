package xcoll

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xbean/pkg/bean/xconv"
	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/bean/xprop"
)

// sortKey 是一条排序规则。
type sortKey struct {
	path xpath.Path
	desc bool
}

// parseSortKey 解析 "age"、"age desc"、"name asc" 形式的排序规则，方向不区分大小写。
func (q Query[T]) parseSortKey(spec string) (sortKey, error) {
	s := strings.TrimSpace(spec)
	var desc bool
	if i := strings.LastIndexAny(s, " \t"); i >= 0 {
		switch strings.ToLower(s[i+1:]) {
		case "desc":
			desc = true
			s = s[:i]
		case "asc":
			s = s[:i]
		}
	}
	p, err := q.parsePath(opSort, s)
	if err != nil {
		return sortKey{}, err
	}
	return sortKey{path: p, desc: desc}, nil
}

// SortBy 按一条或多条规则稳定排序，返回新 slice，不修改 coll。
//
// 值先按类别排序：nil（含 nil 元素）、数值、bool、字符串、time.Time、其他，
// 升序时 nil 在最前，降序时整体反转。同一类别内数值按 decimal 比较，
// bool 中 false 在前，字符串按字典序，time.Time 按时间先后，其他值按 fmt 文本比较。
// 数值字符串属于字符串，不与数值混排。
func SortBy[T any](coll []T, specs ...string) ([]T, error) {
	return Query[T]{}.SortBy(coll, specs...)
}

// SortBy 见 [SortBy]。
func (q Query[T]) SortBy(coll []T, specs ...string) ([]T, error) {
	if len(specs) == 0 {
		return nil, xerrs.InvalidArgument(opSort, "no sort key")
	}
	keys := make([]sortKey, 0, len(specs))
	for _, spec := range specs {
		k, err := q.parseSortKey(spec)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	type row struct {
		elem T
		vals []any
	}
	r := q.Resolver()
	rows := make([]row, len(coll))
	for i, e := range coll {
		rows[i] = row{elem: e, vals: make([]any, len(keys))}
		if xprop.IsNil(e) {
			continue
		}
		for j, k := range keys {
			v, err := r.Resolve(e, k.path)
			if err != nil {
				return nil, elemErr(opSort, i, err)
			}
			rows[i].vals[j] = v
		}
	}

	slices.SortStableFunc(rows, func(a, b row) int {
		for j, k := range keys {
			c := compareValues(a.vals[j], b.vals[j])
			if k.desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.elem
	}
	return out, nil
}

// 排序类别，数值小的在前。
const (
	rankNil = iota
	rankNumber
	rankBool
	rankString
	rankTime
	rankOther
)

// rankOf 返回 v 的排序类别，数值类别同时返回其 decimal 值。
func rankOf(v any) (int, decimal.Decimal) {
	if v == nil {
		return rankNil, decimal.Decimal{}
	}
	if d, ok := number(v); ok {
		return rankNumber, d
	}
	switch v.(type) {
	case bool:
		return rankBool, decimal.Decimal{}
	case time.Time:
		return rankTime, decimal.Decimal{}
	}
	if reflect.TypeOf(v).Kind() == reflect.String {
		return rankString, decimal.Decimal{}
	}
	return rankOther, decimal.Decimal{}
}

// compareValues 给出排序用的全序：先比较类别，类别相同再比较值。
func compareValues(a, b any) int {
	ra, da := rankOf(a)
	rb, db := rankOf(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNil:
		return 0
	case rankNumber:
		return da.Cmp(db)
	case rankBool:
		return compareBool(a.(bool), b.(bool))
	case rankString:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case rankTime:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// number 只把数值类型视为数值，数值字符串仍按字符串比较。
func number(v any) (decimal.Decimal, bool) {
	if _, ok := v.(decimal.Decimal); !ok && !xconv.IsNumericKind(reflect.TypeOf(v).Kind()) {
		return decimal.Decimal{}, false
	}
	d, err := xconv.Decimal(v)
	return d, err == nil
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

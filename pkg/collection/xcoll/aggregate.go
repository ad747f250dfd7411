package xcoll

import (
	"github.com/shopspring/decimal"

	"github.com/omeyang/xbean/pkg/bean/xconv"
)

// Sum 对每个元素 path 处的数值求和，nil 元素与 nil 值被跳过。
//
// 数值统一按 decimal 计算，不丢失精度；数值字符串也被接受（见 xconv.Decimal）。
// 非数值返回 KindTypeMismatch，并带上元素下标。
func Sum[T any](coll []T, path string) (decimal.Decimal, error) {
	return Query[T]{}.Sum(coll, path)
}

// Sum 见 [Sum]。
func (q Query[T]) Sum(coll []T, path string) (decimal.Decimal, error) {
	total, _, err := q.sum(opSum, coll, path)
	return total, err
}

// Avg 返回 path 处非 nil 数值的平均值，四舍五入（远离零）到 scale 位小数。
// 没有任何数值时返回 false。
func Avg[T any](coll []T, path string, scale int32) (decimal.Decimal, bool, error) {
	return Query[T]{}.Avg(coll, path, scale)
}

// Avg 见 [Avg]。
func (q Query[T]) Avg(coll []T, path string, scale int32) (decimal.Decimal, bool, error) {
	total, n, err := q.sum(opAvg, coll, path)
	if err != nil || n == 0 {
		return decimal.Zero, false, err
	}
	return total.DivRound(decimal.NewFromInt(int64(n)), scale), true, nil
}

func (q Query[T]) sum(op string, coll []T, path string) (decimal.Decimal, int, error) {
	p, err := q.parsePath(op, path)
	if err != nil {
		return decimal.Zero, 0, err
	}

	total := decimal.Zero
	var n int
	var convErr error
	err = q.eachValue(op, coll, p, func(i int, _ T, v any) {
		if convErr != nil || v == nil {
			return
		}
		d, err := xconv.Decimal(v)
		if err != nil {
			convErr = elemErr(op, i, err)
			return
		}
		total = total.Add(d)
		n++
	})
	if err != nil {
		return decimal.Zero, 0, err
	}
	if convErr != nil {
		return decimal.Zero, 0, convErr
	}
	return total, n, nil
}

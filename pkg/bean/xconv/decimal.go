package xconv

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
)

const opDecimal = "decimal"

// Decimal 把数值统一为 decimal.Decimal。
//
// 接受所有整数、浮点类型（含以其为底层类型的自定义类型）、数值字符串、
// json.Number 以及 decimal.Decimal。nil 与非数值返回 [xerrs.KindTypeMismatch]。
func Decimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case *decimal.Decimal:
		if v != nil {
			return *v, nil
		}
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case float64:
		return fromFloat(value, v, 64)
	case float32:
		return fromFloat(value, float64(v), 32)
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	}
	return reflectDecimal(value)
}

// IsNumeric 报告 value 能否被 [Decimal] 转换。
func IsNumeric(value any) bool {
	_, err := Decimal(value)
	return err == nil
}

func reflectDecimal(value any) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, notNumeric(value)
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return decimal.Zero, notNumeric(value)
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v.Uint()), 0), nil
	case reflect.Float32:
		return fromFloat(value, v.Float(), 32)
	case reflect.Float64:
		return fromFloat(value, v.Float(), 64)
	case reflect.String:
		return parseDecimal(v.String())
	default:
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d, nil
		}
		return decimal.Zero, notNumeric(value)
	}
}

// fromFloat 拒绝 NaN 与 ±Inf，decimal 无法表示它们。
func fromFloat(value any, f float64, bits int) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, xerrs.New(xerrs.KindTypeMismatch, opDecimal, "%v is not a finite number", value)
	}
	if bits == 32 {
		return decimal.NewFromFloat32(float32(f)), nil
	}
	return decimal.NewFromFloat(f), nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, xerrs.New(xerrs.KindTypeMismatch, opDecimal, "%q is not a number", s).WithCause(err)
	}
	return d, nil
}

func notNumeric(value any) *xerrs.Error {
	return xerrs.New(xerrs.KindTypeMismatch, opDecimal, "%T is not numeric", value)
}

package xkey

import (
	"encoding/binary"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Tuple 是由多个属性值组成的组合键。
type Tuple []any

// Equal 逐项比较两个 Tuple。
func (t Tuple) Equal(o Tuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !Equal(t[i], o[i]) {
			return false
		}
	}
	return true
}

// Equal 报告 a 与 b 作为键是否相等。
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Tuple:
		y, ok := b.(Tuple)
		return ok && x.Equal(y)
	case time.Time:
		y, ok := b.(time.Time)
		return ok && x.Equal(y)
	case decimal.Decimal:
		y, ok := b.(decimal.Decimal)
		return ok && x.Equal(y)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Hash 返回 v 的 64 位哈希，与 [Equal] 一致。
func Hash(v any) uint64 {
	d := xxhash.New()
	write(d, v)
	return d.Sum64()
}

func write(d *xxhash.Digest, v any) {
	var buf [8]byte
	putUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}

	switch x := v.(type) {
	case nil:
		_, _ = d.WriteString("nil")
		return
	case string:
		_, _ = d.WriteString("string:")
		_, _ = d.WriteString(x)
		return
	case Tuple:
		_, _ = d.WriteString("tuple:")
		putUint(uint64(len(x)))
		for _, e := range x {
			write(d, e)
		}
		return
	case time.Time:
		_, _ = d.WriteString("time:")
		putUint(uint64(x.Unix()))
		putUint(uint64(x.Nanosecond()))
		return
	case decimal.Decimal:
		// String 去除了尾随 0，1.0 与 1 得到相同文本
		_, _ = d.WriteString("decimal:")
		_, _ = d.WriteString(x.String())
		return
	}

	rv := reflect.ValueOf(v)
	_, _ = d.WriteString(rv.Type().String())
	_, _ = d.WriteString(":")

	if !rv.Comparable() {
		// DeepEqual 相等的值长度必然相同
		switch rv.Kind() {
		case reflect.Slice, reflect.Map, reflect.Array, reflect.String:
			putUint(uint64(rv.Len()))
		}
		return
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		putUint(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		putUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		putUint(floatBits(rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		putUint(floatBits(real(c)))
		putUint(floatBits(imag(c)))
	case reflect.Bool:
		if rv.Bool() {
			putUint(1)
		} else {
			putUint(0)
		}
	case reflect.String:
		_, _ = d.WriteString(rv.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		putUint(uint64(rv.Pointer()))
	default:
		// 结构体、数组只哈希类型，相等性由 Equal 判定
	}
}

// floatBits 把 -0 归一为 0，与 == 保持一致。
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

package xconv

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
)

const opConvert = "convert"

// decodeHook 弱类型解码时的额外规则
var decodeHook = mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	mapstructure.StringToTimeHookFunc(time.RFC3339),
	mapstructure.TextUnmarshallerHookFunc(),
)

// To 把 value 转换为 typ 类型的值。
//
// value 为 nil 时：typ 可持有 nil（指针、接口、map、slice 等）返回其零值，
// 否则返回转换错误。
func To(value any, typ reflect.Type) (reflect.Value, error) {
	if typ == nil {
		return reflect.Value{}, xerrs.InvalidArgument(opConvert, "target type is nil")
	}
	if value == nil {
		if nillable(typ.Kind()) {
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, conversionError(value, typ, nil)
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(typ) {
		if v.Type() != typ {
			return v.Convert(typ), nil
		}
		return v, nil
	}
	if directlyConvertible(v.Type(), typ) {
		return v.Convert(typ), nil
	}
	if typ.Kind() == reflect.Pointer && v.Kind() != reflect.Pointer {
		elem, err := To(value, typ.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(typ.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}
	return decode(value, typ)
}

// Convert 是 To 的泛型版本。
func Convert[T any](value any) (T, error) {
	var zero T
	v, err := To(value, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	// 接口类型的零值 Interface() 为 nil，断言需用 comma-ok 形式
	out, _ := v.Interface().(T)
	return out, nil
}

func decode(value any, typ reflect.Type) (reflect.Value, error) {
	out := reflect.New(typ)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decodeHook,
		WeaklyTypedInput: true,
		Result:           out.Interface(),
	})
	if err != nil {
		return reflect.Value{}, conversionError(value, typ, err)
	}
	if err := dec.Decode(value); err != nil {
		return reflect.Value{}, conversionError(value, typ, err)
	}
	return out.Elem(), nil
}

// directlyConvertible 只放行不会改变值语义的 reflect 转换。
// reflect 允许 int → string（按码点），这里不接受。
func directlyConvertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if from.Kind() == to.Kind() {
		return true
	}
	return IsNumericKind(from.Kind()) && IsNumericKind(to.Kind())
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// IsNumericKind 报告 k 是否为整数或浮点类型。
func IsNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func conversionError(value any, typ reflect.Type, cause error) *xerrs.Error {
	e := xerrs.New(xerrs.KindConversion, opConvert, "cannot convert %T to %s", value, typ)
	if cause != nil {
		e = e.WithCause(cause)
	}
	return e
}

package xprop

import (
	"reflect"

	"github.com/omeyang/xbean/pkg/bean/xconv"
	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
)

// accessor 按当前值的运行时形态读写单个路径段。
//
// 返回的错误只带 Kind 与消息，Op、Path、Root 由 Resolver 补全。
// get 的 bool 返回值表示该跳是否存在（map key 缺失、嵌入指针为 nil 时为 false）。
type accessor interface {
	get(v reflect.Value, seg xpath.Segment, r *Resolver) (reflect.Value, bool, error)
	set(v reflect.Value, seg xpath.Segment, value any, r *Resolver) error
}

type (
	beanAccessor  struct{}
	mapAccessor   struct{}
	listAccessor  struct{}
	arrayAccessor struct{}
)

// accessorFor 返回 v（已解引用）对应的 accessor；标量等不可导航的值返回 false。
func accessorFor(v reflect.Value) (accessor, bool) {
	switch v.Kind() {
	case reflect.Struct:
		return beanAccessor{}, true
	case reflect.Map:
		return mapAccessor{}, true
	case reflect.Slice:
		return listAccessor{}, true
	case reflect.Array:
		return arrayAccessor{}, true
	default:
		return nil, false
	}
}

// ---------------------------------------------------------------------------
// bean

func (beanAccessor) get(v reflect.Value, seg xpath.Segment, r *Resolver) (reflect.Value, bool, error) {
	if seg.Kind != xpath.KindField {
		return reflect.Value{}, false, mismatch(v, seg)
	}
	return r.readField(v, seg.Name)
}

func (beanAccessor) set(v reflect.Value, seg xpath.Segment, value any, r *Resolver) error {
	if seg.Kind != xpath.KindField {
		return mismatch(v, seg)
	}
	return r.writeField(v, seg.Name, value)
}

// ---------------------------------------------------------------------------
// map

func (mapAccessor) get(v reflect.Value, seg xpath.Segment, r *Resolver) (reflect.Value, bool, error) {
	key, ok := r.mapKeyOf(seg)
	if !ok {
		return reflect.Value{}, false, mismatch(v, seg)
	}
	k, err := mapKey(v.Type(), key)
	if err != nil {
		return reflect.Value{}, false, err
	}
	e := v.MapIndex(k)
	if !e.IsValid() {
		return reflect.Value{}, false, nil
	}
	return e, true, nil
}

func (mapAccessor) set(v reflect.Value, seg xpath.Segment, value any, r *Resolver) error {
	key, ok := r.mapKeyOf(seg)
	if !ok {
		return mismatch(v, seg)
	}
	if v.IsNil() || !v.CanInterface() {
		return xerrs.New(xerrs.KindNotWritable, "", "cannot put %q into nil %s", key, v.Type())
	}
	k, err := mapKey(v.Type(), key)
	if err != nil {
		return err
	}
	e, err := xconv.To(value, v.Type().Elem())
	if err != nil {
		return err
	}
	v.SetMapIndex(k, e)
	return nil
}

// mapKey 把路径中的 key 文本转换为 map 的 key 类型。
func mapKey(t reflect.Type, key string) (reflect.Value, error) {
	k, err := xconv.To(key, t.Key())
	if err != nil {
		return reflect.Value{}, xerrs.New(xerrs.KindTypeMismatch, "",
			"key %q is not assignable to %s", key, t.Key()).WithCause(err)
	}
	return k, nil
}

// ---------------------------------------------------------------------------
// slice / array

func (listAccessor) get(v reflect.Value, seg xpath.Segment, _ *Resolver) (reflect.Value, bool, error) {
	return element(v, seg)
}

func (listAccessor) set(v reflect.Value, seg xpath.Segment, value any, _ *Resolver) error {
	return setElement(v, seg, value)
}

func (arrayAccessor) get(v reflect.Value, seg xpath.Segment, _ *Resolver) (reflect.Value, bool, error) {
	return element(v, seg)
}

func (arrayAccessor) set(v reflect.Value, seg xpath.Segment, value any, _ *Resolver) error {
	if !v.CanAddr() {
		return xerrs.New(xerrs.KindNotWritable, "", "array %s is not addressable", v.Type())
	}
	return setElement(v, seg, value)
}

func element(v reflect.Value, seg xpath.Segment) (reflect.Value, bool, error) {
	if seg.Kind != xpath.KindIndex {
		return reflect.Value{}, false, mismatch(v, seg)
	}
	if seg.Index >= v.Len() {
		return reflect.Value{}, false, outOfRange(v, seg.Index)
	}
	return v.Index(seg.Index), true, nil
}

func setElement(v reflect.Value, seg xpath.Segment, value any) error {
	e, _, err := element(v, seg)
	if err != nil {
		return err
	}
	if !e.CanSet() {
		return xerrs.New(xerrs.KindNotWritable, "", "element %s of %s is not settable", seg, v.Type())
	}
	conv, err := xconv.To(value, e.Type())
	if err != nil {
		return err
	}
	e.Set(conv)
	return nil
}

// ---------------------------------------------------------------------------

func mismatch(v reflect.Value, seg xpath.Segment) error {
	if seg.Kind == xpath.KindField && v.Kind() == reflect.Map {
		return xerrs.New(xerrs.KindTypeMismatch, "",
			"field %q cannot be read from %s, use (%s)", seg.Name, v.Type(), seg.Name)
	}
	return xerrs.New(xerrs.KindTypeMismatch, "", "%s segment %s cannot be applied to %s", seg.Kind, seg, v.Type())
}

func outOfRange(v reflect.Value, i int) error {
	return xerrs.New(xerrs.KindIndexOutOfRange, "", "index %d out of range for %s of length %d", i, v.Type(), v.Len())
}

package xerrs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind 标识 bean 操作失败的类别。
//
// 调用方应通过 Kind（或 errors.Is 对应哨兵错误）区分失败原因，
// 而不是解析错误消息文本。
type Kind uint8

const (
	// KindUnknown 未归类的错误，如 getter 方法自身返回的错误。
	KindUnknown Kind = iota

	// KindInvalidArgument 参数违约：属性名/路径为空白、目标类型缺失等。
	// 在处理任何元素之前同步返回。
	KindInvalidArgument

	// KindInvalidPathSyntax 路径表达式语法错误：括号不匹配、下标非数字、map key 为空等。
	KindInvalidPathSyntax

	// KindTypeMismatch 路径段与运行时值的形态不匹配，例如在 map 上做字段访问、
	// 在标量上做下标访问。
	KindTypeMismatch

	// KindIndexOutOfRange 下标越界。
	KindIndexOutOfRange

	// KindNoSuchProperty bean 上不存在对应的字段或 getter。
	KindNoSuchProperty

	// KindNotWritable 属性不可写：字段未导出、值不可寻址或缺少 setter。
	KindNotWritable

	// KindConversion 类型转换失败。
	KindConversion

	// KindNoMatch 保留给“必须命中”语义的查找；查询引擎本身不返回此类错误。
	KindNoMatch
)

var kindNames = [...]string{
	KindUnknown:           "unknown",
	KindInvalidArgument:   "invalid argument",
	KindInvalidPathSyntax: "invalid path syntax",
	KindTypeMismatch:      "type mismatch",
	KindIndexOutOfRange:   "index out of range",
	KindNoSuchProperty:    "no such property",
	KindNotWritable:       "property not writable",
	KindConversion:        "conversion failed",
	KindNoMatch:           "no match",
}

// String 返回类别的可读名称。
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// 每个类别对应一个哨兵错误，用于 errors.Is 判定。
var (
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrInvalidPathSyntax = &Error{Kind: KindInvalidPathSyntax}
	ErrTypeMismatch      = &Error{Kind: KindTypeMismatch}
	ErrIndexOutOfRange   = &Error{Kind: KindIndexOutOfRange}
	ErrNoSuchProperty    = &Error{Kind: KindNoSuchProperty}
	ErrNotWritable       = &Error{Kind: KindNotWritable}
	ErrConversion        = &Error{Kind: KindConversion}
	ErrNoMatch           = &Error{Kind: KindNoMatch}
)

// Error 是所有 bean 操作返回的结构化错误。
//
// 除 Kind 外的字段都是诊断信息：Op 为发生失败的操作名，Path 为路径表达式原文，
// Root 为解析时的根对象（通常是集合中的某个元素），Cause 为底层错误。
type Error struct {
	Kind    Kind
	Op      string
	Path    string
	Root    any
	Message string
	Cause   error
}

// New 创建指定类别的错误。
func New(kind Kind, op, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Op: op, Message: msg}
}

// InvalidArgument 创建参数违约错误。
func InvalidArgument(op, format string, args ...any) *Error {
	return New(KindInvalidArgument, op, format, args...)
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("xbean: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		fmt.Fprintf(&b, " at path %q", e.Path)
	}
	if e.Root != nil {
		fmt.Fprintf(&b, " on %T", e.Root)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap 返回底层错误，支持 errors.Is / errors.As 链。
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 使 errors.Is(err, ErrTypeMismatch) 这类按类别的判定成立。
// 只有不携带任何诊断信息的哨兵错误才按 Kind 匹配。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.isSentinel() && t.Kind == e.Kind
}

func (e *Error) isSentinel() bool {
	return e.Op == "" && e.Path == "" && e.Root == nil && e.Message == "" && e.Cause == nil
}

// WithOp 返回设置了操作名的副本。已有操作名时保留最内层的名称。
func (e *Error) WithOp(op string) *Error {
	c := *e
	if c.Op == "" {
		c.Op = op
	}
	return &c
}

// WithPath 返回设置了路径的副本。
func (e *Error) WithPath(path string) *Error {
	c := *e
	c.Path = path
	return &c
}

// WithRoot 返回设置了根对象的副本。
func (e *Error) WithRoot(root any) *Error {
	c := *e
	c.Root = root
	return &c
}

// WithCause 返回设置了底层错误的副本。
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.Cause = cause
	return &c
}

// KindOf 提取 err 链上第一个 *Error 的类别；非本包错误返回 KindUnknown。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind 判断 err 链上是否存在指定类别的 *Error。
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsResolution 判断 err 是否属于路径解析失败
// （TypeMismatch / IndexOutOfRange / NoSuchProperty）。
func IsResolution(err error) bool {
	switch KindOf(err) {
	case KindTypeMismatch, KindIndexOutOfRange, KindNoSuchProperty:
		return true
	default:
		return false
	}
}

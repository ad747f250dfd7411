package xpath

import (
	"strconv"
	"strings"
)

// Kind 标识路径段的类型。
type Kind uint8

const (
	// KindField 按名称访问 bean 属性，如 "userInfo"。
	KindField Kind = iota + 1
	// KindMapKey 按 key 访问 map 元素，如 "(蜀国)"。
	KindMapKey
	// KindIndex 按下标访问 slice/array 元素，如 "[1]"。
	KindIndex
)

// String 返回段类型名称。
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindMapKey:
		return "map-key"
	case KindIndex:
		return "index"
	default:
		return "invalid"
	}
}

// Segment 是路径中的一跳。
// 按 Kind 只有一个字段有意义：Field 用 Name，MapKey 用 Key，Index 用 Index。
type Segment struct {
	Kind  Kind
	Name  string
	Key   string
	Index int
}

// Field 创建字段段。
func Field(name string) Segment { return Segment{Kind: KindField, Name: name} }

// MapKey 创建 map key 段。
func MapKey(key string) Segment { return Segment{Kind: KindMapKey, Key: key} }

// Index 创建下标段。
func Index(i int) Segment { return Segment{Kind: KindIndex, Index: i} }

// String 以路径语法渲染单个段。
func (s Segment) String() string {
	switch s.Kind {
	case KindField:
		return s.Name
	case KindMapKey:
		return "(" + s.Key + ")"
	case KindIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	default:
		return "<invalid>"
	}
}

// Path 是解析后的路径表达式。
//
// Path 不可变，可在多个根对象、多个 goroutine 间复用。
// 零值表示“未解析”，[Path.IsZero] 返回 true，解析器不会产生零值。
type Path struct {
	raw  string
	segs []Segment
}

// New 由段序列构造 Path，原文由段渲染得到。
// 不传段时返回零值；段的合法性（如 Field 名非空）由调用方保证。
func New(segs ...Segment) Path {
	if len(segs) == 0 {
		return Path{}
	}
	own := make([]Segment, len(segs))
	copy(own, segs)
	return Path{raw: render(own), segs: own}
}

// String 返回路径原文（已去除首尾空白）。
func (p Path) String() string { return p.raw }

// Len 返回段数。
func (p Path) Len() int { return len(p.segs) }

// IsZero 报告 p 是否为未解析的零值。
func (p Path) IsZero() bool { return len(p.segs) == 0 }

// At 返回第 i 段，i 越界时 panic。
func (p Path) At(i int) Segment { return p.segs[i] }

// Segments 返回全部段的副本。
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// Last 返回最后一段；零值 Path 返回零值 Segment。
func (p Path) Last() Segment {
	if len(p.segs) == 0 {
		return Segment{}
	}
	return p.segs[len(p.segs)-1]
}

// Parent 返回去掉最后一段的路径。单段路径的 Parent 是零值。
func (p Path) Parent() Path {
	if len(p.segs) <= 1 {
		return Path{}
	}
	segs := p.segs[:len(p.segs)-1]
	return Path{raw: render(segs), segs: segs}
}

// render 将段序列渲染回路径文本。
func render(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		// 后缀段只能挂在字段段之后，否则需要单独成块
		if i > 0 && (s.Kind == KindField || segs[i-1].Kind != KindField) {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

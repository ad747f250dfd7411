package xpath

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
)

const opParse = "parse"

// chunk 是按顶层 '.' 切分出的一块，offset 为其在原文中的字节位置。
type chunk struct {
	text   string
	offset int
}

// Parse 解析路径表达式。
//
// 语法：
//
//	path   := chunk ('.' chunk)*
//	chunk  := name suffix? | suffix
//	suffix := '(' key ')' | '[' digits ']'
//
// 一个块最多带一个后缀，"a(b)[0]" 这类连续后缀是语法错误；
// 需要连续的 map/下标跳转时，用只含后缀的块串联，如 "a(b).(c)"、"rows[0].[1]"。
//
// 失败时返回 [xerrs.KindInvalidPathSyntax] 类别的错误。
func Parse(s string) (Path, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Path{}, syntaxError(s, "path is blank")
	}

	chunks, err := split(raw)
	if err != nil {
		return Path{}, err
	}

	segs := make([]Segment, 0, len(chunks)+1)
	for _, c := range chunks {
		segs, err = appendChunk(segs, raw, c)
		if err != nil {
			return Path{}, err
		}
	}
	return Path{raw: raw, segs: segs}, nil
}

// MustParse 与 Parse 相同，但失败时 panic。
// 仅用于编译期已知合法的常量路径。
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// split 在括号外的 '.' 处切分，同时校验括号配对。
// 括号内的内容原样保留，因此 map key 可以包含 '.'。
func split(raw string) ([]chunk, error) {
	var (
		chunks []chunk
		start  int
		closer byte // 当前未闭合括号期望的闭合符，0 表示不在括号内
		openAt int
	)
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if closer != 0 {
			if ch == closer {
				closer = 0
			}
			continue
		}
		switch ch {
		case '(':
			closer, openAt = ')', i
		case '[':
			closer, openAt = ']', i
		case ')', ']':
			return nil, syntaxError(raw, fmt.Sprintf("unmatched %q at offset %d", ch, i))
		case '.':
			if i == start {
				return nil, syntaxError(raw, fmt.Sprintf("empty segment at offset %d", i))
			}
			chunks = append(chunks, chunk{text: raw[start:i], offset: start})
			start = i + 1
		}
	}
	if closer != 0 {
		return nil, syntaxError(raw, fmt.Sprintf("unclosed %q at offset %d", raw[openAt], openAt))
	}
	if start == len(raw) {
		return nil, syntaxError(raw, "path ends with '.'")
	}
	return append(chunks, chunk{text: raw[start:], offset: start}), nil
}

// appendChunk 将一个块解析为一个或两个段。
func appendChunk(segs []Segment, raw string, c chunk) ([]Segment, error) {
	open := strings.IndexAny(c.text, "([")
	if open < 0 {
		return append(segs, Field(c.text)), nil
	}

	name := c.text[:open]
	closer := byte(')')
	if c.text[open] == '[' {
		closer = ']'
	}
	// split 已保证括号闭合
	end := open + 1 + strings.IndexByte(c.text[open+1:], closer)
	content := c.text[open+1 : end]

	if rest := c.text[end+1:]; rest != "" {
		if rest[0] == '(' || rest[0] == '[' {
			return nil, syntaxError(raw, fmt.Sprintf("chained suffix at offset %d is not supported", c.offset+end+1))
		}
		return nil, syntaxError(raw, fmt.Sprintf("unexpected %q after suffix at offset %d", rest, c.offset+end+1))
	}

	var suffix Segment
	if closer == ')' {
		if content == "" {
			return nil, syntaxError(raw, fmt.Sprintf("empty map key at offset %d", c.offset+open))
		}
		suffix = MapKey(content)
	} else {
		idx, err := parseIndex(content)
		if err != nil {
			return nil, syntaxError(raw, fmt.Sprintf("invalid index %q at offset %d", content, c.offset+open)).WithCause(err)
		}
		suffix = Index(idx)
	}

	if name != "" {
		segs = append(segs, Field(name))
	}
	return append(segs, suffix), nil
}

// parseIndex 只接受非负十进制数字，拒绝符号与空白。
func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

func syntaxError(raw, msg string) *xerrs.Error {
	return xerrs.New(xerrs.KindInvalidPathSyntax, opParse, "%s", msg).WithPath(raw)
}

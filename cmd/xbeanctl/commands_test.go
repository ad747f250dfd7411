package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 命令会替换包级默认 Logger，这里的用例不能并行。

const heroesDoc = `{
  "users": [
    {"name": "张飞", "kingdom": "蜀", "title": "General", "userInfo": {"age": 28}, "attrMap": {"蜀国": "猛将"}, "score": 90.5},
    {"name": "关羽", "kingdom": "蜀", "title": "general", "userInfo": {"age": 30}, "score": 95},
    {"name": "曹操", "kingdom": "魏", "userInfo": {"age": 35}, "score": 88},
    {"name": "赵云", "kingdom": "蜀", "userInfo": null, "score": 92},
    {"name": "孙权", "kingdom": "吴", "userInfo": {"age": 27}, "score": 85}
  ]
}`

type result struct {
	code   int
	out    string
	errOut string
}

func runCLI(t *testing.T, doc string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), append([]string{"xbeanctl"}, args...), strings.NewReader(doc), &out, &errOut)
	return result{code: code, out: out.String(), errOut: errOut.String()}
}

// namesOf 从 JSON 输出的元素列表中提取 name。
func namesOf(t *testing.T, out string) []string {
	t.Helper()
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &list), out)
	names := make([]string, len(list))
	for i, e := range list {
		names[i], _ = e["name"].(string)
	}
	return names
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"map key", "users[0].attrMap(蜀国)", `"猛将"`},
		{"nested", "users[1].userInfo.age", "30"},
		{"null mid chain", "users[3].userInfo.age", "null"},
		{"missing key", "users[2].attrMap(蜀国)", "null"},
		{"float", "users[0].score", "90.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, heroesDoc, "get", tt.path)
			require.Equal(t, 0, r.code, r.errOut)
			assert.Equal(t, tt.want+"\n", r.out)
		})
	}
}

func TestGet_IndexOutOfRange(t *testing.T) {
	r := runCLI(t, heroesDoc, "get", "users[9].name")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.errOut, "错误:")
	assert.Empty(t, r.out)
}

func TestSelect(t *testing.T) {
	r := runCLI(t, heroesDoc, "select", "users", "kingdom", "蜀", "吴")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, []string{"张飞", "关羽", "赵云", "孙权"}, namesOf(t, r.out))

	r = runCLI(t, heroesDoc, "select", "--reject", "users", "kingdom", "蜀")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, []string{"曹操", "孙权"}, namesOf(t, r.out))
}

func TestSelect_Literals(t *testing.T) {
	t.Run("numeric text matches number", func(t *testing.T) {
		r := runCLI(t, heroesDoc, "select", "users", "userInfo.age", "28", "35.0")
		require.Equal(t, 0, r.code, r.errOut)
		assert.Equal(t, []string{"张飞", "曹操"}, namesOf(t, r.out))
	})
	t.Run("null", func(t *testing.T) {
		r := runCLI(t, heroesDoc, "select", "users", "userInfo.age", "null")
		require.Equal(t, 0, r.code, r.errOut)
		assert.Equal(t, []string{"赵云"}, namesOf(t, r.out))
	})
	t.Run("case sensitive", func(t *testing.T) {
		r := runCLI(t, heroesDoc, "select", "users", "title", "general")
		require.Equal(t, 0, r.code, r.errOut)
		assert.Equal(t, []string{"关羽"}, namesOf(t, r.out))
	})
	t.Run("fold", func(t *testing.T) {
		r := runCLI(t, heroesDoc, "select", "--fold", "users", "title", "GENERAL")
		require.Equal(t, 0, r.code, r.errOut)
		assert.Equal(t, []string{"张飞", "关羽"}, namesOf(t, r.out))
	})
	t.Run("bool", func(t *testing.T) {
		doc := `[{"name": "a", "ok": true}, {"name": "b", "ok": false}]`
		r := runCLI(t, doc, "select", ".", "ok", "true")
		require.Equal(t, 0, r.code, r.errOut)
		assert.Equal(t, []string{"a"}, namesOf(t, r.out))
	})
}

func TestFind(t *testing.T) {
	r := runCLI(t, heroesDoc, "find", "users", "kingdom=蜀", "userInfo.age=30")
	require.Equal(t, 0, r.code, r.errOut)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &got))
	assert.Equal(t, "关羽", got["name"])
}

func TestFind_NotFound(t *testing.T) {
	r := runCLI(t, heroesDoc, "find", "users", "kingdom=晋")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "null\n", r.out)
	assert.Empty(t, r.errOut)
}

func TestFind_BadCondition(t *testing.T) {
	r := runCLI(t, heroesDoc, "find", "users", "kingdom")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.errOut, "缺少 '='")
}

func TestIndex(t *testing.T) {
	r := runCLI(t, heroesDoc, "index", "users", "userInfo.age", "30")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "1\n", r.out)

	r = runCLI(t, heroesDoc, "index", "users", "name", "刘备")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "-1\n", r.out)
}

func TestCount_KeepsFirstSeenOrder(t *testing.T) {
	r := runCLI(t, heroesDoc, "count", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "{\n  \"蜀\": 3,\n  \"魏\": 1,\n  \"吴\": 1\n}\n", r.out)
}

func TestCount_NullKey(t *testing.T) {
	r := runCLI(t, heroesDoc, "count", "users", "userInfo.age")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "{\n  \"28\": 1,\n  \"30\": 1,\n  \"35\": 1,\n  \"null\": 1,\n  \"27\": 1\n}\n", r.out)
}

func TestGroup(t *testing.T) {
	r := runCLI(t, heroesDoc, "group", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)

	var got map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &got))
	require.Len(t, got["蜀"], 3)
	assert.Equal(t, "赵云", got["蜀"][2]["name"])
	assert.Less(t, strings.Index(r.out, `"蜀"`), strings.Index(r.out, `"魏"`))
	assert.Less(t, strings.Index(r.out, `"魏"`), strings.Index(r.out, `"吴"`))
}

func TestGroupOne_LastWins(t *testing.T) {
	r := runCLI(t, heroesDoc, "group-one", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)

	var got map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &got))
	assert.Equal(t, "赵云", got["蜀"]["name"])
	assert.Equal(t, "曹操", got["魏"]["name"])
}

func TestPluck(t *testing.T) {
	r := runCLI(t, heroesDoc, "pluck", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)
	var all []string
	require.NoError(t, json.Unmarshal([]byte(r.out), &all))
	assert.Equal(t, []string{"蜀", "蜀", "魏", "蜀", "吴"}, all)

	r = runCLI(t, heroesDoc, "pluck", "--unique", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)
	var unique []string
	require.NoError(t, json.Unmarshal([]byte(r.out), &unique))
	assert.Equal(t, []string{"蜀", "魏", "吴"}, unique)
}

func TestDedupe(t *testing.T) {
	r := runCLI(t, heroesDoc, "dedupe", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, []string{"张飞", "曹操", "孙权"}, namesOf(t, r.out))
}

func TestSumAvg(t *testing.T) {
	r := runCLI(t, heroesDoc, "sum", "users", "score")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "450.5\n", r.out)

	r = runCLI(t, heroesDoc, "avg", "users", "score")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "90.1\n", r.out)

	// null 不计入分母
	r = runCLI(t, heroesDoc, "avg", "--scale", "0", "users", "userInfo.age")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "30\n", r.out)

	r = runCLI(t, heroesDoc, "avg", "users", "missing")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "null\n", r.out)
}

func TestSum_NotNumeric(t *testing.T) {
	r := runCLI(t, heroesDoc, "sum", "users", "name")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.errOut, "element 0")
}

func TestSort(t *testing.T) {
	r := runCLI(t, heroesDoc, "sort", "users", "userInfo.age desc")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, []string{"曹操", "关羽", "张飞", "孙权", "赵云"}, namesOf(t, r.out))

	r = runCLI(t, heroesDoc, "sort", "users", "kingdom", "score desc")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, []string{"孙权", "关羽", "赵云", "张飞", "曹操"}, namesOf(t, r.out))
}

func TestYAMLOutput(t *testing.T) {
	r := runCLI(t, heroesDoc, "-o", "yaml", "count", "users", "kingdom")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.out, "蜀: 3")
	assert.Less(t, strings.Index(r.out, "蜀"), strings.Index(r.out, "魏"))
	assert.Less(t, strings.Index(r.out, "魏"), strings.Index(r.out, "吴"))
}

func TestYAMLInputFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "heroes.yaml")
	doc := "- name: 张飞\n  age: 28\n- name: 关羽\n  age: 30\n"
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o600))

	r := runCLI(t, "", "-f", file, "select", ".", "age", "30")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, []string{"关羽"}, namesOf(t, r.out))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "xbean.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: yaml\n"), 0o600))

	r := runCLI(t, heroesDoc, "-c", cfg, "get", "users[0].name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "张飞\n", r.out)

	// 命令行优先于配置文件
	r = runCLI(t, heroesDoc, "-c", cfg, "-o", "json", "get", "users[0].name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "\"张飞\"\n", r.out)
}

func TestMapFieldsDisabled(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "xbean.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"resolver": {"map_fields": false}}`), 0o600))

	r := runCLI(t, heroesDoc, "-c", cfg, "get", "(users).[0].(name)")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "\"张飞\"\n", r.out)

	r = runCLI(t, heroesDoc, "-c", cfg, "get", "users")
	assert.Equal(t, 1, r.code)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		args []string
		code int
	}{
		{"missing args", heroesDoc, []string{"get"}, 2},
		{"path syntax", heroesDoc, []string{"get", "users..name"}, 2},
		{"chained suffix", heroesDoc, []string{"get", "users[0][1]"}, 2},
		{"unknown flag", heroesDoc, []string{"--nope", "get", "users"}, 2},
		{"bad output", heroesDoc, []string{"-o", "xml", "get", "users"}, 2},
		{"bad sort key", heroesDoc, []string{"sort", "users", "  "}, 2},
		{"not a list", heroesDoc, []string{"select", "users[0]", "name", "x"}, 1},
		{"empty document", "", []string{"get", "users"}, 1},
		{"malformed document", "{", []string{"get", "users"}, 1},
		{"missing file", heroesDoc, []string{"-f", "/nonexistent/x.json", "get", "users"}, 1},
		{"missing config", heroesDoc, []string{"-c", "/nonexistent/x.yaml", "get", "users"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.doc, tt.args...)
			assert.Equal(t, tt.code, r.code, r.errOut)
			assert.NotEmpty(t, r.errOut)
		})
	}
}

func TestNullList(t *testing.T) {
	r := runCLI(t, `{"users": null}`, "pluck", "users", "name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "[]\n", r.out)
}

func TestLiteral(t *testing.T) {
	m := literal(false)
	assert.True(t, m(nil, "null"))
	assert.False(t, m(nil, "nil"))
	assert.True(t, m(uint64(28), "28"))
	assert.True(t, m(28.5, "28.50"))
	assert.False(t, m(28, "abc"))
	assert.True(t, m(true, "true"))
	assert.False(t, m(true, "yes"))
	assert.True(t, m("蜀", "蜀"))
	assert.False(t, m("a", "A"))
	assert.True(t, literal(true)("a", "A"))
	assert.True(t, m([]any{1}, "[1]"))
	// 非文本期望值走自然相等
	assert.True(t, m(3, 3))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "null", keyString(nil))
	assert.Equal(t, "蜀", keyString("蜀"))
	assert.Equal(t, "28", keyString(uint64(28)))
	assert.Equal(t, "true", keyString(true))
	assert.Equal(t, `{"a":1}`, keyString(map[string]any{"a": 1}))
}

func TestRenderKeys_Collisions(t *testing.T) {
	assert.Equal(t, []string{"蜀", "28"}, renderKeys([]any{"蜀", 28}))
	assert.Equal(t, []string{"1 (int)", `"1"`, "x"}, renderKeys([]any{1, "1", "x"}))
	assert.Equal(t, []string{"null (<nil>)", `"null"`}, renderKeys([]any{nil, "null"}))
	assert.Equal(t, []string{"1 (int)", "1 (int64)"}, renderKeys([]any{1, int64(1)}))
}

func TestCount_DistinctKeysStayDistinct(t *testing.T) {
	r := runCLI(t, `[{"k": 1}, {"k": "1"}, {"k": "1"}, {"k": null}, {"k": "null"}]`, "count", ".", "k")
	require.Equal(t, 0, r.code, r.errOut)

	var got map[string]int
	require.NoError(t, json.Unmarshal([]byte(r.out), &got), r.out)
	assert.Len(t, got, 4)
	assert.Equal(t, 2, got[`"1"`])
	assert.Equal(t, 1, got[`"null"`])
}

func TestDebugLogging(t *testing.T) {
	r := runCLI(t, heroesDoc, "--log-level", "debug", "get", "users[0].name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Equal(t, "\"张飞\"\n", r.out)
	assert.Contains(t, r.errOut, "document loaded")
	assert.Contains(t, r.errOut, "command done")
	assert.Contains(t, r.errOut, "operation=get")

	// 默认级别为 warn，不输出调试日志
	r = runCLI(t, heroesDoc, "get", "users[0].name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Empty(t, r.errOut)
}

func TestDebugLogging_Attrs(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "xbean.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: debug\n  timestamp: false\n"), 0o600))

	r := runCLI(t, heroesDoc, "-c", cfg, "pluck", "users", "name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.errOut, "count=5")
	assert.NotContains(t, r.errOut, "time=")

	r = runCLI(t, heroesDoc, "-c", cfg, "get", "users[9].name")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.errOut, "command failed")
	assert.Contains(t, r.errOut, `kind="index out of range"`)
	assert.Contains(t, r.errOut, "path=")

	// 默认输出时间
	r = runCLI(t, heroesDoc, "--log-level", "debug", "get", "users[0].name")
	require.Equal(t, 0, r.code, r.errOut)
	assert.Contains(t, r.errOut, "time=")
}

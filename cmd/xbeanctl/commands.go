package main

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xbean/pkg/bean/xconv"
	"github.com/omeyang/xbean/pkg/collection/xcoll"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

// rootPath 表示文档本身。
const rootPath = "."

func createCommands(a *app) []*cli.Command {
	return []*cli.Command{
		{
			Name:      "get",
			Usage:     "读取路径处的值",
			ArgsUsage: "<path>",
			Action:    a.action(1, "<path>", a.cmdGet),
		},
		{
			Name:      "select",
			Usage:     "筛选属性值等于任一给定值的元素",
			ArgsUsage: "<list> <prop> <values...>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "reject", Aliases: []string{"r"}, Usage: "返回不匹配的元素"},
				&cli.BoolFlag{Name: "fold", Aliases: []string{"i"}, Usage: "字符串忽略大小写"},
			},
			Action: a.action(3, "<list> <prop> <values...>", a.cmdSelect),
		},
		{
			Name:      "find",
			Usage:     "第一个全部条件都满足的元素，没有时退出码为 1",
			ArgsUsage: "<list> <prop=value...>",
			Action:    a.action(2, "<list> <prop=value...>", a.cmdFind),
		},
		{
			Name:      "index",
			Usage:     "第一个匹配元素的下标，没有时为 -1",
			ArgsUsage: "<list> <prop> <value>",
			Action:    a.action(3, "<list> <prop> <value>", a.cmdIndex),
		},
		{
			Name:      "group",
			Usage:     "按属性值分组",
			ArgsUsage: "<list> <prop>",
			Action:    a.action(2, "<list> <prop>", a.cmdGroup),
		},
		{
			Name:      "group-one",
			Usage:     "按属性值建立映射，同值保留最后一个元素",
			ArgsUsage: "<list> <prop>",
			Action:    a.action(2, "<list> <prop>", a.cmdGroupOne),
		},
		{
			Name:      "count",
			Usage:     "统计每个属性值出现的次数",
			ArgsUsage: "<list> <prop>",
			Action:    a.action(2, "<list> <prop>", a.cmdCount),
		},
		{
			Name:      "pluck",
			Usage:     "提取每个元素的属性值",
			ArgsUsage: "<list> <prop>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "unique", Aliases: []string{"u"}, Usage: "去重，保持首次出现的顺序"},
			},
			Action: a.action(2, "<list> <prop>", a.cmdPluck),
		},
		{
			Name:      "dedupe",
			Usage:     "按属性组合去重，保留第一个元素",
			ArgsUsage: "<list> [props...]",
			Action:    a.action(1, "<list> [props...]", a.cmdDedupe),
		},
		{
			Name:      "sum",
			Usage:     "数值求和，null 被跳过",
			ArgsUsage: "<list> <prop>",
			Action:    a.action(2, "<list> <prop>", a.cmdSum),
		},
		{
			Name:      "avg",
			Usage:     "数值平均，四舍五入到 --scale 位小数",
			ArgsUsage: "<list> <prop>",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "scale", Usage: "小数位数", Value: 2},
			},
			Action: a.action(2, "<list> <prop>", a.cmdAvg),
		},
		{
			Name:      "sort",
			Usage:     `排序，spec 形如 "age"、"age desc"`,
			ArgsUsage: "<list> <spec...>",
			Action:    a.action(2, "<list> <spec...>", a.cmdSort),
		},
	}
}

func (a *app) cmdGet(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	return a.resolver.Get(doc, cmd.Args().First())
}

func (a *app) cmdSelect(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	prop := cmd.Args().Get(1)
	values := toAny(cmd.Args().Slice()[2:])
	match := literal(cmd.Bool("fold"))
	if cmd.Bool("reject") {
		return a.query().SelectRejectedBy(list, prop, match, values...)
	}
	return a.query().SelectBy(list, prop, match, values...)
}

func (a *app) cmdFind(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	conds := make([]xpred.Cond, 0, cmd.NArg()-1)
	for _, arg := range cmd.Args().Slice()[1:] {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, usagef("find: 条件 %q 缺少 '='", arg)
		}
		p, err := a.resolver.Parse(name)
		if err != nil {
			return nil, err
		}
		conds = append(conds, xpred.Cond{Path: p, Value: value})
	}
	elem, ok, err := a.query().FindWith(list, xpred.MatchesBy[any](literal(false), conds...))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &exitError{code: 1}
	}
	return elem, nil
}

func (a *app) cmdIndex(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	p, err := a.resolver.Parse(cmd.Args().Get(1))
	if err != nil {
		return nil, err
	}
	return a.query().IndexWhere(list, xpred.EqualBy[any](p, literal(false), cmd.Args().Get(2)))
}

func (a *app) cmdGroup(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	g, err := a.query().Group(list, cmd.Args().Get(1))
	if err != nil {
		return nil, err
	}
	return objectOf(g), nil
}

func (a *app) cmdGroupOne(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	g, err := a.query().GroupOne(list, cmd.Args().Get(1))
	if err != nil {
		return nil, err
	}
	return objectOf(g), nil
}

func (a *app) cmdCount(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	g, err := a.query().GroupCount(list, cmd.Args().Get(1))
	if err != nil {
		return nil, err
	}
	return objectOf(g), nil
}

func (a *app) cmdPluck(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	prop := cmd.Args().Get(1)
	if cmd.Bool("unique") {
		set, err := a.query().PropertyValueSet(list, prop)
		if err != nil {
			return nil, err
		}
		return set.Values(), nil
	}
	return a.query().PropertyValueList(list, prop)
}

func (a *app) cmdDedupe(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	return a.query().RemoveDuplicate(list, cmd.Args().Slice()[1:]...)
}

func (a *app) cmdSum(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	total, err := a.query().Sum(list, cmd.Args().Get(1))
	if err != nil {
		return nil, err
	}
	return rawOutput(total.String()), nil
}

func (a *app) cmdAvg(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	avg, ok, err := a.query().Avg(list, cmd.Args().Get(1), int32(cmd.Int("scale")))
	if err != nil {
		return nil, err
	}
	if !ok {
		return rawOutput("null"), nil
	}
	return rawOutput(avg.String()), nil
}

func (a *app) cmdSort(_ context.Context, cmd *cli.Command, doc any) (any, error) {
	list, err := a.listAt(doc, cmd.Args().Get(0))
	if err != nil {
		return nil, err
	}
	return a.query().SortBy(list, cmd.Args().Slice()[1:]...)
}

// query 返回使用当前 Resolver 的集合查询。
func (a *app) query() xcoll.Query[any] {
	return xcoll.Using[any](a.resolver)
}

// listAt 返回 path 处的列表，"." 表示文档本身；null 按空列表处理。
func (a *app) listAt(doc any, path string) ([]any, error) {
	v := doc
	if path != rootPath {
		var err error
		if v, err = a.resolver.Get(doc, path); err != nil {
			return nil, err
		}
	}
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return list, nil
	default:
		return nil, fmt.Errorf("%s: expected a list, got %T", path, v)
	}
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// literal 比较文档中的值与命令行给出的文本。
func literal(fold bool) xpred.ValueMatcher {
	return func(actual, want any) bool {
		s, ok := want.(string)
		if !ok {
			return xpred.Natural(actual, want)
		}
		switch v := actual.(type) {
		case nil:
			return s == "null"
		case string:
			if fold {
				return strings.EqualFold(v, s)
			}
			return v == s
		case bool:
			b, err := strconv.ParseBool(s)
			return err == nil && b == v
		}
		if xconv.IsNumericKind(reflect.TypeOf(actual).Kind()) {
			return xpred.Numeric(actual, s)
		}
		return fmt.Sprint(actual) == s
	}
}

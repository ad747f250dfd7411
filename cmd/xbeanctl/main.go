// xbeanctl 在 JSON/YAML 文档上执行属性路径查询。
//
// 用法:
//
//	xbeanctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件（.yaml/.yml/.json），见 xconf.Settings
//	-f, --file       输入文档，JSON 或 YAML，"-" 表示标准输入（默认）
//	-o, --output     输出格式 json|yaml，覆盖配置文件
//	    --log-level  日志级别，覆盖配置文件
//
// 命令:
//
//	get <path>                         读取路径处的值
//	select <list> <prop> <values...>   筛选元素（--reject 取补集，--fold 忽略大小写）
//	find <list> <prop=value...>        第一个全部条件都满足的元素
//	index <list> <prop> <value>        第一个匹配元素的下标，没有时为 -1
//	group <list> <prop>                按属性值分组
//	group-one <list> <prop>            按属性值建立映射，同值保留最后一个
//	count <list> <prop>                统计每个属性值出现的次数
//	pluck <list> <prop>                提取属性值（--unique 去重）
//	dedupe <list> [props...]           按属性组合去重，保留第一个
//	sum <list> <prop>                  数值求和
//	avg <list> <prop>                  数值平均（--scale 小数位数）
//	sort <list> <spec...>              排序，spec 形如 "age desc"
//
// <list> 是指向列表的路径，"." 表示文档本身。文档中的 map 可以用 "a.b" 访问，
// 也可以用 "a(b)"；key 含有 '.' 时只能用后者。
//
// 命令行给出的比较值是文本：属性值为数值时按数值比较（"28" 等于 28.0），
// 为 bool 时按 true/false 比较，为 null 时只等于 "null"，其余按文本比较。
//
// 退出码:
//
//	0: 成功
//	1: 执行失败，或 find 没有找到元素
//	2: 参数错误（缺少参数、路径语法错误、未知命令等）
//
// 示例:
//
//	xbeanctl -f users.yaml get 'users[0].attrMap(蜀国)'
//	xbeanctl -f users.json select users kingdom 蜀 吴
//	cat users.json | xbeanctl -o yaml group users userInfo.age
//	xbeanctl -f users.json sort users 'userInfo.age desc' name
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
)

// 版本信息，可通过 -ldflags "-X main.Version=1.0.0" 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandler(cancel)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// createApp 创建 CLI 应用。
func createApp(a *app) *cli.Command {
	return &cli.Command{
		Name:      "xbeanctl",
		Usage:     "在 JSON/YAML 文档上执行属性路径查询",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   `输入文档，"-" 表示标准输入`,
				Value:   "-",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出格式 json|yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 debug|info|warn|error",
			},
		},
		Commands: createCommands(a),
		// 退出码统一由 run 映射，不让 urfave/cli 直接 os.Exit
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(a.errOut, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	defer a.close()

	err := createApp(a).Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	if isUsageError(err) {
		fmt.Fprintf(errOut, "参数错误: %v\n", err)
		return 2
	}
	fmt.Fprintf(errOut, "错误: %v\n", err)
	return 1
}

// isUsageError 报告 err 是否属于调用方参数问题。
func isUsageError(err error) bool {
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		return true
	}
	if xerrs.IsKind(err, xerrs.KindInvalidArgument) || xerrs.IsKind(err, xerrs.KindInvalidPathSyntax) {
		return true
	}
	msg := err.Error()
	for _, s := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

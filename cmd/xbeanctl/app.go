package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/bean/xprop"
	"github.com/omeyang/xbean/pkg/config/xconf"
	"github.com/omeyang/xbean/pkg/observability/xlog"
)

// exitError 表示输出已完成，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示命令行参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// app 持有一次命令执行的运行环境。
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	settings xconf.Settings
	logger   xlog.LoggerWithLevel
	resolver *xprop.Resolver
	cleanup  func() error
}

// handler 是命令的实际逻辑，doc 为解码后的输入文档。
type handler func(ctx context.Context, cmd *cli.Command, doc any) (any, error)

// action 把 handler 包装为 cli.ActionFunc：检查参数个数、加载配置与文档、输出结果。
func (a *app) action(minArgs int, argsUsage string, h handler) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() < minArgs {
			return usagef("%s: 需要参数 %s", cmd.Name, argsUsage)
		}
		if err := a.setup(cmd); err != nil {
			return err
		}

		start := time.Now()
		doc, err := a.loadDocument(ctx, cmd.String("file"))
		if err != nil {
			return err
		}
		result, err := h(ctx, cmd, doc)
		// exitError 只影响退出码，结果照常输出
		var exitErr *exitError
		if err != nil && !errors.As(err, &exitErr) {
			a.logger.Debug(ctx, "command failed", failureAttrs(cmd.Name, err)...)
			return err
		}
		attrs := []slog.Attr{xlog.Operation(cmd.Name), xlog.Duration(time.Since(start))}
		if n, ok := resultLen(result); ok {
			attrs = append(attrs, xlog.Count(n))
		}
		a.logger.Debug(ctx, "command done", attrs...)
		if werr := a.write(result); werr != nil {
			return werr
		}
		return err
	}
}

// failureAttrs 返回失败日志的属性，xerrs 错误附带类别与路径。
func failureAttrs(op string, err error) []slog.Attr {
	attrs := []slog.Attr{xlog.Operation(op), xlog.Err(err)}
	var e *xerrs.Error
	if errors.As(err, &e) {
		attrs = append(attrs, xlog.Kind(e.Kind))
		if e.Path != "" {
			attrs = append(attrs, xlog.Path(e.Path))
		}
	}
	return attrs
}

// resultLen 返回列表或对象结果的元素个数。
func resultLen(result any) (int, bool) {
	switch v := result.(type) {
	case []any:
		return len(v), true
	case object:
		return len(v), true
	}
	return 0, false
}

// dropTime 去掉顶层的时间属性，用于 log.timestamp: false。
func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

// setup 加载配置，命令行选项覆盖配置文件，然后构建日志与 Resolver。
func (a *app) setup(cmd *cli.Command) error {
	var cfg xconf.Config
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = xconf.New(path); err != nil {
			return err
		}
	}
	s, err := xconf.LoadSettings(cfg)
	if err != nil {
		return err
	}
	if v := cmd.String("output"); v != "" {
		s.Output = v
	}
	if v := cmd.String("log-level"); v != "" {
		s.Log.Level = v
	}
	if err := s.Validate(); err != nil {
		return &usageError{msg: err.Error()}
	}
	a.settings = s

	b := xlog.New().
		SetOutput(a.errOut).
		SetLevelString(s.Log.Level).
		SetFormat(s.Log.Format).
		SetAddSource(s.Log.AddSource).
		SetOnError(func(err error) {
			fmt.Fprintf(a.errOut, "写日志失败: %v\n", err)
		})
	if !s.Log.Timestamp {
		b = b.SetReplaceAttr(dropTime)
	}
	if s.Log.File != "" {
		b = b.SetRotation(s.Log.File, s.Log.Rotation)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return err
	}
	a.logger, a.cleanup = logger, cleanup
	xlog.SetDefault(logger)

	opts := []xprop.Option{
		xprop.WithTagName(s.Resolver.TagName),
		xprop.WithMapFields(s.Resolver.MapFields),
	}
	if s.Resolver.PathCacheSize > 0 {
		c, err := xpath.NewCache(s.Resolver.PathCacheSize, xpath.WithCacheLogger(logger))
		if err != nil {
			return err
		}
		opts = append(opts, xprop.WithPathCache(c))
	}
	a.resolver = xprop.NewResolver(opts...)
	return nil
}

// loadDocument 读取并解码输入文档。YAML 是 JSON 的超集，两种格式共用一个解码器。
func (a *app) loadDocument(ctx context.Context, name string) (any, error) {
	r := a.in
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty document", name)
		}
		return nil, fmt.Errorf("%s: decode document: %w", name, err)
	}
	xlog.Debug(ctx, "document loaded", xlog.File(name), xlog.Component("xbeanctl"))
	return doc, nil
}

// close 关闭日志文件，恢复默认 Logger。
func (a *app) close() {
	xlog.SetDefault(nil)
	if a.cleanup != nil {
		if err := a.cleanup(); err != nil {
			fmt.Fprintf(a.errOut, "关闭日志失败: %v\n", err)
		}
	}
}

// write 按配置的格式输出结果。
func (a *app) write(result any) error {
	if raw, ok := result.(rawOutput); ok {
		_, err := fmt.Fprintln(a.out, string(raw))
		return err
	}
	v := normalize(result)
	if strings.EqualFold(a.settings.Output, "yaml") {
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	data, err := encodeJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

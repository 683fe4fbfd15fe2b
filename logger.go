package dxf3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃全部日志。Enabled 返回 false，调用方连格式化都省掉。
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := slog.New(nopHandler{})
	loggerPtr.Store(l)
}

// SetLogger 配置本库的日志输出，默认静默。传 nil 恢复静默。
// 解析降级（跳过的标签、丢弃的实体）会以 Debug 级别记录，
// 与 Diagnostic 集合互为补充。并发安全。
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger 返回当前日志器，子包共用，避免各配各的
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

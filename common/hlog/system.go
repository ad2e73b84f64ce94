package hlog

import (
	"io"
	"strings"
	"sync"
)

var silentMode = false

// SetSilentMode 设置系统日志的静默开关。
// 开启后，缓冲区检测到的误用告警（如视图未关闭即清空）将不再输出。
func SetSilentMode(s bool) {
	silentMode = s
}

// IsSilentMode 报告系统日志是否处于静默模式。
func IsSilentMode() bool {
	return silentMode
}

var builderPool = sync.Pool{New: func() any {
	return &strings.Builder{}
}}

type systemLogger struct {
	logger FullLogger
	prefix string // 日志前缀
}

func (l *systemLogger) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *systemLogger) SetLevel(lv Level) {
	l.logger.SetLevel(lv)
}

func (l *systemLogger) Trace(v ...any) {
	l.logger.Trace(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Debug(v ...any) {
	l.logger.Debug(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Info(v ...any) {
	l.logger.Info(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Notice(v ...any) {
	l.logger.Notice(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Warn(v ...any) {
	if silentMode {
		return
	}
	l.logger.Warn(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Error(v ...any) {
	l.logger.Error(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Fatal(v ...any) {
	l.logger.Fatal(append([]any{l.prefix}, v...)...)
}

func (l *systemLogger) Tracef(format string, v ...any) {
	l.logger.Tracef(l.addPrefix(format), v...)
}

func (l *systemLogger) Debugf(format string, v ...any) {
	l.logger.Debugf(l.addPrefix(format), v...)
}

func (l *systemLogger) Infof(format string, v ...any) {
	l.logger.Infof(l.addPrefix(format), v...)
}

func (l *systemLogger) Noticef(format string, v ...any) {
	l.logger.Noticef(l.addPrefix(format), v...)
}

func (l *systemLogger) Warnf(format string, v ...any) {
	if silentMode {
		return
	}
	l.logger.Warnf(l.addPrefix(format), v...)
}

func (l *systemLogger) Errorf(format string, v ...any) {
	l.logger.Errorf(l.addPrefix(format), v...)
}

func (l *systemLogger) Fatalf(format string, v ...any) {
	l.logger.Fatalf(l.addPrefix(format), v...)
}

func (l *systemLogger) addPrefix(format string) string {
	builder := builderPool.Get().(*strings.Builder)
	defer func() {
		builder.Reset()
		builderPool.Put(builder)
	}()

	builder.Grow(len(l.prefix) + len(format))
	builder.WriteString(l.prefix)
	builder.WriteString(format)
	return builder.String()
}

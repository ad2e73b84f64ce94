package mock

import (
	"bytes"

	errs "github.com/favbox/windbuf/common/errors"
)

// ErrWriteFailed 是 LimitWriter 超出限额时返回的错误。
var ErrWriteFailed = errs.NewPublic("模拟写入失败")

// LimitWriter 模拟写满 Limit 个字节后出错的写入器。
type LimitWriter struct {
	Limit int
	Buf   bytes.Buffer
	Calls int
}

// Write 写入不超过限额的部分，超出时返回 ErrWriteFailed。
func (w *LimitWriter) Write(p []byte) (int, error) {
	w.Calls++
	room := w.Limit - w.Buf.Len()
	if room >= len(p) {
		return w.Buf.Write(p)
	}
	if room > 0 {
		w.Buf.Write(p[:room])
	} else {
		room = 0
	}
	return room, ErrWriteFailed
}

// ShortWriter 模拟每次只写入一半且不报错的违规写入器。
type ShortWriter struct {
	Buf bytes.Buffer
}

func (w *ShortWriter) Write(p []byte) (int, error) {
	n := len(p) / 2
	w.Buf.Write(p[:n])
	return n, nil
}

package mock

import (
	"github.com/cloudwego/netpoll"
	"github.com/favbox/windbuf/network"
)

// LinkWriter 是基于 netpoll.LinkBuffer 的 network.Writer，记录 Flush 次数。
type LinkWriter struct {
	buf     *netpoll.LinkBuffer
	flushes int
}

var _ network.Writer = (*LinkWriter)(nil)

// NewLinkWriter 创建模拟的连接写入器。
func NewLinkWriter() *LinkWriter {
	return &LinkWriter{buf: netpoll.NewLinkBuffer()}
}

func (w *LinkWriter) Malloc(n int) ([]byte, error) {
	return w.buf.Malloc(n)
}

func (w *LinkWriter) WriteBinary(b []byte) (int, error) {
	return w.buf.WriteBinary(b)
}

func (w *LinkWriter) Flush() error {
	w.flushes++
	return w.buf.Flush()
}

// Flushes 返回 Flush 的调用次数。
func (w *LinkWriter) Flushes() int {
	return w.flushes
}

// ReadAll 读出所有已刷新的数据。
func (w *LinkWriter) ReadAll() ([]byte, error) {
	return w.buf.ReadBinary(w.buf.Len())
}

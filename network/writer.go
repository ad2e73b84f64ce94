package network

import (
	"io"
	"sync"

	"github.com/bytedance/gopkg/lang/mcache"
)

// 小于该长度的切片在 WriteBinary 时会被拷贝，否则直接引用。
const copyThreshold = 4 * 1024

// 待刷新的数据块。
type pending struct {
	data     []byte
	borrowed bool // 引用调用方的切片，刷新后不归还 mcache
}

var pendingPool = sync.Pool{
	New: func() any {
		return &pending{}
	},
}

// 暂存数据块并在 Flush 时依次写入底层 io.Writer 的缓冲写入器。
type bufferedWriter struct {
	queue []*pending
	w     io.Writer
}

// NewWriter 将 io.Writer 转为 Writer。
//
// 不小于 4KB 的 WriteBinary 不会拷贝，调用方须保证切片在 Flush 之前不被修改。
func NewWriter(w io.Writer) Writer {
	return &bufferedWriter{w: w}
}

func (w *bufferedWriter) Malloc(length int) (buf []byte, err error) {
	// 尾部数据块可写且余量足够，则原地扩展
	if n := len(w.queue); n > 0 {
		tail := w.queue[n-1]
		inUse := len(tail.data)
		if !tail.borrowed && cap(tail.data)-inUse >= length {
			tail.data = tail.data[:inUse+length]
			return tail.data[inUse:], nil
		}
	}

	buf = mcache.Malloc(length)
	p := pendingPool.Get().(*pending)
	p.data = buf
	w.queue = append(w.queue, p)
	return buf, nil
}

func (w *bufferedWriter) WriteBinary(b []byte) (int, error) {
	if len(b) < copyThreshold {
		buf, _ := w.Malloc(len(b))
		return copy(buf, b), nil
	}

	p := pendingPool.Get().(*pending)
	p.borrowed = true
	p.data = b
	w.queue = append(w.queue, p)
	return len(b), nil
}

// Flush 将所有暂存数据块写入底层数据流，出错时丢弃剩余数据块。
func (w *bufferedWriter) Flush() (err error) {
	for _, p := range w.queue {
		if _, err = w.w.Write(p.data); err != nil {
			break
		}
	}
	w.release()
	return err
}

// 归还内存并清空暂存队列。
func (w *bufferedWriter) release() {
	for _, p := range w.queue {
		if !p.borrowed {
			mcache.Free(p.data)
		}
		p.data = nil
		p.borrowed = false
		pendingPool.Put(p)
	}
	w.queue = w.queue[:0]
}

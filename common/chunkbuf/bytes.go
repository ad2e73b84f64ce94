package chunkbuf

import (
	"io"

	"github.com/favbox/windbuf/common/config"
	errs "github.com/favbox/windbuf/common/errors"
	"github.com/favbox/windbuf/network"
)

// ByteArray 是字节元素的分块缓冲区，常用于累积响应正文。
type ByteArray struct {
	*Store[byte]
}

var (
	_ io.Writer     = (*ByteArray)(nil)
	_ io.ByteWriter = (*ByteArray)(nil)
	_ io.ReaderFrom = (*ByteArray)(nil)
	_ io.WriterTo   = (*ByteArray)(nil)
)

// NewByteArray 按配置创建字节缓冲区。
func NewByteArray(opts ...config.Option) (*ByteArray, error) {
	s, err := New[byte](opts...)
	if err != nil {
		return nil, err
	}
	return &ByteArray{Store: s}, nil
}

// NewByteArrayFrom 使用默认配置创建字节缓冲区，并追加 p 的全部内容。
func NewByteArrayFrom(p []byte) *ByteArray {
	b := &ByteArray{Store: newDefault[byte]()}
	b.appendValues(p)
	return b
}

// Write 追加 p 的全部内容，总是返回 len(p), nil。
func (b *ByteArray) Write(p []byte) (int, error) {
	b.appendValues(p)
	return len(p), nil
}

// WriteByte 追加单个字节，总是返回 nil。
func (b *ByteArray) WriteByte(c byte) error {
	b.Append(c)
	return nil
}

// ReadFrom 从 r 读取数据直至 io.EOF，直接读入写入前沿之后的空闲空间。
//
// 只在当前分段写满时才前进到下一分段；若该次读取没有数据，前沿退回原分段末尾，
// 使恰好写满分段边界的内容仍可被 TrimToSize 收紧。
func (b *ByteArray) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for {
		moved := false
		if b.cur < 0 || b.pos == len(b.segments[b.cur]) {
			prev := b.cur
			b.grow(b.count + 1)
			b.advance()
			moved = prev >= 0 && b.cur != prev
		}
		n, err := r.Read(b.segments[b.cur][b.pos:])
		if n == 0 && moved {
			b.cur--
			b.pos = len(b.segments[b.cur])
		}
		b.pos += n
		b.count += n
		total += int64(n)
		if err != nil {
			if err == io.EOF {
				return total, nil
			}
			return total, err
		}
	}
}

// GetBytes 将 [srcBegin, srcEnd) 区间的字节拷贝到 dst[dstBegin:]，校验规则同 CopyRange。
func (b *ByteArray) GetBytes(srcBegin, srcEnd int, dst []byte, dstBegin int) error {
	return b.CopyRange(srcBegin, srcEnd, dst, dstBegin)
}

// Bytes 返回全部字节的拷贝。
func (b *ByteArray) Bytes() []byte {
	return b.ToArray()
}

// String 返回全部字节的字符串拷贝。
func (b *ByteArray) String() string {
	return string(b.ToArray())
}

// WriteOut 按顺序将全部字节写入 w。
func (b *ByteArray) WriteOut(w io.Writer) error {
	_, err := b.WriteTo(w)
	return err
}

// WriteTo 按顺序将全部字节写入 w，返回写入的字节数。
func (b *ByteArray) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, errs.NewArgumentf(boundMeta("writer"), "写入器不能为空")
	}
	var total int64
	err := b.forEach(func(seg []byte) error {
		n, err := w.Write(seg)
		total += int64(n)
		if err == nil && n < len(seg) {
			err = io.ErrShortWrite
		}
		return err
	})
	return total, err
}

// FlushTo 将所有分段交给 w.WriteBinary 后调用 w.Flush。
//
// 写入器可能直接引用分段内存，Flush 返回之前不得修改缓冲区。
func (b *ByteArray) FlushTo(w network.Writer) error {
	if w == nil {
		return errs.NewArgumentf(boundMeta("writer"), "写入器不能为空")
	}
	if err := b.forEach(func(seg []byte) error {
		_, err := w.WriteBinary(seg)
		return err
	}); err != nil {
		return err
	}
	return w.Flush()
}

// NewReader 创建字节读取视图，用完必须调用 Close。
func (b *ByteArray) NewReader() *ByteReader {
	r := &ByteReader{}
	r.init(b.Store)
	return r
}

// NewNetworkReader 创建满足 network.Reader 的读取视图，用完必须调用 Close。
func (b *ByteArray) NewNetworkReader() *NetworkReader {
	return &NetworkReader{r: b.NewReader()}
}

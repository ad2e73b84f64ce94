package chunkbuf

import (
	"io"

	errs "github.com/favbox/windbuf/common/errors"
	"github.com/favbox/windbuf/network"
)

// ByteReader 是字节缓冲区的读取视图。
type ByteReader struct {
	View[byte]
}

var (
	_ io.Reader     = (*ByteReader)(nil)
	_ io.ByteReader = (*ByteReader)(nil)
	_ io.WriterTo   = (*ByteReader)(nil)
	_ io.Closer     = (*ByteReader)(nil)
)

func (r *ByteReader) Read(p []byte) (int, error) {
	return r.ReadInto(p, 0, len(p))
}

func (r *ByteReader) ReadByte() (byte, error) {
	return r.ReadOne()
}

// WriteTo 将剩余字节直接从分段写入 w。
func (r *ByteReader) WriteTo(w io.Writer) (int64, error) {
	if err := r.ensureOpen(); err != nil {
		return 0, err
	}
	var total int64
	for r.cur.pos < r.limit {
		seg := r.take(r.limit - r.cur.pos)
		n, err := w.Write(seg)
		total += int64(n)
		if n < len(seg) {
			r.unread(len(seg) - n)
			if err == nil {
				err = io.ErrShortWrite
			}
		}
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// NetworkReader 将字节读取视图适配为 network.Reader，以便交给按连接读取的解析代码。
type NetworkReader struct {
	r *ByteReader
}

var _ network.Reader = (*NetworkReader)(nil)

func (nr *NetworkReader) Len() int {
	return nr.r.Remaining()
}

// Peek 返回接下来的 n 个字节但不移动游标。不足 n 个时返回全部剩余字节和 io.EOF。
// 返回的切片可能直接引用分段内存，不得修改。
func (nr *NetworkReader) Peek(n int) ([]byte, error) {
	if err := nr.r.ensureOpen(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errs.NewRangef(boundMeta("n", "n", n), "n 为负数：%d", n)
	}
	if rem := nr.r.Remaining(); n > rem {
		return nr.r.peek(rem), io.EOF
	}
	return nr.r.peek(n), nil
}

// Skip 跳过恰好 n 个字节，不足时不移动游标并返回 ErrIndexOutOfRange。
func (nr *NetworkReader) Skip(n int) error {
	if err := nr.r.ensureOpen(); err != nil {
		return err
	}
	if n < 0 || n > nr.r.Remaining() {
		return errs.NewRangef(boundMeta("n", "n", n, "remaining", nr.r.Remaining()),
			"无法跳过 %d 个字节，剩余 %d", n, nr.r.Remaining())
	}
	_, err := nr.r.Skip(n)
	return err
}

func (nr *NetworkReader) ReadByte() (byte, error) {
	return nr.r.ReadOne()
}

// ReadBinary 读取恰好 n 个字节的拷贝，不足时不移动游标并返回 ErrIndexOutOfRange。
func (nr *NetworkReader) ReadBinary(n int) ([]byte, error) {
	if err := nr.r.ensureOpen(); err != nil {
		return nil, err
	}
	if n < 0 || n > nr.r.Remaining() {
		return nil, errs.NewRangef(boundMeta("n", "n", n, "remaining", nr.r.Remaining()),
			"无法读取 %d 个字节，剩余 %d", n, nr.r.Remaining())
	}
	p := make([]byte, n)
	if n == 0 {
		return p, nil
	}
	_, err := nr.r.ReadInto(p, 0, n)
	return p, err
}

// Release 没有需要释放的内存，分段归缓冲区所有。
func (nr *NetworkReader) Release() error {
	return nr.r.ensureOpen()
}

// Mark 记录当前位置。
func (nr *NetworkReader) Mark() error {
	return nr.r.Mark()
}

// Reset 回到 Mark 记录的位置。
func (nr *NetworkReader) Reset() error {
	return nr.r.Reset()
}

// Close 关闭底层视图，可重复调用。
func (nr *NetworkReader) Close() error {
	return nr.r.Close()
}

package chunkbuf

import (
	"io"

	errs "github.com/favbox/windbuf/common/errors"
)

// SequentialReader 是支持 Mark/Reset 的顺序读取契约。
type SequentialReader[T Element] interface {
	// ReadOne 读取下一个元素，读完返回 io.EOF。
	ReadOne() (T, error)
	// ReadInto 至多读取 n 个元素到 dst[off:]，返回实际个数；已读完返回 io.EOF。
	ReadInto(dst []T, off, n int) (int, error)
	// Skip 至多跳过 n 个元素，返回实际跳过的个数。
	Skip(n int) (int, error)
	// HasMore 报告是否还有未读元素。
	HasMore() (bool, error)
	// Mark 记录当前位置，覆盖之前的标记。
	Mark() error
	// Reset 回到 Mark 记录的位置。
	Reset() error
	io.Closer
}

var _ SequentialReader[byte] = (*View[byte])(nil)

type cursor struct {
	idx int // 分段下标
	off int // 分段内偏移
	pos int // 已读元素个数
}

// View 是分块缓冲区的只读顺序游标，读取时不拷贝也不修改缓冲区。
//
// View 无内部锁，仅供单个协程使用。
type View[T Element] struct {
	owner    *Store[T]
	segments [][]T
	limit    int

	cur    cursor
	mark   cursor
	marked bool
	closed bool
}

func (v *View[T]) init(s *Store[T]) {
	s.views.Add(1)
	v.owner = s
	v.segments = s.segments
	v.limit = s.count
}

func (v *View[T]) ensureOpen() error {
	if v.closed {
		return errs.NewClosed("读取视图已关闭")
	}
	return nil
}

// 当前分段读完时前进到下一分段，返回当前分段的剩余元素个数。
// 调用方须保证仍有未读元素。
func (v *View[T]) advance() int {
	if n := len(v.segments[v.cur.idx]) - v.cur.off; n > 0 {
		return n
	}
	v.cur.idx++
	v.cur.off = 0
	return len(v.segments[v.cur.idx])
}

// 返回游标处至多 max 个连续元素并前移游标。调用方须保证仍有未读元素。
func (v *View[T]) take(max int) []T {
	n := v.advance()
	if n > max {
		n = max
	}
	seg := v.segments[v.cur.idx][v.cur.off : v.cur.off+n]
	v.cur.off += n
	v.cur.pos += n
	return seg
}

// 退回最近一次 take 中未被消费的 n 个元素。
func (v *View[T]) unread(n int) {
	v.cur.off -= n
	v.cur.pos -= n
}

// 返回游标处的 n 个元素但不移动游标，n 不得超过剩余个数。
// 位于同一分段时直接引用分段内存，否则拷贝。
func (v *View[T]) peek(n int) []T {
	if n <= 0 {
		return []T{}
	}
	idx, off := v.cur.idx, v.cur.off
	if off == len(v.segments[idx]) {
		idx++
		off = 0
	}
	if len(v.segments[idx])-off >= n {
		return v.segments[idx][off : off+n : off+n]
	}
	out := make([]T, n)
	for dst := out; len(dst) > 0; {
		c := copy(dst, v.segments[idx][off:])
		dst = dst[c:]
		idx++
		off = 0
	}
	return out
}

// Remaining 返回未读元素个数，视图关闭后为 0。
func (v *View[T]) Remaining() int {
	if v.closed {
		return 0
	}
	return v.limit - v.cur.pos
}

func (v *View[T]) ReadOne() (T, error) {
	var zero T
	if err := v.ensureOpen(); err != nil {
		return zero, err
	}
	if v.cur.pos >= v.limit {
		return zero, io.EOF
	}
	return v.take(1)[0], nil
}

func (v *View[T]) ReadInto(dst []T, off, n int) (int, error) {
	if err := v.ensureOpen(); err != nil {
		return 0, err
	}
	if off < 0 || n < 0 || off > len(dst) || n > len(dst)-off {
		return 0, errs.NewRangef(boundMeta("dst", "off", off, "n", n, "dstLen", len(dst)),
			"off %d + n %d 超出目标长度 %d", off, n, len(dst))
	}
	if n == 0 {
		return 0, nil
	}
	if v.cur.pos >= v.limit {
		return 0, io.EOF
	}
	if rem := v.limit - v.cur.pos; n > rem {
		n = rem
	}
	for out := dst[off : off+n]; len(out) > 0; {
		c := copy(out, v.take(len(out)))
		out = out[c:]
	}
	return n, nil
}

func (v *View[T]) Skip(n int) (int, error) {
	if err := v.ensureOpen(); err != nil {
		return 0, err
	}
	if rem := v.limit - v.cur.pos; n > rem {
		n = rem
	}
	if n <= 0 {
		return 0, nil
	}
	for left := n; left > 0; {
		left -= len(v.take(left))
	}
	return n, nil
}

func (v *View[T]) HasMore() (bool, error) {
	if err := v.ensureOpen(); err != nil {
		return false, err
	}
	return v.cur.pos < v.limit, nil
}

func (v *View[T]) Mark() error {
	if err := v.ensureOpen(); err != nil {
		return err
	}
	v.mark = v.cur
	v.marked = true
	return nil
}

func (v *View[T]) Reset() error {
	if err := v.ensureOpen(); err != nil {
		return err
	}
	if !v.marked {
		return errs.NewArgumentf(boundMeta("mark"), "尚未调用 Mark 记录位置")
	}
	v.cur = v.mark
	return nil
}

// Close 关闭视图，可重复调用。
func (v *View[T]) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.marked = false
	v.segments = nil
	if v.owner != nil {
		v.owner.views.Add(-1)
		v.owner = nil
	}
	return nil
}

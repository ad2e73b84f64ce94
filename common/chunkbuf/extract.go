package chunkbuf

import (
	errs "github.com/favbox/windbuf/common/errors"
)

// Sink 是分段数据的只写消费者。
type Sink[T Element] interface {
	// WriteSegment 消费一段连续元素。seg 仅在调用期间有效，不得保留或修改。
	WriteSegment(seg []T) error
}

// SinkFunc 将普通函数适配为 Sink。
type SinkFunc[T Element] func(seg []T) error

// WriteSegment 调用 f(seg)。
func (f SinkFunc[T]) WriteSegment(seg []T) error {
	return f(seg)
}

// 按顺序将所有已写入的分段交给 fn，fn 出错即停止。
func (s *Store[T]) forEach(fn func(seg []T) error) error {
	if s.count == 0 {
		return nil
	}
	for _, seg := range s.segments[:s.cur] {
		if err := fn(seg); err != nil {
			return err
		}
	}
	if s.pos > 0 {
		return fn(s.segments[s.cur][:s.pos])
	}
	return nil
}

// CopyRange 将 [srcBegin, srcEnd) 区间的元素拷贝到 dst[dstBegin:]。
//
// 依次校验 srcBegin、dstBegin、srcEnd、srcBegin <= srcEnd，
// 然后校验 dstBegin+长度 不超过缓冲区的逻辑长度（沿用既有调用方依赖的约定），
// 最后校验 dst 本身放得下。任一失败均返回 ErrIndexOutOfRange 且不写入 dst。
func (s *Store[T]) CopyRange(srcBegin, srcEnd int, dst []T, dstBegin int) error {
	if srcBegin < 0 {
		return errs.NewRangef(boundMeta("srcBegin", "srcBegin", srcBegin), "srcBegin 为负数：%d", srcBegin)
	}
	if dstBegin < 0 || dstBegin >= len(dst) {
		return errs.NewRangef(boundMeta("dstBegin", "dstBegin", dstBegin, "dstLen", len(dst)),
			"dstBegin %d 超出目标长度 %d", dstBegin, len(dst))
	}
	if srcEnd < 0 || srcEnd > s.count {
		return errs.NewRangef(boundMeta("srcEnd", "srcEnd", srcEnd, "length", s.count),
			"srcEnd %d 超出长度 %d", srcEnd, s.count)
	}
	if srcBegin > srcEnd {
		return errs.NewRangef(boundMeta("srcBegin>srcEnd", "srcBegin", srcBegin, "srcEnd", srcEnd),
			"srcBegin %d > srcEnd %d", srcBegin, srcEnd)
	}
	length := srcEnd - srcBegin
	if dstBegin+length > s.count {
		return errs.NewRangef(boundMeta("dstBegin+length", "dstBegin", dstBegin, "length", length, "count", s.count),
			"dstBegin %d + 区间长度 %d 超出缓冲区长度 %d", dstBegin, length, s.count)
	}
	if length > len(dst)-dstBegin {
		return errs.NewRangef(boundMeta("dstLen", "dstBegin", dstBegin, "length", length, "dstLen", len(dst)),
			"dstBegin %d + 区间长度 %d 超出目标长度 %d", dstBegin, length, len(dst))
	}
	if length == 0 {
		return nil
	}

	// 跳过整段，定位 srcBegin 所在分段
	i, off := 0, srcBegin
	for off >= len(s.segments[i]) {
		off -= len(s.segments[i])
		i++
	}
	out := dst[dstBegin : dstBegin+length]
	for len(out) > 0 {
		n := copy(out, s.segments[i][off:])
		out = out[n:]
		i++
		off = 0
	}
	return nil
}

// ToArray 返回全部元素的连续拷贝，之后对缓冲区的修改不影响返回值。
func (s *Store[T]) ToArray() []T {
	out := make([]T, s.count)
	if s.count == 0 {
		return out
	}
	off := 0
	for _, seg := range s.segments[:s.cur] {
		off += copy(out[off:], seg)
	}
	copy(out[off:], s.segments[s.cur][:s.pos])
	return out
}

// WriteOut 按顺序将所有元素写入 sink，不做整体拷贝。
//
// sink 为空返回 ErrInvalidArgument；sink 的错误原样返回，缓冲区不受影响。
func (s *Store[T]) WriteOut(sink Sink[T]) error {
	if sink == nil {
		return errs.NewArgumentf(boundMeta("sink"), "sink 不能为空")
	}
	if f, ok := sink.(SinkFunc[T]); ok && f == nil {
		return errs.NewArgumentf(boundMeta("sink"), "sink 不能为空")
	}
	return s.forEach(sink.WriteSegment)
}

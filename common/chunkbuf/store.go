package chunkbuf

import (
	"math"
	"sync/atomic"

	"github.com/favbox/windbuf/common/config"
	errs "github.com/favbox/windbuf/common/errors"
	"github.com/favbox/windbuf/common/hlog"
	"github.com/favbox/windbuf/internal/nocopy"
)

// Store 是元素类型为 T 的分块累积缓冲区。
//
// 写入前沿 (cur, pos) 同时供追加与整体写出使用：
// cur 之前的分段均已写满，cur 分段的前 pos 个元素有效。
type Store[T Element] struct {
	noCopy nocopy.NoCopy

	segments [][]T
	cur      int // 写入前沿所在分段，-1 表示没有活动分段
	pos      int // 写入前沿在分段内的偏移
	count    int // 逻辑长度
	capacity int // 所有分段长度之和

	initialCapacity int
	maxChunkSize    int
	growthFactor    float64
	alloc           Allocator[T]

	views atomic.Int32 // 未关闭的读取视图个数
}

// New 按配置创建分块缓冲区，并预分配首个 InitialCapacity 长度的分段。
func New[T Element](opts ...config.Option) (*Store[T], error) {
	o := config.NewOptions(opts)
	if o.InitialCapacity <= 0 {
		return nil, errs.NewArgumentf(boundMeta("initialCapacity", "value", o.InitialCapacity),
			"initialCapacity 必须为正数：%d", o.InitialCapacity)
	}
	// NaN 也会被拒绝
	if !(o.GrowthFactor >= 1) {
		return nil, errs.NewArgumentf(boundMeta("growthFactor", "value", o.GrowthFactor),
			"growthFactor 不得小于 1：%v", o.GrowthFactor)
	}
	if o.MaxChunkSize < o.InitialCapacity {
		return nil, errs.NewArgumentf(boundMeta("maxChunkSize", "value", o.MaxChunkSize, "initialCapacity", o.InitialCapacity),
			"maxChunkSize %d 不得小于 initialCapacity %d", o.MaxChunkSize, o.InitialCapacity)
	}

	var alloc Allocator[T] = heapAllocator[T]{}
	if o.Allocator != nil {
		a, ok := o.Allocator.(Allocator[T])
		if !ok {
			return nil, errs.NewArgumentf(boundMeta("allocator"), "分配器 %T 与元素类型不匹配", o.Allocator)
		}
		alloc = a
	}

	s := &Store[T]{
		cur:             -1,
		initialCapacity: o.InitialCapacity,
		maxChunkSize:    o.MaxChunkSize,
		growthFactor:    o.GrowthFactor,
		alloc:           alloc,
	}
	s.segments = append(s.segments, alloc.Malloc(o.InitialCapacity))
	s.capacity = o.InitialCapacity
	s.cur = 0
	return s, nil
}

// 默认配置总是有效的。
func newDefault[T Element]() *Store[T] {
	s, err := New[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// 追加新分段直至容量不小于 need，need 由调用方保证非负。
func (s *Store[T]) grow(need int) {
	for s.capacity < need {
		size := s.initialCapacity
		if s.capacity > 0 {
			size = int(math.Ceil(float64(s.capacity)*s.growthFactor)) - s.capacity
		}
		if size < MinChunkSize {
			size = MinChunkSize
		}
		if size > s.maxChunkSize {
			size = s.maxChunkSize
		}
		s.segments = append(s.segments, s.alloc.Malloc(size))
		s.capacity += size
	}
	// Clear 之后首次增长，前沿回到首个分段
	if s.cur < 0 && len(s.segments) > 0 {
		s.cur, s.pos, s.count = 0, 0, 0
	}
}

// 当前分段写满时前进到下一个预分配分段，返回当前分段的剩余空间。
// 调用前须已通过 grow 保证容量。
func (s *Store[T]) advance() int {
	if room := len(s.segments[s.cur]) - s.pos; room > 0 {
		return room
	}
	s.cur++
	s.pos = 0
	return len(s.segments[s.cur])
}

// Append 追加单个元素。
func (s *Store[T]) Append(e T) {
	s.grow(s.count + 1)
	s.advance()
	s.segments[s.cur][s.pos] = e
	s.pos++
	s.count++
}

// AppendSlice 追加 src[start:start+length]。
//
// length 不大于 0 时什么也不做；start 为负返回 ErrInvalidArgument；
// 区间超出 src 返回 ErrIndexOutOfRange，且在分配任何内存之前完成检查。
func (s *Store[T]) AppendSlice(src []T, start, length int) error {
	if length <= 0 {
		return nil
	}
	if start < 0 {
		return errs.NewArgumentf(boundMeta("start", "start", start), "start 为负数：%d", start)
	}
	if start > len(src) || length > len(src)-start {
		return errs.NewRangef(boundMeta("length", "start", start, "length", length, "srcLen", len(src)),
			"start %d + length %d 超出源长度 %d", start, length, len(src))
	}
	s.appendValues(src[start : start+length])
	return nil
}

func (s *Store[T]) appendValues(vals []T) {
	if len(vals) == 0 {
		return
	}
	s.grow(s.count + len(vals))
	for len(vals) > 0 {
		s.advance()
		n := copy(s.segments[s.cur][s.pos:], vals)
		vals = vals[n:]
		s.pos += n
		s.count += n
	}
}

// Len 返回逻辑长度。
func (s *Store[T]) Len() int {
	return s.count
}

// Cap 返回所有分段的总长度。
func (s *Store[T]) Cap() int {
	return s.capacity
}

// Segments 返回已分配的分段个数。
func (s *Store[T]) Segments() int {
	return len(s.segments)
}

// Unused 返回无需再分配即可写入的元素个数。
func (s *Store[T]) Unused() int {
	if s.cur < 0 {
		return 0
	}
	n := len(s.segments[s.cur]) - s.pos
	for _, seg := range s.segments[s.cur+1:] {
		n += len(seg)
	}
	return n
}

// Clear 回收全部分段，回到空状态。之前创建的读取视图随之失效。
func (s *Store[T]) Clear() {
	if n := s.views.Load(); n > 0 {
		hlog.SystemLogger().Warnf("清空缓冲区时仍有 %d 个读取视图未关闭，这些视图不可再使用", n)
	}
	for _, seg := range s.segments {
		s.alloc.Free(seg)
	}
	// 不复用底层数组，避免改写视图持有的分段列表
	s.segments = nil
	s.cur, s.pos = -1, 0
	s.count, s.capacity = 0, 0
}

// SetLength 将逻辑长度设为 n，并把写入前沿移到偏移 n 处。
//
// 不会清零或拷贝任何元素：先缩短再加长会重新暴露之前写入的内容。
func (s *Store[T]) SetLength(n int) error {
	if n < 0 {
		return errs.NewArgumentf(boundMeta("length", "length", n), "长度为负数：%d", n)
	}
	if n < s.count && s.views.Load() > 0 {
		hlog.SystemLogger().Warnf("读取视图未关闭时长度从 %d 缩短为 %d，视图内容不再可靠", s.count, n)
	}
	s.grow(n)
	s.count = n
	rest := n
	for i, seg := range s.segments {
		s.cur, s.pos = i, rest
		if rest <= len(seg) {
			break
		}
		rest -= len(seg)
	}
	return nil
}

// TrimToSize 回收写入前沿之后的预分配分段。
func (s *Store[T]) TrimToSize() {
	if s.cur < 0 {
		return
	}
	for i := s.cur + 1; i < len(s.segments); i++ {
		s.alloc.Free(s.segments[i])
		s.capacity -= len(s.segments[i])
		s.segments[i] = nil
	}
	s.segments = s.segments[:s.cur+1]
}

// NewView 创建一个读取视图，冻结当前的元素个数和分段列表。
//
// 用完必须调用 Close。
func (s *Store[T]) NewView() *View[T] {
	v := &View[T]{}
	v.init(s)
	return v
}

package chunkbuf

import "github.com/bytedance/gopkg/lang/mcache"

// MinChunkSize 是增长时新分段的最小长度。
const MinChunkSize = 16

// Element 是可存入分块缓冲区的元素类型。
type Element interface {
	~byte | ~rune
}

// Allocator 负责分段内存的分配与回收。
type Allocator[T Element] interface {
	// Malloc 返回长度恰为 n 的分段。
	Malloc(n int) []T
	// Free 回收 Clear 或 TrimToSize 丢弃的分段。
	Free(seg []T)
}

type heapAllocator[T Element] struct{}

func (heapAllocator[T]) Malloc(n int) []T { return make([]T, n) }

func (heapAllocator[T]) Free([]T) {}

// MCacheAllocator 从 mcache 的分级缓存池分配字节分段，丢弃时归还。
//
// 注意：分段不会清零，SetLength 扩大长度时可能暴露其他缓冲区遗留的数据。
type MCacheAllocator struct{}

func (MCacheAllocator) Malloc(n int) []byte { return mcache.Malloc(n) }

func (MCacheAllocator) Free(seg []byte) { mcache.Free(seg) }

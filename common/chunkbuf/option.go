package chunkbuf

import "github.com/favbox/windbuf/common/config"

// WithInitialCapacity 设置首个分段的长度，默认 512。
func WithInitialCapacity(n int) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.InitialCapacity = n
	}}
}

// WithMaxChunkSize 设置单个分段的长度上限，默认 16KB。
func WithMaxChunkSize(n int) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.MaxChunkSize = n
	}}
}

// WithGrowthFactor 设置总容量的增长倍数，默认 1.5。
func WithGrowthFactor(f float64) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.GrowthFactor = f
	}}
}

// WithAllocator 设置分段分配器。
func WithAllocator[T Element](a Allocator[T]) config.Option {
	return config.Option{F: func(o *config.Options) {
		o.Allocator = a
	}}
}

// WithMCache 让字节缓冲区从 mcache 分配分段。
func WithMCache() config.Option {
	return WithAllocator[byte](MCacheAllocator{})
}

package config

const (
	defaultInitialCapacity = 512
	defaultMaxChunkSize    = 16 * 1024
	defaultGrowthFactor    = 1.5
)

// Option 是用于配置 Options 唯一结构体。
type Option struct {
	F func(o *Options)
}

// Options 是分块缓冲区配置项的结构体。
type Options struct {
	// InitialCapacity 是首个分段的长度，也是容量为零时新分段的原始大小，默认 512。
	InitialCapacity int

	// MaxChunkSize 是单个分段的长度上限，不得小于 InitialCapacity，默认 16KB。
	//
	// 容量远大于该值后，每次增长都只分配一个 MaxChunkSize 大小的分段，
	// 以限制单次分配的开销。
	MaxChunkSize int

	// GrowthFactor 是总容量的增长倍数，不得小于 1，默认 1.5。
	GrowthFactor float64

	// Allocator 是分段的自定义分配器，须与元素类型匹配，默认使用堆分配。
	Allocator any
}

// Apply 将指定的一组配置方法 opts 应用到配置项上。
func (o *Options) Apply(opts []Option) {
	for _, opt := range opts {
		opt.F(o)
	}
}

// NewOptions 创建基于给定配置函数的配置项。
func NewOptions(opts []Option) *Options {
	options := &Options{
		InitialCapacity: defaultInitialCapacity,
		MaxChunkSize:    defaultMaxChunkSize,
		GrowthFactor:    defaultGrowthFactor,
	}
	options.Apply(opts)
	return options
}

//go:build (linux || windows || darwin) && amd64 && !stdjson

package json

import "github.com/bytedance/sonic"

// Name 是当前生效的 JSON 包名。
const Name = "sonic"

var (
	json = sonic.ConfigStd
	// Marshal 是导出的 sonic 编码实现。
	Marshal = json.Marshal
	// Unmarshal 是导出的 sonic 解码实现。
	Unmarshal = json.Unmarshal
	// MarshalIndent 是导出的带缩进的 sonic 编码实现。
	MarshalIndent = json.MarshalIndent
)

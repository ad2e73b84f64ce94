//go:build stdjson || !(amd64 && (linux || windows || darwin))

package json

import "encoding/json"

// Name 是当前生效的 JSON 包名。
const Name = "encoding/json"

var (
	// Marshal 是导出的标准库编码实现。
	Marshal = json.Marshal
	// Unmarshal 是导出的标准库解码实现。
	Unmarshal = json.Unmarshal
	// MarshalIndent 是导出的带缩进的标准库编码实现。
	MarshalIndent = json.MarshalIndent
)

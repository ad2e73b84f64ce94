// Package nocopy 提供让 go vet 的 copylocks 检查发现值拷贝的标记类型。
package nocopy

import "sync"

// NoCopy 嵌入到首次使用后不得按值拷贝的结构体中，例如持有写入前沿的分块缓冲区。
//
// 它不占用空间，Lock 与 Unlock 均为空操作。
type NoCopy struct{}

var _ sync.Locker = (*NoCopy)(nil)

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

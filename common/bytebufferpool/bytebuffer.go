package bytebufferpool

import (
	"io"
	"unicode/utf8"
)

// ByteBuffer 是字符写出时的 UTF-8 编码暂存区。使用 Get 获取，用完 Put 归还。
type ByteBuffer struct {
	// B 是已编码的字节。
	B []byte
}

// WriteRunes 向 B 追加 rs 的 UTF-8 编码，返回追加的字节数。
// 无效字符按 utf8.RuneError 编码。
func (b *ByteBuffer) WriteRunes(rs []rune) int {
	n := len(b.B)
	for _, r := range rs {
		b.B = utf8.AppendRune(b.B, r)
	}
	return len(b.B) - n
}

// WriteTo 将 B 整体写入 w。w 写入不足却未报错时返回 io.ErrShortWrite。
func (b *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.B)
	if err == nil && n < len(b.B) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Reset 清空 B，保留底层数组。
func (b *ByteBuffer) Reset() {
	b.B = b.B[:0]
}

// Len 返回已编码的字节数。
func (b *ByteBuffer) Len() int {
	return len(b.B)
}

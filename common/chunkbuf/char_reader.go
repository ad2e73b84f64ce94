package chunkbuf

import (
	"io"
	"unicode/utf8"

	"github.com/favbox/windbuf/common/bytebufferpool"
)

// CharReader 是字符缓冲区的读取视图。
type CharReader struct {
	View[rune]
}

var (
	_ io.RuneReader = (*CharReader)(nil)
	_ io.WriterTo   = (*CharReader)(nil)
	_ io.Closer     = (*CharReader)(nil)
)

// ReadRune 读取下一个字符，size 为其 UTF-8 编码长度。
// 无效字符按 utf8.RuneError 返回，与写出时的编码保持一致。
func (r *CharReader) ReadRune() (ch rune, size int, err error) {
	ch, err = r.ReadOne()
	if err != nil {
		return 0, 0, err
	}
	if !utf8.ValidRune(ch) {
		ch = utf8.RuneError
	}
	return ch, encodedLen(ch), nil
}

// Read 至多读取 len(p) 个字符。
func (r *CharReader) Read(p []rune) (int, error) {
	return r.ReadInto(p, 0, len(p))
}

// WriteTo 将剩余字符以 UTF-8 编码写入 w。
//
// 写入失败时游标停在第一个未被完整写出的字符上，与 ByteReader 一致。
func (r *CharReader) WriteTo(w io.Writer) (int64, error) {
	if err := r.ensureOpen(); err != nil {
		return 0, err
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var total int64
	for r.cur.pos < r.limit {
		seg := r.take(r.limit - r.cur.pos)
		buf.Reset()
		buf.WriteRunes(seg)
		n, err := buf.WriteTo(w)
		total += n
		if err != nil {
			r.unread(len(seg) - runesWithin(seg, int(n)))
			return total, err
		}
	}
	return total, nil
}

// 返回字符 ch 的 UTF-8 编码长度，无效字符按 utf8.RuneError 计算。
func encodedLen(ch rune) int {
	if n := utf8.RuneLen(ch); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// 返回 seg 开头编码完整落在前 n 个字节内的字符个数。
func runesWithin(seg []rune, n int) int {
	for i, ch := range seg {
		size := encodedLen(ch)
		if n < size {
			return i
		}
		n -= size
	}
	return len(seg)
}

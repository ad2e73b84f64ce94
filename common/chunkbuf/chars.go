package chunkbuf

import (
	"io"
	"unicode/utf8"

	"github.com/favbox/windbuf/common/bytebufferpool"
	"github.com/favbox/windbuf/common/config"
	errs "github.com/favbox/windbuf/common/errors"
)

// CharBuffer 是字符（rune）元素的分块缓冲区，常用于累积模板输出的文本。
//
// 偏移和长度均以字符计，写出到 io.Writer 时按 UTF-8 编码。
type CharBuffer struct {
	*Store[rune]
}

var (
	_ io.StringWriter = (*CharBuffer)(nil)
	_ io.WriterTo     = (*CharBuffer)(nil)
)

// NewCharBuffer 按配置创建字符缓冲区。
func NewCharBuffer(opts ...config.Option) (*CharBuffer, error) {
	s, err := New[rune](opts...)
	if err != nil {
		return nil, err
	}
	return &CharBuffer{Store: s}, nil
}

// NewCharBufferString 使用默认配置创建字符缓冲区，并追加 s 的全部字符。
func NewCharBufferString(s string) *CharBuffer {
	c := &CharBuffer{Store: newDefault[rune]()}
	c.appendString(s, utf8.RuneCountInString(s))
	return c
}

// WriteString 追加 s 的全部字符，返回 len(s), nil。
func (c *CharBuffer) WriteString(s string) (int, error) {
	c.appendString(s, utf8.RuneCountInString(s))
	return len(s), nil
}

// WriteRune 追加单个字符，返回其 UTF-8 编码长度。无效字符按 utf8.RuneError 计算长度。
func (c *CharBuffer) WriteRune(r rune) (int, error) {
	c.Append(r)
	return encodedLen(r), nil
}

// AppendString 追加 s 中从第 start 个字符起的 length 个字符，校验规则同 AppendSlice。
func (c *CharBuffer) AppendString(s string, start, length int) error {
	if length <= 0 {
		return nil
	}
	if start < 0 {
		return errs.NewArgumentf(boundMeta("start", "start", start), "start 为负数：%d", start)
	}
	runes := utf8.RuneCountInString(s)
	if start > runes || length > runes-start {
		return errs.NewRangef(boundMeta("length", "start", start, "length", length, "srcLen", runes),
			"start %d + length %d 超出字符数 %d", start, length, runes)
	}
	for i := 0; i < start; i++ {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	c.appendString(s, length)
	return nil
}

// 追加 s 的前 n 个字符，n 不得超过 s 的字符数。
func (c *CharBuffer) appendString(s string, n int) {
	if n <= 0 {
		return
	}
	c.grow(c.count + n)
	for _, r := range s {
		if n == 0 {
			return
		}
		c.advance()
		c.segments[c.cur][c.pos] = r
		c.pos++
		c.count++
		n--
	}
}

// GetChars 将 [srcBegin, srcEnd) 区间的字符拷贝到 dst[dstBegin:]，校验规则同 CopyRange。
func (c *CharBuffer) GetChars(srcBegin, srcEnd int, dst []rune, dstBegin int) error {
	return c.CopyRange(srcBegin, srcEnd, dst, dstBegin)
}

// String 返回全部字符组成的字符串。
func (c *CharBuffer) String() string {
	return string(c.ToArray())
}

// WriteOut 按顺序将全部字符以 UTF-8 编码写入 w。
func (c *CharBuffer) WriteOut(w io.Writer) error {
	_, err := c.WriteTo(w)
	return err
}

// WriteTo 按顺序将全部字符以 UTF-8 编码写入 w，返回写入的字节数。
func (c *CharBuffer) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, errs.NewArgumentf(boundMeta("writer"), "写入器不能为空")
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var total int64
	err := c.forEach(func(seg []rune) error {
		buf.Reset()
		buf.WriteRunes(seg)
		n, err := buf.WriteTo(w)
		total += n
		return err
	})
	return total, err
}

// NewReader 创建字符读取视图，用完必须调用 Close。
func (c *CharBuffer) NewReader() *CharReader {
	r := &CharReader{}
	r.init(c.Store)
	return r
}

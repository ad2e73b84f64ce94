package chunkbuf

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/favbox/windbuf/common/mock"
	"github.com/stretchr/testify/assert"
)

func TestCharBufferStringOffsets(t *testing.T) {
	src := strings.Repeat("A", 2000)
	c, _ := NewCharBuffer(WithInitialCapacity(128))
	assert.Nil(t, c.AppendString(src, 100, 1047))
	assert.Equal(t, 1047, c.Len())
	assert.Equal(t, 1458, c.Cap())
	assert.Equal(t, src[:1047], c.String())
}

func TestCharBufferToString(t *testing.T) {
	seg := "ABCDEFGHIJKLMN"
	c := NewCharBufferString("")
	var sb strings.Builder
	for i := 0; i < 145; i++ {
		_, _ = c.WriteString(seg)
		sb.WriteString(seg)
	}
	assert.Equal(t, sb.String(), c.String())
	assert.Equal(t, []rune(sb.String()), c.ToArray())
}

func TestCharBufferClear(t *testing.T) {
	c := NewCharBufferString("Some test string")
	assert.Equal(t, "Some test string", c.String())
	c.Clear()
	assert.Equal(t, "", c.String())
	_, _ = c.WriteString("a")
	assert.Equal(t, "a", c.String())
}

func TestCharBufferSetLength(t *testing.T) {
	c := NewCharBufferString("first one")
	first := c.String()
	assert.Nil(t, c.SetLength(0))
	_, _ = c.WriteString("second")
	second := c.String()
	assert.Nil(t, c.SetLength(3))

	assert.Equal(t, "first one", first)
	assert.Equal(t, "second", second)
	assert.Equal(t, 3, c.Len())
	assert.Greater(t, c.Cap(), 3)

	_, _ = c.WriteString("tion")
	assert.Equal(t, "section", c.String())
}

func TestCharBufferLargeLength(t *testing.T) {
	c := NewCharBufferString("Some test StringBuffer")
	err := c.AppendSlice(make([]rune, 5), 1, math.MaxInt)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	err = c.AppendSlice(make([]rune, 25), 5, math.MaxInt)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	err = c.AppendString("short", 1, math.MaxInt)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, "Some test StringBuffer", c.String())
	assert.Equal(t, 1, c.Segments())
}

func TestCharBufferUnicode(t *testing.T) {
	c := NewCharBufferString("风吹ab")
	assert.Equal(t, 4, c.Len())

	n, _ := c.WriteString("é")
	assert.Equal(t, 2, n)
	assert.Nil(t, c.AppendString("héllo", 1, 3))
	assert.Equal(t, "风吹abééll", c.String())

	assert.True(t, errors.Is(c.AppendString("héllo", -1, 1), ErrInvalidArgument))
	assert.True(t, errors.Is(c.AppendString("héllo", 3, 3), ErrIndexOutOfRange))
	assert.Nil(t, c.AppendString("héllo", 9, 0))
	assert.Equal(t, 8, c.Len())

	n, _ = c.WriteRune('界')
	assert.Equal(t, 3, n)
	n, _ = c.WriteRune(-1)
	assert.Equal(t, 3, n)
	assert.Equal(t, 10, c.Len())

	dst := make([]rune, 2)
	assert.Nil(t, c.GetChars(0, 2, dst, 0))
	assert.Equal(t, "风吹", string(dst))
}

func TestCharBufferWriteOut(t *testing.T) {
	text := strings.Repeat("分块缓冲区 chunked ", 200)
	c, _ := NewCharBuffer(WithInitialCapacity(32), WithMaxChunkSize(256))
	_, _ = c.WriteString(text)

	var out bytes.Buffer
	n, err := c.WriteTo(&out)
	assert.Nil(t, err)
	assert.Equal(t, int64(len(text)), n)
	assert.Equal(t, text, out.String())

	out.Reset()
	assert.Nil(t, c.WriteOut(&out))
	assert.Equal(t, text, out.String())

	lw := &mock.LimitWriter{Limit: 100}
	assert.Equal(t, mock.ErrWriteFailed, c.WriteOut(lw))
	assert.Equal(t, io.ErrShortWrite, c.WriteOut(&mock.ShortWriter{}))
	assert.True(t, errors.Is(c.WriteOut(nil), ErrInvalidArgument))
	assert.Equal(t, utf8.RuneCountInString(text), c.Len())
}

func TestCharReader(t *testing.T) {
	c, _ := NewCharBuffer(WithInitialCapacity(2))
	_, _ = c.WriteString("a风b")
	c.Append(0xD800)

	r := c.NewReader()
	defer r.Close()

	ch, size, err := r.ReadRune()
	assert.Nil(t, err)
	assert.Equal(t, 'a', ch)
	assert.Equal(t, 1, size)

	ch, size, _ = r.ReadRune()
	assert.Equal(t, '风', ch)
	assert.Equal(t, 3, size)

	buf := make([]rune, 4)
	n, err := r.Read(buf[:1])
	assert.Nil(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 'b', buf[0])

	ch, size, _ = r.ReadRune()
	assert.Equal(t, utf8.RuneError, ch)
	assert.Equal(t, 3, size)

	_, _, err = r.ReadRune()
	assert.Equal(t, io.EOF, err)
}

func TestCharReaderWriteTo(t *testing.T) {
	text := strings.Repeat("读写", 50)
	c, _ := NewCharBuffer(WithInitialCapacity(16))
	_, _ = c.WriteString(text)

	r := c.NewReader()
	defer r.Close()
	_, _ = r.Skip(10)

	var out bytes.Buffer
	n, err := r.WriteTo(&out)
	assert.Nil(t, err)
	assert.Equal(t, int64(out.Len()), n)
	assert.Equal(t, string([]rune(text)[10:]), out.String())
	assert.Equal(t, 0, r.Remaining())

	assert.Nil(t, r.Close())
	_, err = r.WriteTo(&out)
	assert.True(t, errors.Is(err, ErrClosedResource))
}

func TestCharReaderWriteToError(t *testing.T) {
	c := NewCharBufferString("风吹ab")
	r := c.NewReader()
	defer r.Close()

	// 第二个字符只写出一个字节，游标停在它上面
	lw := &mock.LimitWriter{Limit: 4}
	n, err := r.WriteTo(lw)
	assert.Equal(t, mock.ErrWriteFailed, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, 3, r.Remaining())
	ch, _, _ := r.ReadRune()
	assert.Equal(t, '吹', ch)

	sw := &mock.ShortWriter{}
	n, err = r.WriteTo(sw)
	assert.Equal(t, io.ErrShortWrite, err)
	// "ab" 只写出 "a"
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, r.Remaining())
	ch, _, _ = r.ReadRune()
	assert.Equal(t, 'b', ch)
}

func TestCharReaderWriteToMatchesByteReader(t *testing.T) {
	text := "abcdefgh"
	c := NewCharBufferString(text)
	b := NewByteArrayFrom([]byte(text))
	cr := c.NewReader()
	br := b.NewReader()
	defer cr.Close()
	defer br.Close()

	cn, cerr := cr.WriteTo(&mock.LimitWriter{Limit: 5})
	bn, berr := br.WriteTo(&mock.LimitWriter{Limit: 5})
	assert.Equal(t, berr, cerr)
	assert.Equal(t, bn, cn)
	assert.Equal(t, br.Remaining(), cr.Remaining())
}

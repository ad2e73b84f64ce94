package chunkbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newAlphabet(t *testing.T) *CharBuffer {
	c, err := NewCharBuffer(WithInitialCapacity(2))
	assert.Nil(t, err)
	_, _ = c.WriteString("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	// 2 + 16 + 16
	assert.Equal(t, 3, c.Segments())
	return c
}

func TestCopyRange(t *testing.T) {
	c := newAlphabet(t)
	dst := []rune("ZZZZZZZZZZ")
	assert.Nil(t, c.GetChars(3, 9, dst, 2))
	assert.Equal(t, "ZZDEFGHIZZ", string(dst))

	all := make([]rune, 26)
	assert.Nil(t, c.CopyRange(0, 26, all, 0))
	assert.Equal(t, c.String(), string(all))

	// 跨越全部三个分段
	part := make([]rune, 20)
	assert.Nil(t, c.CopyRange(1, 19, part, 1))
	assert.Equal(t, "BCDEFGHIJKLMNOPQRS", string(part[1:19]))
}

func TestCopyRangeBounds(t *testing.T) {
	c := NewCharBufferString("abcdefghij")
	tests := []struct {
		name     string
		srcBegin int
		srcEnd   int
		dstLen   int
		dstBegin int
		bound    string
	}{
		{"srcBegin为负", -1, 3, 20, 0, "srcBegin"},
		{"dstBegin为负", 0, 3, 20, -1, "dstBegin"},
		{"dstBegin越过目标", 0, 3, 20, 20, "dstBegin"},
		{"空目标", 0, 0, 0, 0, "dstBegin"},
		{"srcEnd越过长度", 0, 11, 20, 0, "srcEnd"},
		{"srcEnd为负", 0, -1, 20, 0, "srcEnd"},
		{"区间颠倒", 5, 4, 20, 0, "srcBegin>srcEnd"},
		{"dstBegin加长度越过缓冲区长度", 0, 5, 20, 8, "dstBegin+length"},
		{"目标放不下", 0, 5, 4, 1, "dstLen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]rune, tt.dstLen)
			for i := range dst {
				dst[i] = '#'
			}
			err := c.CopyRange(tt.srcBegin, tt.srcEnd, dst, tt.dstBegin)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))
			assert.Equal(t, tt.bound, boundOf(t, err))
			for _, r := range dst {
				assert.Equal(t, '#', r)
			}
		})
	}
}

func TestCopyRangeEmpty(t *testing.T) {
	c := NewCharBufferString("abc")
	dst := []rune("xyz")
	assert.Nil(t, c.CopyRange(2, 2, dst, 1))
	assert.Equal(t, "xyz", string(dst))

	err := c.GetChars(1, 0, dst, 0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestToArrayIsCopy(t *testing.T) {
	b := NewByteArrayFrom([]byte("snapshot"))
	out := b.ToArray()
	out[0] = 'S'
	_, _ = b.Write([]byte("!"))
	assert.Equal(t, "snapshot!", b.String())
	assert.Equal(t, "Snapshot", string(out))
}

func TestWriteOutSink(t *testing.T) {
	s, _ := New[byte](WithInitialCapacity(16))
	data := []byte("0123456789abcdefghijklmnopqrstuvwxyz")
	_ = s.AppendSlice(data, 0, len(data))

	var got []byte
	calls := 0
	err := s.WriteOut(SinkFunc[byte](func(seg []byte) error {
		calls++
		got = append(got, seg...)
		return nil
	}))
	assert.Nil(t, err)
	assert.Equal(t, data, got)
	// 16 + 16 + 4
	assert.Equal(t, 3, calls)
	assert.Equal(t, len(data), s.Len())
}

func TestWriteOutSinkError(t *testing.T) {
	s, _ := New[byte](WithInitialCapacity(16))
	_ = s.AppendSlice(make([]byte, 40), 0, 40)

	errBoom := errors.New("boom")
	calls := 0
	err := s.WriteOut(SinkFunc[byte](func(seg []byte) error {
		calls++
		return errBoom
	}))
	assert.Equal(t, errBoom, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 40, s.Len())
}

func TestWriteOutEmptyAndNil(t *testing.T) {
	s, _ := New[rune]()
	called := false
	assert.Nil(t, s.WriteOut(SinkFunc[rune](func([]rune) error {
		called = true
		return nil
	})))
	assert.False(t, called)

	assert.True(t, errors.Is(s.WriteOut(nil), ErrInvalidArgument))
	var f SinkFunc[rune]
	assert.True(t, errors.Is(s.WriteOut(f), ErrInvalidArgument))
}

func TestWriteOutAfterSetLength(t *testing.T) {
	s, _ := New[byte](WithInitialCapacity(16))
	_ = s.AppendSlice([]byte("0123456789abcdefXYZ"), 0, 19)
	_ = s.SetLength(16)
	var got []byte
	_ = s.WriteOut(SinkFunc[byte](func(seg []byte) error {
		got = append(got, seg...)
		return nil
	}))
	assert.Equal(t, "0123456789abcdef", string(got))
}

package bytebufferpool

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"
	"unicode/utf8"
)

type halfWriter struct {
	bytes.Buffer
}

func (w *halfWriter) Write(p []byte) (int, error) {
	return w.Buffer.Write(p[:len(p)/2])
}

type failWriter struct{}

var errFail = errors.New("写入失败")

func (failWriter) Write([]byte) (int, error) {
	return 0, errFail
}

func TestByteBuffer_WriteRunes(t *testing.T) {
	var bb ByteBuffer
	n := bb.WriteRunes([]rune("风缓冲ab"))
	if n != 11 {
		t.Fatalf("WriteRunes 返回的字节数异常：%d。期望：11", n)
	}
	n = bb.WriteRunes([]rune{0xD800, -1})
	if n != 6 {
		t.Fatalf("无效字符的编码长度异常：%d。期望：6", n)
	}
	if bb.Len() != 17 {
		t.Fatalf("字节缓冲器长度异常：%d。期望：17", bb.Len())
	}
	if !utf8.Valid(bb.B) {
		t.Fatalf("编码结果不是有效的 UTF-8：%q", bb.B)
	}
	if string(bb.B[:11]) != "风缓冲ab" {
		t.Fatalf("异常的缓冲区内容：%q", bb.B[:11])
	}
	if n = bb.WriteRunes(nil); n != 0 {
		t.Fatalf("空输入返回了 %d", n)
	}
}

func TestByteBuffer_WriteTo(t *testing.T) {
	var bb ByteBuffer
	bb.WriteRunes([]rune("分块写出"))

	var w bytes.Buffer
	for i := 0; i < 10; i++ {
		n, err := bb.WriteTo(&w)
		if err != nil {
			t.Fatalf("异常错误：%s", err)
		}
		if n != int64(bb.Len()) {
			t.Fatalf("WriteTo 返回的n值异常：%d。期望：%d", n, bb.Len())
		}
		if w.String() != "分块写出" {
			t.Fatalf("异常字符串已写入 %q", w.String())
		}
		w.Reset()
	}

	hw := &halfWriter{}
	n, err := bb.WriteTo(hw)
	if err != io.ErrShortWrite {
		t.Fatalf("写入不足应返回 io.ErrShortWrite，实际：%v", err)
	}
	if n != int64(bb.Len()/2) || hw.Len() != bb.Len()/2 {
		t.Fatalf("写入不足时返回的n值异常：%d", n)
	}

	n, err = bb.WriteTo(failWriter{})
	if err != errFail || n != 0 {
		t.Fatalf("应原样返回写入器的错误：n=%d err=%v", n, err)
	}
}

func TestByteBuffer_Reset(t *testing.T) {
	var bb ByteBuffer
	bb.WriteRunes([]rune("reset"))
	c := cap(bb.B)
	bb.Reset()
	if bb.Len() != 0 || cap(bb.B) != c {
		t.Fatalf("Reset 后 len=%d cap=%d，期望 len=0 cap=%d", bb.Len(), cap(bb.B), c)
	}
}

func testByteBufferGetPut(t *testing.T) {
	for i := 0; i < 10; i++ {
		text := []rune("第几段")
		text = append(text, rune('0'+i))
		b := Get()
		if b.Len() != 0 {
			t.Fatalf("Get 返回了非空的字节缓冲区：%q", b.B)
		}
		b.WriteRunes(text)
		if string(b.B) != string(text) {
			t.Fatalf("unexpected result: %q. Expecting %q", b.B, string(text))
		}
		Put(b)
	}
}

func TestByteBufferGetPutSerial(t *testing.T) {
	testByteBufferGetPut(t)
}

func TestByteBufferGetPutConcurrent(t *testing.T) {
	concurrency := 10
	ch := make(chan struct{}, concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			testByteBufferGetPut(t)
			ch <- struct{}{}
		}()
	}

	for i := 0; i < concurrency; i++ {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("timeout!")
		}
	}
}

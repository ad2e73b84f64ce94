package chunkbuf

import errs "github.com/favbox/windbuf/common/errors"

// 可用 errors.Is 判断的错误类别。
var (
	ErrInvalidArgument = errs.ErrInvalidArgument
	ErrIndexOutOfRange = errs.ErrIndexOutOfRange
	ErrClosedResource  = errs.ErrClosedResource
)

func boundMeta(bound string, kv ...any) map[string]any {
	meta := map[string]any{"bound": bound}
	for i := 0; i+1 < len(kv); i += 2 {
		meta[kv[i].(string)] = kv[i+1]
	}
	return meta
}

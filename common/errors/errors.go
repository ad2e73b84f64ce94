package errors

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidArgument = errors.New("无效参数")
	ErrIndexOutOfRange = errors.New("索引越界")
	ErrClosedResource  = errors.New("资源已关闭")
)

type ErrorType uint64

// Error 表示一个带有错误类型和元信息的错误规范。
type Error struct {
	Err  error
	Type ErrorType
	Meta any
}

// 返回错误的消息字符串。
func (msg *Error) Error() string {
	return msg.Err.Error()
}

// JSON 返回便于序列化的错误描述，元信息为映射时展开至顶层。
func (msg *Error) JSON() any {
	jsonData := make(map[string]any)
	if msg.Meta != nil {
		value := reflect.ValueOf(msg.Meta)
		switch value.Kind() {
		case reflect.Struct:
			return msg.Meta
		case reflect.Map:
			for _, key := range value.MapKeys() {
				jsonData[key.String()] = value.MapIndex(key).Interface()
			}
		default:
			jsonData["meta"] = msg.Meta
		}
	}
	if _, ok := jsonData["error"]; !ok {
		jsonData["error"] = msg.Error()
	}
	return jsonData
}

func (msg *Error) Unwrap() error {
	return msg.Err
}

func (msg *Error) IsType(flags ErrorType) bool {
	return (msg.Type & flags) > 0
}

func (msg *Error) SetType(flags ErrorType) *Error {
	msg.Type = flags
	return msg
}

func (msg *Error) SetMeta(data any) *Error {
	msg.Meta = data
	return msg
}

const (
	// ErrorTypeArgument 用于参数为空、为负或互相矛盾，在任何修改之前即被拒绝。
	ErrorTypeArgument ErrorType = 1 << iota
	// ErrorTypeRange 用于区间参数与当前长度或目标切片边界不一致。
	ErrorTypeRange
	// ErrorTypeClosed 用于在已关闭的读取视图上操作。
	ErrorTypeClosed
	// ErrorTypePrivate 表示一个私有的错误。
	ErrorTypePrivate
	// ErrorTypePublic 表示一个公开的错误。
	ErrorTypePublic
	// ErrorTypeAny 表示任何其他错误。
	ErrorTypeAny
)

var _ error = (*Error)(nil)

// New 新建一个指定错误和错误类型及元数据的自定义错误。
func New(err error, t ErrorType, meta any) *Error {
	return &Error{
		Err:  err,
		Type: t,
		Meta: meta,
	}
}

func NewPublic(err string) *Error {
	return New(errors.New(err), ErrorTypePublic, nil)
}

func Newf(t ErrorType, meta any, format string, v ...any) *Error {
	return New(fmt.Errorf(format, v...), t, meta)
}

// NewArgumentf 新建一个包装 ErrInvalidArgument 的参数错误。
func NewArgumentf(meta any, format string, v ...any) *Error {
	return New(fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, v...)), ErrorTypeArgument, meta)
}

// NewRangef 新建一个包装 ErrIndexOutOfRange 的越界错误。
func NewRangef(meta any, format string, v ...any) *Error {
	return New(fmt.Errorf("%w: %s", ErrIndexOutOfRange, fmt.Sprintf(format, v...)), ErrorTypeRange, meta)
}

// NewClosed 新建一个包装 ErrClosedResource 的错误，what 为已关闭资源的名称。
func NewClosed(what string) *Error {
	return New(fmt.Errorf("%w: %s", ErrClosedResource, what), ErrorTypeClosed, nil)
}

// TypeOf 返回 err 链中第一个 *Error 的错误类型，没有则返回 0。
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return 0
}

package errors

import (
	"fmt"

	"buyback/pkg/errors/ecode"
	pkgerr "github.com/pkg/errors"
)

// 携带业务错误码的error，handler层生成，response层解码

type codedError struct {
	code    int
	message string
	cause   error
}

func (e *codedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *codedError) Unwrap() error { return e.cause }

// WithCode 用指定错误码新建一个error
func WithCode(code int, format string, args ...interface{}) error {
	return &codedError{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap 包装底层error并附加错误码和说明
func Wrap(err error, code int, message string) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, message: message, cause: pkgerr.WithStack(err)}
}

// DecodeErr 解码error，返回错误码和提示信息。nil返回Success
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ""
	}
	var ce *codedError
	if pkgerr.As(err, &ce) {
		return ce.code, ce.message
	}
	return ecode.Unknown, err.Error()
}

// IsCode 判断err是否携带指定错误码
func IsCode(err error, code int) bool {
	c, _ := DecodeErr(err)
	return c == code
}

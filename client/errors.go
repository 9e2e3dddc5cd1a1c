package client

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	KindRequest Kind = iota
	KindValidation
	KindAuth
	KindSessionExpired
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindSessionExpired:
		return "session_expired"
	case KindNotFound:
		return "not_found"
	default:
		return "request"
	}
}

// Error 是 client 返回的唯一错误类型，用 errors.Is 和下面的哨兵比较 Kind
type Error struct {
	Kind Kind
	// Op 出错的操作，例如 "Failed to fetch applications"
	Op string
	// Msg 可以直接展示给用户
	Msg    string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 哨兵只比较 Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

var (
	ErrRequest        = &Error{Kind: KindRequest}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrAuth           = &Error{Kind: KindAuth}
	ErrSessionExpired = &Error{Kind: KindSessionExpired}
	ErrNotFound       = &Error{Kind: KindNotFound}

	// ErrCanceled 用户没有确认删除
	ErrCanceled = errors.New("operation canceled")
	// ErrStale 响应回来的时候已经有更新的请求了，结果被丢弃
	ErrStale = errors.New("stale response discarded")
)

func validationError(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Msg: msg}
}

package httperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindNetwork    Kind = "NETWORK_ERROR"
	KindAuth       Kind = "AUTH_ERROR"
	KindServer     Kind = "SERVER_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION_ERROR"
	KindBadRequest Kind = "BAD_REQUEST"
	KindConflict   Kind = "CONFLICT"
)

// Error is the typed error surfaced by the order client and the use cases.
// Code carries the remote HTTP status when there was one.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

// Sentinels for errors.Is; only the Kind is compared.
var (
	ErrNetwork    = &Error{Kind: KindNetwork}
	ErrAuth       = &Error{Kind: KindAuth}
	ErrServer     = &Error{Kind: KindServer}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrValidation = &Error{Kind: KindValidation}
	ErrBadRequest = &Error{Kind: KindBadRequest}
	ErrConflict   = &Error{Kind: KindConflict}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus is the status the local shell answers with for this error.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNetwork:
		return http.StatusServiceUnavailable
	case KindAuth:
		return http.StatusUnauthorized
	case KindServer:
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func NewNetwork(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "network unavailable", Err: err}
}

func NewUnauthorized() *Error {
	return &Error{Kind: KindAuth, Code: http.StatusUnauthorized, Message: "session is not authorized"}
}

func NewForbidden() *Error {
	return &Error{Kind: KindAuth, Code: http.StatusForbidden, Message: "access denied"}
}

func NewInternalServerError() *Error {
	return &Error{Kind: KindServer, Code: http.StatusInternalServerError, Message: "internal server error"}
}

func NewNotFound() *Error {
	return &Error{Kind: KindNotFound, Code: http.StatusNotFound, Message: "not found"}
}

func NewValidation() *Error {
	return &Error{Kind: KindValidation, Message: "malformed response"}
}

func NewBadRequest() *Error {
	return &Error{Kind: KindBadRequest, Code: http.StatusBadRequest, Message: "bad request"}
}

func NewConflict() *Error {
	return &Error{Kind: KindConflict, Code: http.StatusConflict, Message: "conflict"}
}

// FromStatus classifies a non-2xx response from the order service.
func FromStatus(code int, message string) *Error {
	var e *Error
	switch {
	case code == http.StatusUnauthorized:
		e = NewUnauthorized()
	case code == http.StatusForbidden:
		e = NewForbidden()
	case code == http.StatusNotFound:
		e = NewNotFound()
	case code == http.StatusConflict:
		e = NewConflict()
	case code >= 500:
		e = NewInternalServerError()
	default:
		e = NewBadRequest()
	}
	e.Code = code
	if message != "" {
		e.Message = message
	}
	return e
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

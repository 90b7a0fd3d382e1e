package types

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	NotFound             ErrorCode = "NOT_FOUND"
	BadUserInput         ErrorCode = "BAD_USER_INPUT"
	UpstreamError        ErrorCode = "UPSTREAM_ERROR"
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

func (c ErrorCode) String() string {
	return string(c)
}

// Error is the error type surfaced to GraphQL clients. The code is exposed
// through the "extensions" member of the response error.
type Error struct {
	ErrorCode ErrorCode
	Err       error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Extensions is picked up by the graphql executor.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.ErrorCode.String(),
	}
}

func NewError(code ErrorCode, err error) *Error {
	return &Error{
		ErrorCode: code,
		Err:       err,
	}
}

func NewErrorWithMsg(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		ErrorCode: code,
		Err:       fmt.Errorf(format, args...),
	}
}

func NewInternalServiceError(err error) *Error {
	return NewError(InternalServiceError, err)
}

func NewValidationError(format string, args ...any) *Error {
	return NewErrorWithMsg(BadUserInput, format, args...)
}

func NewNotFoundError(format string, args ...any) *Error {
	return NewErrorWithMsg(NotFound, format, args...)
}

// CodeOf returns the code of the first *Error in err's chain or
// InternalServiceError if there is none.
func CodeOf(err error) ErrorCode {
	var typedErr *Error
	if errors.As(err, &typedErr) {
		return typedErr.ErrorCode
	}
	return InternalServiceError
}

package constants

import "net/http"

type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrRoomNotFound    = NewCodedError(http.StatusNotFound, "room not found")
	ErrMalformedRoomID = NewCodedError(http.StatusNotFound, "malformed room identifier")
	ErrUpstreamFailed  = NewCodedError(http.StatusBadGateway, "upstream api unavailable")
)

package bridge

import (
	"fmt"
	"strconv"
)

// ErrorConverter is implemented by decoded wire values that describe
// a failure, and can be turned into an [*Error].
type ErrorConverter interface {
	AsError() *Error
}

// RemoteError is an error reported by the native SDK on the other
// side of the bridge.
type RemoteError struct {
	Code    int     `wire:"adapty_code,required"`
	Message string  `wire:"message,required"`
	Detail  *string `wire:"detail"`
}

func (e RemoteError) AsError() *Error {
	ret := &Error{
		Code:    ErrorCode(e.Code),
		Message: e.Message,
	}
	if e.Detail != nil {
		ret.Detail = *e.Detail
	}
	return ret
}

// BridgeError is an error raised by the bridge layer itself rather
// than by the native SDK, for example when a call names a method that
// doesn't exist.
type BridgeError struct {
	ErrorType       string  `wire:"error_type,required"`
	Name            *string `wire:"name"`
	Type            *string `wire:"type"`
	UnderlyingError *string `wire:"parent_error"`
	Description     *string `wire:"description"`
}

func (e BridgeError) AsError() *Error {
	switch e.ErrorType {
	case "missingRequiredArgument":
		return &Error{
			Code:    CodeWrongParam,
			Message: fmt.Sprintf("Required parameter %q was not passed to the native module", deref(e.Name)),
		}
	case "typeMismatch":
		return &Error{
			Code:    CodeWrongParam,
			Message: fmt.Sprintf("Passed parameter %q has invalid type. Expected type: %s", deref(e.Name), deref(e.Type)),
		}
	case "encodingFailed":
		return &Error{
			Code:    CodeEncodingFailed,
			Message: "Bridge layer failed to encode response. Bridge error: " + opaque(e.UnderlyingError),
		}
	case "wrongParam", "WRONG_PARAMETER":
		msg := "Wrong parameter. Bridge error: " + opaque(e.UnderlyingError)
		if e.Name != nil {
			msg = *e.Name
		}
		return &Error{
			Code:    CodeWrongParam,
			Message: msg,
		}
	case "methodNotImplemented":
		return &Error{
			Code:    CodeBadRequest,
			Message: "Requested bridge handle not found",
		}
	case "unsupportedIosVersion":
		return &Error{
			Code:    CodeBadRequest,
			Message: "Unsupported iOS version",
		}
	default:
		ret := &Error{
			Code:    CodeUnknown,
			Message: "Unexpected error occurred: " + opaque(e.UnderlyingError),
		}
		switch {
		case e.UnderlyingError != nil:
			ret.Detail = *e.UnderlyingError
		case e.Description != nil:
			ret.Detail = *e.Description
		}
		return ret
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// opaque renders an optional opaque error payload for inclusion in a
// message.
func opaque(s *string) string {
	if s == nil {
		return "{}"
	}
	return strconv.Quote(*s)
}

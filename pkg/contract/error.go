package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeInternalError         ErrorCode = "INTERNAL_ERROR"
	ErrorCodeBadRequest            ErrorCode = "BAD_REQUEST"
	ErrorCodeInvalidParameterValue ErrorCode = "INVALID_PARAMETER_VALUE"
	ErrorCodeResourceDoesNotExist  ErrorCode = "RESOURCE_DOES_NOT_EXIST"
	ErrorCodeEndpointNotFound      ErrorCode = "ENDPOINT_NOT_FOUND"
)

// Error is the single error type crossing the service boundary. Resource names the kind
// of reference that failed to resolve ("model", "dataset", "parent_model", ...) so callers
// can tell which id was bad.
type Error struct {
	Code     ErrorCode
	Message  string
	Resource string
	Inner    error
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewErrorWith(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Inner:   err,
	}
}

// NewNotFoundError reports that the referenced resource with the given id does not exist.
func NewNotFoundError(resource string, id int64) *Error {
	return &Error{
		Code:     ErrorCodeResourceDoesNotExist,
		Message:  fmt.Sprintf("No %s with id=%d exists", resource, id),
		Resource: resource,
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s", msg, e.Inner)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Inner
}

func (e *Error) MarshalJSON() ([]byte, error) {
	//nolint:musttag
	return json.Marshal(struct {
		ErrorCode ErrorCode `json:"error_code"`
		Message   string    `json:"message"`
		Resource  string    `json:"resource,omitempty"`
	}{
		ErrorCode: e.Code,
		Message:   e.Message,
		Resource:  e.Resource,
	})
}

func (e *Error) StatusCode() int {
	switch e.Code {
	case ErrorCodeBadRequest:
		return http.StatusBadRequest
	case ErrorCodeInvalidParameterValue:
		return http.StatusUnprocessableEntity
	case ErrorCodeResourceDoesNotExist, ErrorCodeEndpointNotFound:
		return http.StatusNotFound
	case ErrorCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err carries a RESOURCE_DOES_NOT_EXIST contract error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeResourceDoesNotExist)
}

// IsValidation reports whether err carries an INVALID_PARAMETER_VALUE contract error.
func IsValidation(err error) bool {
	return hasCode(err, ErrorCodeInvalidParameterValue)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Code == code
}

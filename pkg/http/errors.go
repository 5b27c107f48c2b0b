package http

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an error rendered to API clients with its HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFoundError(message string) *AppError {
	return &AppError{Code: "ERR_NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

// BadGatewayError reports a failed upstream call.
func BadGatewayError(message string) *AppError {
	return &AppError{Code: "ERR_UPSTREAM", Message: message, Status: http.StatusBadGateway}
}

func ServiceUnavailableError(message string) *AppError {
	return &AppError{Code: "ERR_UNAVAILABLE", Message: message, Status: http.StatusServiceUnavailable}
}

// ErrorRule maps a sentinel error to the AppError built from its message.
type ErrorRule struct {
	Target error
	Build  func(message string) *AppError
}

// MapError returns the AppError of the first rule matching err. Unmatched
// errors are upstream failures.
func MapError(err error, rules ...ErrorRule) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, r := range rules {
		if errors.Is(err, r.Target) {
			return r.Build(err.Error())
		}
	}
	e := BadGatewayError(err.Error())
	e.Err = err
	return e
}

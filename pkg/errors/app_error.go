package errors

import "fmt"

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrNotFound = func(err error) *AppError {
		return &AppError{Code: "not_found", Message: "record not found", Err: err}
	}
	ErrValidation = func(err error) *AppError {
		return &AppError{Code: "validation_failed", Message: "invalid request", Err: err}
	}
	ErrUnauthorized = func(err error) *AppError {
		return &AppError{Code: "unauthorized", Message: "authentication required", Err: err}
	}
	ErrEmailTaken = func(err error) *AppError {
		return &AppError{Code: "email_taken", Message: "email already registered", Err: err}
	}
	ErrInternal = func(err error) *AppError {
		return &AppError{Code: "internal_error", Message: "internal server error", Err: err}
	}
)

// ErrResolutionFailed covers both a non-2xx response from the extraction
// service and a non-success code embedded in its body.
func ErrResolutionFailed(link string, err error) *AppError {
	return &AppError{Code: "resolution_failed", Message: fmt.Sprintf("failed to resolve link: %s", link), Err: err}
}

func ErrDownloadFailed(link string, err error) *AppError {
	return &AppError{Code: "download_failed", Message: fmt.Sprintf("failed to download media: %s", link), Err: err}
}

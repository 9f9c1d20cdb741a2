package apperror

import "errors"

// HTTPError is the flattened view handlers write into the response envelope.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps any error to its HTTP representation. Unknown errors collapse to
// ErrInternal so internals never leak to the client; a wrapped cause surfaces
// as details.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = ErrInternal
	}

	httpErr := HTTPError{
		Status:  appErr.HTTPStatus,
		Code:    appErr.Code,
		Message: appErr.Message,
	}
	if appErr.Err != nil {
		httpErr.Details = appErr.Err.Error()
	}
	return httpErr
}

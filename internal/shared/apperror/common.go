package apperror

import "net/http"

// Shared sentinels for failures no single module owns; domain sentinels live
// in each module's errors package.
var (
	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

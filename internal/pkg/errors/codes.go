package errors

import "net/http"

var (
	// ErrForbidden is the uniform denial for a missing, unknown or inactive
	// API key. Callers must not be able to tell those cases apart.
	ErrForbidden = New(
		"FORBIDDEN",
		"Invalid API key",
		http.StatusForbidden,
	)

	ErrInvalidCoordinates = New(
		"VALIDATION_ERROR",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"VALIDATION_ERROR",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCompanyNotFound = New(
		"NOT_FOUND",
		"Company not found",
		http.StatusNotFound,
	)

	ErrIndividualNotFound = New(
		"NOT_FOUND",
		"Individual not found",
		http.StatusNotFound,
	)

	ErrPlaceNotFound = New(
		"NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrAPIKeyNotFound = New(
		"NOT_FOUND",
		"API key not found",
		http.StatusNotFound,
	)

	ErrOwnerConflict = New(
		"CONFLICT",
		"Place already has an owner",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

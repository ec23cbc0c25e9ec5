package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pokearch/registry/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidPrincipal   = "INVALID_PRINCIPAL"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodePlayerExists       = "PLAYER_EXISTS"
	CodeIndexOutOfRange    = "INDEX_OUT_OF_RANGE"
	CodeMinterNotBound     = "MINTER_NOT_BOUND"
	CodeDisallowedMessage  = "DISALLOWED_MESSAGE"
	CodeDecodeFailure      = "DECODE_FAILURE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var dm *model.DisallowedMessageError
	if errors.As(err, &dm) {
		return &httpError{http.StatusForbidden, APIError{CodeDisallowedMessage, dm.Error()}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidPrincipal):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPrincipal, err.Error()}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Player already registered"}}
	case errors.Is(err, model.ErrIndexOutOfRange):
		return &httpError{http.StatusBadRequest, APIError{CodeIndexOutOfRange, err.Error()}}
	case errors.Is(err, model.ErrMinterNotBound):
		return &httpError{http.StatusConflict, APIError{CodeMinterNotBound, "Minter contract not bound"}}
	case errors.Is(err, model.ErrOwnerNotBound):
		return &httpError{http.StatusConflict, APIError{CodeInternalError, "Owner not bound"}}
	case errors.Is(err, model.ErrUnauthorized):
		return &httpError{http.StatusForbidden, APIError{CodeUnauthorized, "Unauthorized"}}
	case errors.Is(err, model.ErrDecodePayload):
		return &httpError{http.StatusBadRequest, APIError{CodeDecodeFailure, "Cannot decode message payload"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Sender identification required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

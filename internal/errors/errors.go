package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnknownIdentity is returned when the submitted identifier is not approved.
	ErrUnknownIdentity = errors.New("unknown identity")
	// ErrInvalidCredential is returned when a required secret does not match.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrNoOverlay is returned when closing an overlay that is not open.
	ErrNoOverlay = errors.New("no overlay open")
)

// SourceErrorKind classifies remote hours source failures.
type SourceErrorKind string

const (
	// SourceUnconfigured means the person has no endpoint bound.
	SourceUnconfigured SourceErrorKind = "unconfigured"
	// SourceUpstream means the endpoint returned a non-2xx status or a
	// malformed payload.
	SourceUpstream SourceErrorKind = "upstream"
)

// SourceError is a per-person remote fetch failure. It never aborts an
// aggregation run; it is surfaced inline on that person's row.
type SourceError struct {
	Person string
	Kind   SourceErrorKind
	Status int
	Detail string
}

func (e *SourceError) Error() string {
	switch e.Kind {
	case SourceUnconfigured:
		return fmt.Sprintf("no hours endpoint configured for %s", e.Person)
	default:
		if e.Status != 0 {
			return fmt.Sprintf("hours API error %d", e.Status)
		}
		return fmt.Sprintf("hours API error: %s", e.Detail)
	}
}

// NewUnconfigured builds a SourceError for a person with no bound endpoint.
func NewUnconfigured(person string) *SourceError {
	return &SourceError{Person: person, Kind: SourceUnconfigured}
}

// NewUpstream builds a SourceError for an upstream failure.
func NewUpstream(person string, status int, detail string) *SourceError {
	return &SourceError{Person: person, Kind: SourceUpstream, Status: status, Detail: detail}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUnknownIdentity):
		return NewHTTPError(http.StatusUnauthorized, "Invalid Net ID. Please enter an approved Net ID or type 'Guest'.", "UNKNOWN_IDENTITY")
	case errors.Is(err, ErrInvalidCredential):
		return NewHTTPError(http.StatusUnauthorized, "Incorrect password.", "INVALID_CREDENTIAL")
	case errors.Is(err, ErrNoOverlay):
		return NewHTTPError(http.StatusConflict, err.Error(), "NO_OVERLAY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

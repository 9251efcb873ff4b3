package errors

import "net/http"

// HTTPError is an error carrying the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "Not Found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
)

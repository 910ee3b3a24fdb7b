package companies

import "fmt"

// Sentinel errors for well-known API outcomes. Use errors.Is() to check.
var (
	ErrNotFound     = &APIError{StatusCode: 404}
	ErrInvalidInput = &APIError{StatusCode: 400}
	ErrUnauthorized = &APIError{StatusCode: 401}
	ErrUnavailable  = &APIError{StatusCode: 503}
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("companies: server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("companies: %s (status %d)", e.Message, e.StatusCode)
}

// Is matches any APIError with the same status code, so
// errors.Is(err, ErrNotFound) works regardless of the server message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.StatusCode == e.StatusCode
}

package exchange

import (
	"errors"
	"fmt"
)

// InvalidURLError reports a base URL and path combination that cannot be
// parsed into an absolute URL.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL: %q", e.URL)
}

// BadRequestError reports a response that cannot be treated as success. It
// carries the status code that was outside [200, 299], or a Reason when the
// failure is in the response shape rather than the status line.
type BadRequestError struct {
	StatusCode int
	Reason     string
}

func (e *BadRequestError) Error() string {
	if e.Reason != "" {
		return "bad request: " + e.Reason
	}
	return fmt.Sprintf("bad request: status %d", e.StatusCode)
}

// IsInvalidURL reports whether err was caused by an unparseable URL.
func IsInvalidURL(err error) bool {
	var invalidURL *InvalidURLError
	return errors.As(err, &invalidURL)
}

// IsBadRequest reports whether err was caused by a non-success response.
func IsBadRequest(err error) bool {
	var badRequest *BadRequestError
	return errors.As(err, &badRequest)
}

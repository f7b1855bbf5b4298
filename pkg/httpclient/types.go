package httpclient

import "fmt"

// HTTPError reports a non-success HTTP status for a document fetch.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

// Error returns the error message
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for URL %s: %s", e.StatusCode, e.URL, e.Status)
}

// NewHTTPError creates a new HTTP error
func NewHTTPError(statusCode int, url, status string) error {
	return &HTTPError{
		StatusCode: statusCode,
		URL:        url,
		Status:     status,
	}
}

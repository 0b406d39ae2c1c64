package llm

import "fmt"

// HTTPError is returned when a provider answers with a non-2xx status. It
// carries the raw status and response body so callers can decide what to
// surface; providers never retry or recover locally.
type HTTPError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Body)
}

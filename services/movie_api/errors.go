package movie_api

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoURLs      = errors.New("no movie api urls provided")
	ErrEmptyBody   = errors.New("no data returned")
	ErrInvalidBody = errors.New("invalid json body")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %v", e.Code, e.URL)
}

// APIError is returned when the api answers with an error field in its body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("movie api error: %v", e.Message)
}

// LookupError is returned by ResolveStream when the item has no torrent
// for the requested language or quality.
type LookupError struct {
	Lang    string
	Quality string
}

func (e *LookupError) Error() string {
	if e.Quality == "" {
		return fmt.Sprintf("key not found: language %q", e.Lang)
	}
	return fmt.Sprintf("key not found: quality %q for language %q", e.Quality, e.Lang)
}

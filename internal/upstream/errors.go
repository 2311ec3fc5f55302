package upstream

import "fmt"

var ErrNotFound = fmt.Errorf("not found")

// APIError is returned for any non-2xx feed response that is not a 404.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feed api status %d: %s", e.Status, e.Body)
}

package fetch

import "fmt"

// LookupError wraps a failed metadata lookup with the URL it was for.
type LookupError struct {
	URL string
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("metadata lookup for %s failed: %v", e.URL, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

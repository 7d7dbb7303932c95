package core

import "fmt"

// DuplicateURLError indicates an add for a URL already in the catalog.
type DuplicateURLError struct {
	URL string
}

func (e *DuplicateURLError) Error() string {
	return fmt.Sprintf("repository already bookmarked: %s", e.URL)
}

// InvalidIndexError indicates a delete index outside the stored list.
type InvalidIndexError struct {
	Index int
	Count int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index %d: catalog holds %d repositories", e.Index, e.Count)
}

package search

import "fmt"

// BackendError is returned when a backend variant is unreachable or
// answers with a non-success status. StatusCode is 0 when the call
// never produced an HTTP response; Detail carries the raw backend
// body when one was read.
type BackendError struct {
	Variant    Variant
	StatusCode int
	Detail     string
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("search backend %s returned status %d: %s", e.Variant, e.StatusCode, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("search backend %s unreachable: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("search backend %s failed", e.Variant)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// DetailError is the opaque failure of the recipe-detail fetch. The
// detail payload is pass-through, so its errors are too.
type DetailError struct {
	RecipeID   int
	StatusCode int
	Detail     string
	Err        error
}

func (e *DetailError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("recipe detail fetch for %d returned status %d: %s", e.RecipeID, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("recipe detail fetch for %d failed: %v", e.RecipeID, e.Err)
}

func (e *DetailError) Unwrap() error {
	return e.Err
}

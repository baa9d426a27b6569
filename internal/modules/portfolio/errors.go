package portfolio

import "errors"

var (
	ErrNotFound  = errors.New("portfolio item not found")
	ErrSlugTaken = errors.New("slug already in use")
)

// ValidationError carries the field→rule map from struct validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid portfolio payload" }

package testimonial

import "errors"

var ErrNotFound = errors.New("testimonial not found")

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid testimonial payload" }

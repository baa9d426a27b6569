package admin

import "errors"

var (
	ErrNotFound      = errors.New("submission not found")
	ErrNoFields      = errors.New("no updatable fields in request")
	ErrInvalidStatus = errors.New("invalid submission status")
)

package diagnostic

// ValidationError carries per-field messages for a draft that failed the
// server-side gate.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "invalid diagnostic draft" }

package service

// ValidationError reports an input that fails a documented constraint.
// It is always returned before any write is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

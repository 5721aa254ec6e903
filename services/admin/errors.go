package admin

import "fmt"

// ValidationError is raised before any upstream call is issued, for
// required-field and policy checks mirrored from the backend.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Code: "validationError", Message: msg}
}

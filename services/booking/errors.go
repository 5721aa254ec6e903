package booking

import "fmt"

type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrLoginRequired interrupts the step 3 -> 4 transition for
// unauthenticated sessions; the caller redirects to login instead of
// advancing.
var ErrLoginRequired = &WizardError{
	Code:    "loginRequired",
	Message: "sign in to continue with your order",
}

// ErrSessionNotFound covers expired and cancelled sessions alike.
var ErrSessionNotFound = &WizardError{
	Code:    "sessionNotFound",
	Message: "booking session not found or expired",
}

// NewStepError reports a blocked transition with the reason shown to
// the user.
func NewStepError(msg string) error {
	return &WizardError{Code: "stepBlocked", Message: msg}
}

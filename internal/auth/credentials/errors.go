package credentials

import "errors"

// ValidationError is an input problem the submitter can fix. Its message is
// safe to show verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

var (
	ErrFieldsMissing    = &ValidationError{Msg: "required fields missing"}
	ErrPasswordMismatch = &ValidationError{Msg: "password mismatch"}
	ErrInvalidEmail     = &ValidationError{Msg: "invalid email format"}
	ErrEmailTaken       = &ValidationError{Msg: "email already exists"}
	ErrPasswordTooShort = &ValidationError{Msg: "password too short"}
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to the submitter.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRegistrationFailed hides unexpected storage failures from the
	// submitter. The underlying cause is logged, never surfaced.
	ErrRegistrationFailed = errors.New("registration failed, please try again")
)

package betay

import "errors"

// Client-caused validation outcomes. Anything else that bubbles out of the
// manager is a collaborator fault and must be reported generically.
var (
	ErrMissingFields = errors.New("required fields are missing")
	ErrInvalidKey    = errors.New("invalid key")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmailExists   = errors.New("email already exists")
)

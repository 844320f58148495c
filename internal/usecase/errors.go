package usecase

import (
	"errors"
)

// Service-level sentinel errors. Handlers match them with errors.Is and map
// them to user-facing outcomes; anything else is an internal failure.
var (
	// ErrValidation marks user-correctable input problems.
	ErrValidation = errors.New("validation failed")

	// ErrUsernameTaken is the registration conflict outcome.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	// One message for both, so login does not reveal whether an account
	// exists.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrRatingOutOfRange surfaces the reviews table's rating check.
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 10")
)

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrLocationNotFound     = errors.New("location not found")
)

var (
	ErrEventFull          = errors.New("event is full")
	ErrAlreadyRegistered  = errors.New("user already has an active registration for this event")
	ErrRegistrationClosed = errors.New("registration deadline has passed")
	ErrEventNotOpen       = errors.New("event is not open for registration")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is not active")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("username is already taken")
)

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrCategorySlugTaken = errors.New("category slug is already taken")
)

var ErrStoreUnavailable = errors.New("store unavailable")

// InvalidEventError carries the first violated field so callers can report
// which rule failed. It matches ErrInvalidEvent under errors.Is.
type InvalidEventError struct {
	Field  string
	Reason string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid event: %s %s", e.Field, e.Reason)
}

func (e *InvalidEventError) Unwrap() error { return ErrInvalidEvent }

package service

import (
	"errors"
	"fmt"
)

// Sentinel errors carry the exact client-facing messages; handlers map them
// to HTTP statuses.
var (
	ErrInvalidCredentials   = errors.New("Invalid username or password")
	ErrHouseNotFound        = errors.New("House not found")
	ErrAnnouncementNotFound = errors.New("Announcement not found")
	ErrNotOwner             = errors.New("You can only delete your own announcements")
	ErrUnknownPrincipal     = errors.New("unknown principal")
)

// ValidationError marks bad client input (HTTP 400).
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

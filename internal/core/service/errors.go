package service

import (
	"errors"
	"fmt"
)

// ValidationError marks a problem with a client-supplied payload. Handlers
// map it to a 400 with the message in the response body, so messages are
// written for the client and name the offending field.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ErrInvalidPassword is returned by AdminService.Login on a mismatch.
var ErrInvalidPassword = errors.New("Invalid password")

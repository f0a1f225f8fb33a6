package email

import "errors"

var (
	// ErrInvalidMessage is returned by Message.Validate for incomplete messages.
	ErrInvalidMessage = errors.New("email: invalid message")
)

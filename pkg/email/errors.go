package email

import "errors"

var (
	// ErrInvalidConfig indicates the sender configuration failed validation.
	ErrInvalidConfig = errors.New("email: invalid sender configuration")

	// ErrInvalidParams indicates the send parameters failed validation.
	ErrInvalidParams = errors.New("email: invalid send parameters")

	// ErrSendFailed indicates the transport could not deliver the message.
	ErrSendFailed = errors.New("email: failed to send")
)

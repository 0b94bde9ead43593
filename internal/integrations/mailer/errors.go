package mailer

import "errors"

var (
	// ErrSend is returned when the SMTP delivery fails
	ErrSend = errors.New("mailer: failed to send message")
)

// Package domain provides defenitions of all entities.
package domain

import "errors"

// Kind classifies failures reported by the remote ledger call sequence.
type Kind int

const (
	// KindValidation indicates that the remote service explicitly rejected
	// the request; the message carries the remote details verbatim.
	KindValidation Kind = iota + 1
	// KindTransport indicates a network, decoding or other unexpected
	// failure; the message carries a generic wrapper around the cause.
	KindTransport
)

// RemoteError is the normalized failure for a remote ledger call.
type RemoteError struct {
	Kind    Kind
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// NewValidationError returns a remote validation failure.
func NewValidationError(msg string) *RemoteError {
	return &RemoteError{Kind: KindValidation, Message: msg}
}

// NewTransportError returns a transport or unexpected failure.
func NewTransportError(msg string) *RemoteError {
	return &RemoteError{Kind: KindTransport, Message: msg}
}

// AsRemote extracts a RemoteError from err. Any other error is treated as a
// transport failure with an unexpected error wrapper.
func AsRemote(err error) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return re
	}

	return NewTransportError("unexpected error: " + err.Error())
}

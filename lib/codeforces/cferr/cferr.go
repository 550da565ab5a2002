// Package cferr holds the error kinds returned by the codeforces client packages.
//
// Every kind is a sentinel that can be tested with errors.Is. Refinements wrap their
// parent kind, so errors.Is(err, ErrInvalidArgument) also holds for ErrOverflow,
// ErrTypeMismatch and ErrMissingArgument.
package cferr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument is returned for locally rejected input, before any network call.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTypeMismatch    = fmt.Errorf("%w: type mismatch", ErrInvalidArgument)
	ErrOverflow        = fmt.Errorf("%w: overflow", ErrInvalidArgument)
	ErrMissingArgument = fmt.Errorf("%w: missing argument", ErrInvalidArgument)

	// ErrAuthRequired is returned when a credential-gated operation is called anonymously.
	ErrAuthRequired = errors.New("authentication required")

	ErrRemoteRejected    = errors.New("request rejected by codeforces")
	ErrUnavailable       = errors.New("codeforces unavailable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrMissingField      = errors.New("missing field")

	ErrLookupFailure      = errors.New("lookup failed")
	ErrIncorrectReference = fmt.Errorf("%w: incorrect reference", ErrLookupFailure)
)

// RemoteRejectedError carries the status and comment of a non-OK envelope verbatim.
type RemoteRejectedError struct {
	Method  string
	Status  string
	Comment string
}

func (e *RemoteRejectedError) Error() string {
	if e.Comment == "" {
		return fmt.Sprintf("%s: %s returned status %s", ErrRemoteRejected, e.Method, e.Status)
	}
	return fmt.Sprintf("%s: %s returned status %s: %s", ErrRemoteRejected, e.Method, e.Status, e.Comment)
}

func (e *RemoteRejectedError) Unwrap() error {
	return ErrRemoteRejected
}

// UnavailableError is a transport level failure. StatusCode is 0 when no response arrived.
type UnavailableError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *UnavailableError) Error() string {
	msg := []string{ErrUnavailable.Error()}
	if e.StatusCode != 0 {
		msg = append(msg, fmt.Sprintf("http %s", e.Status))
	}
	if e.Err != nil {
		msg = append(msg, e.Err.Error())
	}
	return strings.Join(msg, ": ")
}

func (e *UnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnavailable}
	}
	return []error{ErrUnavailable, e.Err}
}

// MissingFieldError means a response lacked a field the mapper treats as required.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s.%s", ErrMissingField, e.Entity, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Malformed wraps a decoding failure. Truncated bodies are the usual cause, so the
// message points at the batch size.
func Malformed(method string, err error) error {
	return fmt.Errorf(
		"%w: %s: %w (the response may have been truncated, try requesting fewer items)",
		ErrMalformedResponse, method, err,
	)
}

package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure by who can fix it.
type Kind int

const (
	// KindInternal is anything not otherwise classified. It is the zero value
	// so an untagged error is never mistaken for a client mistake.
	KindInternal Kind = iota
	// KindInput means the caller sent something unusable (bad body, bad URL).
	KindInput
	// KindUpstream means an external dependency (transcript or generation
	// provider) failed.
	KindUpstream
)

// String returns the lowercase name used in logs.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindUpstream:
		return "upstream"
	case KindInternal:
		return "internal"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// HTTPStatus maps a Kind to the response status code.
func (k Kind) HTTPStatus() int {
	if k == KindInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Error is a failure tagged with its Kind.
// Message is what the caller is shown; Err is the cause, kept for errors.Is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil && e.Message != e.Err.Error():
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Input tags err as a client-input failure shown to the caller as msg.
func Input(msg string, err error) *Error {
	return &Error{Kind: KindInput, Message: msg, Err: err}
}

// Upstream tags err as an upstream-dependency failure.
// The caller sees the dependency's own message.
func Upstream(err error) *Error {
	return &Error{Kind: KindUpstream, Err: err}
}

// Internal tags err as an unexpected failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindInternal if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// PublicMessage returns the text safe to show a caller for err.
// A tagged Message wins; otherwise the error's own text is used, and
// fallback only when err carries no text at all.
func PublicMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

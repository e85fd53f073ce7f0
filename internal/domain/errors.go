package domain

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the API can report.
// The set is closed: handlers render each Kind through Status, never by
// inspecting the error text.
type Kind int

const (
	// KindStorage is any database failure other than "no such row".
	KindStorage Kind = iota + 1
	// KindTransport is a failure in the request layer itself (body read,
	// response write, anything that never reached the store).
	KindTransport
	// KindNotFound means a single-row lookup, update or delete matched nothing.
	KindNotFound
	// KindInvalidInput means the request was rejected before reaching the store.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindStorage:
		return "storage_failure"
	case KindTransport:
		return "transport_failure"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StatusClass is the externally visible outcome of a failed operation.
type StatusClass string

const (
	StatusNotFound   StatusClass = "not_found"
	StatusBadRequest StatusClass = "bad_request"
	StatusInternal   StatusClass = "internal_error"
)

// Status maps a Kind to its status class.
// An unknown Kind is treated as an internal error so the mapping stays total.
func (k Kind) Status() StatusClass {
	switch k {
	case KindNotFound:
		return StatusNotFound
	case KindInvalidInput:
		return StatusBadRequest
	case KindStorage, KindTransport:
		return StatusInternal
	default:
		return StatusInternal
	}
}

// internalMessage is the only text a client ever sees for storage and
// transport failures. The real cause goes to the server log.
const internalMessage = "Internal server error"

// Error is the typed error returned by every repo and service function.
// Message is safe to show a client for NotFound and InvalidInput; Cause holds
// the underlying error for logging and errors.Is/As chains.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is a sentinel of the same Kind, so callers can
// keep writing errors.Is(err, domain.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Cause == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks. Never return these directly when a more
// specific message is available.
var (
	ErrStorage      = &Error{Kind: KindStorage, Message: "storage failure"}
	ErrTransport    = &Error{Kind: KindTransport, Message: "transport failure"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "not found"}
	ErrInvalidInput = &Error{Kind: KindInvalidInput, Message: "invalid input"}
)

// NotFound returns a NotFound error with a client-visible message.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// InvalidInput returns an InvalidInput error with a client-visible message.
func InvalidInput(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// StorageFailure wraps a database error.
func StorageFailure(cause error) error {
	return &Error{Kind: KindStorage, Message: internalMessage, Cause: cause}
}

// TransportFailure wraps a request-layer error.
func TransportFailure(cause error) error {
	return &Error{Kind: KindTransport, Message: internalMessage, Cause: cause}
}

// KindOf returns the Kind carried by err.
// Errors that never passed through the store's conversion point are
// classified as KindTransport. KindOf(nil) is 0.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindTransport
}

// PublicMessage returns the text that may be shown to a client for err.
func PublicMessage(err error) string {
	var de *Error
	if !errors.As(err, &de) {
		return internalMessage
	}
	switch de.Kind {
	case KindNotFound, KindInvalidInput:
		return de.Message
	default:
		return internalMessage
	}
}

package errors

import "errors"

// Kind classifies an application error; the HTTP layer maps each kind to a status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	default:
		return "internal"
	}
}

// Error carries a client-facing message and, for internal failures, the cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation missing or malformed input.
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// Conflict duplicate email or USI.
func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound unknown record.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Auth bad credentials. Keep the message generic.
func Auth(message string) error {
	return &Error{Kind: KindAuth, Message: message}
}

// Internal unexpected store or hashing failure.
func Internal(message string, cause error) error {
	return &Error{Kind: KindInternal, Message: message, Err: cause}
}

// KindOf returns the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Server error"
}

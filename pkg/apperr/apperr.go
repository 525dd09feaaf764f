package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a request failure and decides its HTTP status.
type Kind string

const (
	// KindValidation covers missing or malformed input fields.
	KindValidation Kind = "VALIDATION"

	// KindConflict covers admission failures (truck already active / in transport).
	KindConflict Kind = "CONFLICT"

	// KindNotFound covers unknown plants, trucks, details and users.
	KindNotFound Kind = "NOT_FOUND"

	// KindState covers illegal lifecycle transitions (check-out before
	// check-in, double check-out).
	KindState Kind = "STATE"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func State(format string, args ...any) *Error {
	return &Error{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

// Status maps an error to its HTTP status. Anything that is not an *Error is
// an infrastructure failure: the unit of work was rolled back, so 500 with the
// message for diagnostics only.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindState:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// Package apperr defines the error kinds the ledger and reporting layers
// return, so callers branch on a kind instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int8

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidPeriod
	KindNotFound
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInvalidPeriod:
		return "invalid_period"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// ErrMissingDateRange is returned when a range-dependent report is called
// without both bounds.
var ErrMissingDateRange = &Error{Kind: KindValidation, Message: "start_date and end_date are required"}

// Error is a tagged error. Op names the operation that failed.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidPeriod(token string) error {
	return &Error{
		Kind:    KindInvalidPeriod,
		Message: fmt.Sprintf("invalid period %q, must be one of daily, weekly, monthly, yearly", token),
	}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Store tags err as a store failure unless it already carries a kind.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return err
	}
	return &Error{Kind: KindStore, Op: op, Err: err}
}

// KindOf returns the kind of the first tagged error in err's chain.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

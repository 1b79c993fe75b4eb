package entity

import (
	"errors"
	"fmt"
)

// Kind classifies domain failures so callers can map them without
// inspecting messages.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindInvalid
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

var (
	ErrNotFound       = errors.New("entity not found")
	ErrInvalidCaller  = errors.New("caller is not a valid user")
	ErrNotArchived    = errors.New("entity must be archived before it can be deleted")
	ErrArchived       = errors.New("archived entity can only be updated by changing its status")
	ErrStorageFailure = errors.New("entity storage failure")

	// ErrUnchanged is returned by a Mutate callback that made no change.
	// Storages then skip the write and return the current entity.
	ErrUnchanged = errors.New("entity unchanged")
)

// Error is a domain error tagged with a Kind and the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// E builds a tagged error. A nil err becomes a generic error named after kind.
func E(kind Kind, op string, err error) error {
	if err == nil {
		err = errors.New(kind.String())
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of the outermost tagged error in err's chain.
// Untagged errors are KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

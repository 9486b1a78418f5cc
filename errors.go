package fspath

import (
	"errors"
)

var (
	ErrNotPathLike    = errors.New("not path-like")
	ErrRepresentation = errors.New("invalid path representation")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newNotPathLikeError(msg string) error {
	return &wrapError{
		underlying: ErrNotPathLike,
		msg:        msg,
	}
}

func newRepresentationError(msg string) error {
	return &wrapError{
		underlying: ErrRepresentation,
		msg:        msg,
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}

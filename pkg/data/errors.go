package data

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the fetch, download and view
// pipeline wraps exactly one of them.
var (
	ErrFetch  = errors.New("fetch error")
	ErrParse  = errors.New("parse error")
	ErrIO     = errors.New("io error")
	ErrRender = errors.New("render error")
)

// Wrap tags err with kind and a short description of the failed step.
// A nil err yields nil.
func Wrap(kind error, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s: %w", kind, msg, err)
}

// Errorf builds a new error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// Kind returns the error kind err wraps, or nil when it wraps none.
func Kind(err error) error {
	for _, kind := range []error{ErrFetch, ErrParse, ErrIO, ErrRender} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so that Is(err, markErr) holds while the
// original cause and stack are preserved.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, seeing both wrap chains and
// marks. Marks are invisible to the standard library's errors.Is, so
// every sentinel produced by Mark must be matched through here.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

package chat

import (
	"errors"
	"fmt"
)

// RequestError wraps any failure from the remote completion call: network,
// authentication, rate limit, malformed request, or a mid-stream disconnect.
// It is always caught at the presentation boundary; a failed turn never
// terminates the session.
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// requestErr wraps err as a *RequestError unless it already is one.
func requestErr(op string, err error) error {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return err
	}
	return &RequestError{Op: op, Err: err}
}

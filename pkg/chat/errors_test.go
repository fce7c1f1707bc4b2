package chat

import (
	"errors"
	"testing"
)

func TestRequestErrWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := requestErr("chat completion", cause)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestRequestErrDoesNotDoubleWrap(t *testing.T) {
	inner := requestErr("chat stream", errors.New("disconnect"))
	outer := requestErr("chat completion", inner)

	if outer != inner {
		t.Fatalf("expected existing RequestError to pass through, got %v", outer)
	}
}

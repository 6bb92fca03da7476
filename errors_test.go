package parlador

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessageIncludesKindAndMsg(t *testing.T) {
	err := newError(SynthesisError, "bad input", nil)
	msg := err.Error()
	if msg == "" {
		t.Fatal("expected non-empty error message")
	}
	if !strings.Contains(msg, SynthesisError.String()) || !strings.Contains(msg, "bad input") {
		t.Errorf("Error() = %q, want it to contain the kind and the message", msg)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := newError(SystemError, "wrapping", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestUnsupportedLanguageErr(t *testing.T) {
	err := unsupportedLanguageErr("xx")
	var pErr *Error
	if !errors.As(err, &pErr) {
		t.Fatal("expected *Error")
	}
	if pErr.Kind != UnsupportedLanguage {
		t.Errorf("expected UnsupportedLanguage kind, got %v", pErr.Kind)
	}
}

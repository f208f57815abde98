package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "unknown cache backend %q", "memcached")

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidConfig)
	}
	if !strings.Contains(err.Message, "memcached") {
		t.Errorf("Message = %q, should contain the backend name", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestErrorString(t *testing.T) {
	err := New(ErrCodeInputTooLarge, "diagram exceeds limit")
	want := "INPUT_TOO_LARGE: diagram exceeds limit"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorStringWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeCacheUnavailable, cause, "connect to localhost:6379")

	got := err.Error()
	if !strings.Contains(got, "CACHE_UNAVAILABLE") || !strings.Contains(got, "connection refused") {
		t.Errorf("Error() = %q, should include code and cause", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrCodeCacheUnavailable, cause, "something broke")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInputTooLarge, "diagram exceeds limit")

	if !Is(err, ErrCodeInputTooLarge) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeCacheUnavailable) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInvalidConfig) {
		t.Error("Is should not match plain errors")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeInvalidConfig, "bad backend")
	outer := fmt.Errorf("load config: %w", inner)

	if !Is(outer, ErrCodeInvalidConfig) {
		t.Error("Is should unwrap fmt.Errorf chains")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeCacheUnavailable, "down")); got != ErrCodeCacheUnavailable {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeCacheUnavailable)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "unknown cache backend")
	if got := UserMessage(err); got != "unknown cache backend" {
		t.Errorf("UserMessage = %q, want message without code", got)
	}

	plain := fmt.Errorf("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}

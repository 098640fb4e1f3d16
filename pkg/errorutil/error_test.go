package errorutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestRetriable(t *testing.T) {
	err := Retriable("redis publish failed")
	if !err.Retryable {
		t.Fatalf("expected retryable error")
	}
	if err.Code != 500 {
		t.Fatalf("code = %d, want 500", err.Code)
	}
	if err.Error() != "redis publish failed" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestNonRetriable(t *testing.T) {
	err := NonRetriable("pair count must be at least 1")
	if err.Retryable {
		t.Fatalf("expected non-retryable error")
	}
	if err.Code != 400 {
		t.Fatalf("code = %d, want 400", err.Code)
	}
}

func TestWithDetails(t *testing.T) {
	err := RetriableWithDetails("publish failed", "dial tcp: connection refused")
	if err.DevDetails != "dial tcp: connection refused" {
		t.Fatalf("dev details = %q", err.DevDetails)
	}

	err2 := NonRetriableWithDetails("marshal failed", "unsupported type")
	if err2.Retryable || err2.DevDetails != "unsupported type" {
		t.Fatalf("unexpected error: %+v", err2)
	}
}

func TestWrapPassesThrough(t *testing.T) {
	orig := Retriable("downstream timeout")
	wrapped := Wrap(orig)
	if wrapped != orig {
		t.Fatalf("expected same *Error instance back")
	}
}

func TestWrapUnwrapsChain(t *testing.T) {
	orig := Retriable("downstream timeout")
	chained := fmt.Errorf("processor[1] failed: %w", orig)
	wrapped := Wrap(chained)
	if wrapped != orig {
		t.Fatalf("expected *Error pulled out of the wrap chain")
	}
	if !wrapped.Retryable {
		t.Fatalf("retryable flag lost through wrap chain")
	}
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(errors.New("boom"))
	if wrapped.Retryable {
		t.Fatalf("plain errors default to non-retryable")
	}
	if wrapped.Message != "boom" || wrapped.DevDetails == "" {
		t.Fatalf("unexpected wrap: %+v", wrapped)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Fatalf("wrapping nil should stay nil")
	}
	if UnWrapResponse(nil) != nil {
		t.Fatalf("unwrapping nil should stay nil")
	}
}

func TestErrorsAs(t *testing.T) {
	var target *Error
	err := func() error { return NonRetriable("bad input") }()
	if !errors.As(err, &target) {
		t.Fatalf("errors.As should match *Error")
	}
	if target.Code != 400 {
		t.Fatalf("code = %d, want 400", target.Code)
	}
}

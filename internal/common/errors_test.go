package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapUpstream(t *testing.T) {
	cause := errors.New("timeout")
	err := WrapUpstream("generate", cause)

	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved")
	}
	if IsNotConfigured(err) {
		t.Fatalf("upstream error must not look unconfigured")
	}
}

func TestIsNotConfigured(t *testing.T) {
	err := fmt.Errorf("generate: %w", ErrNotConfigured)
	if !IsNotConfigured(err) {
		t.Fatalf("expected not configured, got %v", err)
	}
	if IsUpstream(err) {
		t.Fatalf("not configured must not look like an upstream failure")
	}
}

func TestValidationError(t *testing.T) {
	var err error = ValidationError{Field: "prompt", Message: "prompt is required"}

	if got := err.Error(); got != "prompt: prompt is required" {
		t.Fatalf("unexpected message %q", got)
	}
	if !IsBadRequest(fmt.Errorf("%w: bad json", ErrBadRequest)) {
		t.Fatalf("expected bad request")
	}
}

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDiagram, "duplicate table %q", "users")

	if err.Code != ErrCodeInvalidDiagram {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDiagram)
	}

	expected := `INVALID_DIAGRAM: duplicate table "users"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidInput, cause, "decode diagram")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Error() != "INVALID_INPUT: decode diagram: unexpected EOF" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeNotLaidOut, "x"), ErrCodeNotLaidOut, true},
		{"different code", New(ErrCodeNotLaidOut, "x"), ErrCodeNotFound, false},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New(ErrCodeNotFound, "x")), ErrCodeNotFound, true},
		{"plain error", errors.New("x"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := fmt.Errorf("layout: %w", New(ErrCodeUnknownReference, "unknown column %q", "id"))

	if GetCode(err) != ErrCodeUnknownReference {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if UserMessage(err) != `unknown column "id"` {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}

	plain := errors.New("boom")
	if GetCode(plain) != "" {
		t.Errorf("GetCode(plain) = %v, want empty", GetCode(plain))
	}
	if UserMessage(plain) != "boom" {
		t.Errorf("UserMessage(plain) = %q", UserMessage(plain))
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeInvalidName, "x"), true},
		{New(ErrCodeUnknownReference, "x"), true},
		{New(ErrCodeNotFound, "x"), true},
		{New(ErrCodeNotLaidOut, "x"), false},
		{New(ErrCodeInternal, "x"), false},
		{errors.New("x"), false},
	}
	for _, tt := range tests {
		if got := IsClientError(tt.err); got != tt.want {
			t.Errorf("IsClientError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsSearchesNestedCodes(t *testing.T) {
	inner := New(ErrCodeUnknownReference, "unknown table %q", "orders")
	err := Wrap(ErrCodeInvalidInput, fmt.Errorf("relation 0: %w", inner), "read diagram")

	if !Is(err, ErrCodeInvalidInput) || !Is(err, ErrCodeUnknownReference) {
		t.Error("Is should match both the outer and the nested code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is should not match an absent code")
	}
	if GetCode(err) != ErrCodeInvalidInput {
		t.Errorf("GetCode() = %v, want the outermost code", GetCode(err))
	}
}

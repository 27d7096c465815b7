package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "new",
			err:  New(ErrCodeInvalidName, "gate %q", "A-1"),
			want: `INVALID_NAME: gate "A-1"`,
		},
		{
			name: "wrapped cause",
			err:  Wrap(ErrCodeInvalidCircuit, errors.New("unexpected EOF"), "cell.toml"),
			want: "INVALID_CIRCUIT: cell.toml: unexpected EOF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeTimeout, context.DeadlineExceeded, "enumeration stopped after %d paths", 12)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("errors.Is(err, context.DeadlineExceeded) = false")
	}
	if errors.Unwrap(err) != context.DeadlineExceeded {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
	if !Is(err, ErrCodeTimeout) {
		t.Errorf("Is(err, TIMEOUT) = false for %v", err)
	}
}

// The outermost *Error decides the code: a network wrapper that re-uses
// the inner code keeps it, a wrapper with a different code replaces it.
func TestIsOutermostCode(t *testing.T) {
	inner := New(ErrCodeInconsistentGraph, "edge 3 Z-VDD (C) has 1 incidences, want 2")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", inner, ErrCodeInconsistentGraph, true},
		{"same code wrapper", Wrap(GetCode(inner), inner, "pull-up network"), ErrCodeInconsistentGraph, true},
		{"other code wrapper", Wrap(ErrCodeInternal, inner, "solve"), ErrCodeInconsistentGraph, false},
		{"fmt wrapped", fmt.Errorf("browse: %w", inner), ErrCodeInconsistentGraph, true},
		{"plain", errors.New("boom"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFileNotFound, "cell.toml")); got != ErrCodeFileNotFound {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "inconsistent graph",
			err:  Wrap(ErrCodeInconsistentGraph, New(ErrCodeInconsistentGraph, "vertex AB references unknown edge 7"), "pull-down network"),
			want: "pull-down network",
		},
		{
			name: "timeout",
			err:  Wrap(ErrCodeTimeout, context.DeadlineExceeded, "enumeration stopped after 40 paths"),
			want: "enumeration stopped after 40 paths",
		},
		{
			name: "plain",
			err:  errors.New("connection refused"),
			want: "connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

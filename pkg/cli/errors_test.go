package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeError(t *testing.T) {
	underlyingErr := errors.New("cannot open errors.txt")
	err := &ExitCodeError{
		Code: ExitInput,
		Err:  underlyingErr,
	}

	expected := "cannot open errors.txt"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestExitCodeErrorUnwrap(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := &ExitCodeError{
		Code: ExitWrite,
		Err:  underlyingErr,
	}

	unwrapped := err.Unwrap()
	if unwrapped != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlyingErr)
	}

	// Test with errors.Is
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with ExitCodeError.Unwrap()")
	}
}

func TestNewUsageError(t *testing.T) {
	err := NewUsageError(errors.New("unknown flag"))
	if err.Code != ExitUsage {
		t.Errorf("Code = %d, want %d", err.Code, ExitUsage)
	}
}

func TestNewInputError(t *testing.T) {
	err := NewInputError(errors.New("no such file"))
	if err.Code != ExitInput {
		t.Errorf("Code = %d, want %d", err.Code, ExitInput)
	}
}

func TestNewWriteError(t *testing.T) {
	err := NewWriteError(errors.New("read-only file system"))
	if err.Code != ExitWrite {
		t.Errorf("Code = %d, want %d", err.Code, ExitWrite)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "plain error",
			err:  errors.New("something broke"),
			want: ExitFailure,
		},
		{
			name: "usage error",
			err:  NewUsageError(errors.New("bad flag")),
			want: ExitUsage,
		},
		{
			name: "input error",
			err:  NewInputError(errors.New("unreadable")),
			want: ExitInput,
		},
		{
			name: "write error",
			err:  NewWriteError(errors.New("disk full")),
			want: ExitWrite,
		},
		{
			name: "wrapped input error",
			err:  fmt.Errorf("analysis failed: %w", NewInputError(errors.New("unreadable"))),
			want: ExitInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

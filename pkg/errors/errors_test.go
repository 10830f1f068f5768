package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidOption, "option %q not found", "7")

	if err.Code != ErrCodeInvalidOption {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidOption)
	}

	if err.Message != `option "7" not found` {
		t.Errorf("Message = %v, want %v", err.Message, `option "7" not found`)
	}

	expected := `INVALID_OPTION: option "7" not found`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidFormat, cause, "failed to write")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestWrapInput(t *testing.T) {
	cause := errors.New("invalid syntax")
	err := WrapInput(ErrCodeInvalidNumber, cause, "abc", "%q is not a number", "abc")

	if err.Input != "abc" {
		t.Errorf("Input = %q, want %q", err.Input, "abc")
	}

	in, ok := GetInput(err)
	if !ok || in != "abc" {
		t.Errorf("GetInput() = (%q, %v), want (%q, true)", in, ok, "abc")
	}

	if !strings.Contains(err.Error(), "invalid syntax") {
		t.Errorf("Error() = %q, should mention the cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidNumber, "test"),
			code:     ErrCodeInvalidNumber,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidNumber, "test"),
			code:     ErrCodeInvalidOption,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeUnknownConversion, New(ErrCodeInvalidNumber, "inner"), "outer"),
			code:     ErrCodeUnknownConversion,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidNumber,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidNumber,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeUnknownConversion, "x")); got != ErrCodeUnknownConversion {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnknownConversion)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestGetInputMissing(t *testing.T) {
	if _, ok := GetInput(New(ErrCodeInvalidOption, "x")); ok {
		t.Error("GetInput() should report false when no input was recorded")
	}
	if _, ok := GetInput(errors.New("plain")); ok {
		t.Error("GetInput() should report false for non-Error types")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidNumber, "%q is not a number", "abc")); got != `"abc" is not a number` {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

package convert

import (
	"strings"
	"testing"

	"github.com/jorgecontrerasostos/unitconv/pkg/errors"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"100", 100, false},
		{" -40 ", -40, false},
		{"0.5", 0.5, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"", 0, true},
		{"   ", 0, true},
		{"12abc", 0, true},
		{"inf", 0, true},
		{"NaN", 0, true},
		{"1e400", 0, true},
		{"1\x002", 0, true},
		{"\xff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidNumber) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidNumber)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseValueLongLiterals(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"tiny fraction", "0." + strings.Repeat("0", 70) + "1", 1e-71},
		{"trailing zeros", "100." + strings.Repeat("0", 100), 100},
		{"leading zeros", strings.Repeat("0", 200) + "32", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.raw)
			if err != nil {
				t.Fatalf("ParseValue() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseValueTooLargeForFloat(t *testing.T) {
	raw := strings.Repeat("9", 70000)
	_, err := ParseValue(raw)
	if !errors.Is(err, errors.ErrCodeInvalidNumber) {
		t.Fatalf("ParseValue() error = %v, want %s", err, errors.ErrCodeInvalidNumber)
	}
	if in, _ := errors.GetInput(err); in != raw {
		t.Error("error should keep the raw input")
	}
}

func TestParseValueKeepsRawInput(t *testing.T) {
	_, err := ParseValue("abc")
	in, ok := errors.GetInput(err)
	if !ok || in != "abc" {
		t.Errorf("GetInput() = (%q, %v), want (%q, true)", in, ok, "abc")
	}
	if got := errors.UserMessage(err); got != `"abc" is not a number` {
		t.Errorf("UserMessage() = %q", got)
	}

	_, err = ParseValue("   ")
	if in, ok := errors.GetInput(err); !ok || in != "   " {
		t.Errorf("GetInput() = (%q, %v), want the blank input", in, ok)
	}
	if got := errors.UserMessage(err); got != "no number given" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{212, "212.0"},
		{0, "0.0"},
		{-40, "-40.0"},
		{1.60934, "1.60934"},
		{0.453592, "0.453592"},
		{37.77777777777778, "37.77777777777778"},
		{1e16, "1e+16"},
		{0.00001, "1e-05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatResult(tt.in); got != tt.want {
				t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

package convert

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jorgecontrerasostos/unitconv/pkg/errors"
)

// ParseValue parses raw as a finite real number. Surrounding whitespace is
// ignored. On failure the returned *errors.Error has code INVALID_NUMBER and
// its Input field holds raw exactly as given.
func ParseValue(raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if msg := checkNumberText(text); msg != "" {
		return 0, errors.WrapInput(errors.ErrCodeInvalidNumber, nil, raw, "%s", msg)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.WrapInput(errors.ErrCodeInvalidNumber, err, raw, "%q is not a number", raw)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errors.WrapInput(errors.ErrCodeInvalidNumber, nil, raw, "%q is not a finite number", raw)
	}
	return v, nil
}

// checkNumberText performs the structural checks on trimmed input before it
// reaches the float parser and returns a message describing the first
// problem, or "" when there is none:
//   - No empty text
//   - Valid UTF-8 only
//   - No control characters
//
// Length is not limited; the parser accepts literals of any length.
func checkNumberText(text string) string {
	if text == "" {
		return "no number given"
	}
	if !utf8.ValidString(text) {
		return "number is not valid UTF-8"
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return "number contains invalid control characters"
		}
	}
	return ""
}

// FormatResult renders v for display. Integral values keep one decimal place
// ("212.0"); other values use the shortest text that parses back to v.
// Magnitudes below 1e-4 or from 1e16 upwards switch to exponent form.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

package input

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gulievsadigg/carbon-emission/internal/emissions"
)

// ParseValue parses operator text into a validated non-negative finite number.
// Surrounding whitespace is ignored. Errors are ErrNotANumber,
// emissions.ErrNegativeValue or emissions.ErrNonFinite.
func ParseValue(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if err := emissions.ValidateValue(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseOrganization trims the name and rejects blank input.
func ParseOrganization(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyOrganization
	}
	return name, nil
}

// sentence turns an error message into a capitalized sentence for prompts.
func sentence(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:] + "."
}

package services

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Default input bounds, in runes.
const (
	DefaultMaxTitleRunes       = 255
	DefaultMaxDescriptionRunes = 10000
	DefaultMaxContentRunes     = 10000
)

// Limits caps the size of client-supplied text. A zero field disables that
// bound.
type Limits struct {
	MaxTitleRunes       int
	MaxDescriptionRunes int
	MaxContentRunes     int
}

// DefaultLimits returns the bounds used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxTitleRunes:       DefaultMaxTitleRunes,
		MaxDescriptionRunes: DefaultMaxDescriptionRunes,
		MaxContentRunes:     DefaultMaxContentRunes,
	}
}

// normalize returns s in Unicode NFC; the composed form is what gets stored
// and counted. Surrounding whitespace is kept.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// checkText validates a normalized field. required rejects values that are
// blank after trimming; max > 0 bounds the rune count.
func checkText(field, s string, required bool, max int) *HandlerError {
	if required && strings.TrimSpace(s) == "" {
		return badRequest("%s must not be empty", field)
	}
	if max > 0 && utf8.RuneCountInString(s) > max {
		return badRequest("%s exceeds %d characters", field, max)
	}
	return nil
}

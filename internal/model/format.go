package model

import (
	"errors"
	"fmt"
	"strings"
)

// MaxFields is the largest number of positions a filename body may be split
// into, and therefore the longest format a caller may declare.
const MaxFields = 10

// ErrFormatTooLong is returned by ParseFormat when more than MaxFields tokens
// are given.
var ErrFormatTooLong = errors.New("format has too many fields")

// Field is one token of the format mini-language.
//
// Field values appear in two places:
//   - an input Format, where each position names what the matching token of
//     the existing filename holds
//   - an output Format, where each position names what to write next
//
// Tokens that are not one of the known fields are kept verbatim. In an input
// Format they reserve a position that is never read; in an output Format they
// render nothing.
type Field string

const (
	// FieldArtist is the artist name.
	FieldArtist Field = "artist"

	// FieldNumber is the track number.
	FieldNumber Field = "number"

	// FieldTitle is the song title.
	FieldTitle Field = "title"

	// FieldSeparator emits the literal " - ". Only meaningful in an output Format.
	FieldSeparator Field = "separator"
)

// aliases maps the short command line tokens and long spellings onto fields.
var aliases = map[string]Field{
	"artist":            FieldArtist,
	"n":                 FieldArtist,
	"number":            FieldNumber,
	"#":                 FieldNumber,
	"title":             FieldTitle,
	"t":                 FieldTitle,
	"separator":         FieldSeparator,
	"separator-literal": FieldSeparator,
	"s":                 FieldSeparator,
}

// ParseField converts a command line token into a Field.
//
// Known tokens are matched case-insensitively; anything else is returned
// unchanged so it keeps its position.
func ParseField(token string) Field {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(token))]; ok {
		return f
	}
	return Field(token)
}

// Known reports whether f is one of the fields the renamer understands.
func (f Field) Known() bool {
	switch f {
	case FieldArtist, FieldNumber, FieldTitle, FieldSeparator:
		return true
	}
	return false
}

// Format is an ordered list of fields.
//
// Example:
//
//	in, _ := ParseFormat([]string{"n", "#", "t"})
//	// in = [artist number title]
//	i, ok := in.Index(FieldNumber)
//	// i = 1, ok = true
type Format []Field

// ParseFormat builds a Format from command line tokens.
//
// Empty tokens are ignored. Returns ErrFormatTooLong when more than
// MaxFields tokens remain.
func ParseFormat(tokens []string) (Format, error) {
	format := make(Format, 0, len(tokens))
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}
		format = append(format, ParseField(token))
	}
	if len(format) > MaxFields {
		return nil, fmt.Errorf("%w: %d > %d", ErrFormatTooLong, len(format), MaxFields)
	}
	return format, nil
}

// DefaultNewFormat returns the output layout used when none is configured:
// "Artist - 01 - Title".
func DefaultNewFormat() Format {
	return Format{FieldArtist, FieldSeparator, FieldNumber, FieldSeparator, FieldTitle}
}

// Index returns the first position holding f.
func (f Format) Index(field Field) (int, bool) {
	for i, candidate := range f {
		if candidate == field {
			return i, true
		}
	}
	return -1, false
}

// Has reports whether field occurs anywhere in f.
func (f Format) Has(field Field) bool {
	_, ok := f.Index(field)
	return ok
}

// String renders the format as space separated tokens.
func (f Format) String() string {
	parts := make([]string, len(f))
	for i, field := range f {
		parts[i] = string(field)
	}
	return strings.Join(parts, " ")
}

package rename

import (
	"fmt"
	"strings"

	"github.com/handiism/namechange/internal/model"
)

// Tokenize splits text on every rune found in delims.
//
// delims is a set of single-character delimiters: "-_" splits on '-' and
// on '_' separately. Runs of delimiters never produce empty tokens. Every
// token is trimmed of surrounding whitespace and kept, even when the trim
// leaves it empty, so "A - - 1" yields ["A" "" "1"] and positions line up
// with the input format. An empty delims returns the trimmed text as one
// token.
//
// More than model.MaxFields tokens is reported as ErrTooManyFields.
//
// Example:
//
//	Tokenize("Artist - 1 -- Title", "-")
//	// ["Artist" "1" "Title"]
func Tokenize(text, delims string) ([]string, error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(tokens) == model.MaxFields {
			return nil, fmt.Errorf("%w: %q yields more than %d tokens", ErrTooManyFields, text, model.MaxFields)
		}
		tokens = append(tokens, strings.TrimSpace(part))
	}
	return tokens, nil
}

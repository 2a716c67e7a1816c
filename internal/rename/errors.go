package rename

import (
	"errors"
	"fmt"

	"github.com/handiism/namechange/internal/model"
)

// ErrMalformedInput means a filename does not have the structure its input
// format promises. The file should be reported and left untouched.
var ErrMalformedInput = errors.New("malformed input")

// ErrTooManyFields is returned when a filename body splits into more than
// model.MaxFields tokens.
var ErrTooManyFields = fmt.Errorf("%w: too many fields", ErrMalformedInput)

// FieldError describes a field that could not be resolved for one filename.
type FieldError struct {
	// Name is the original filename.
	Name string

	// Field is the field being rendered.
	Field model.Field

	// Index is the position the input format gives the field, or -1 when the
	// format does not mention it.
	Index int

	// Count is the number of tokens the filename split into.
	Count int
}

func (e *FieldError) Error() string {
	if e.Index < 0 {
		if e.Field == model.FieldArtist {
			return fmt.Sprintf("%q: format has no %s field and no artist was given", e.Name, e.Field)
		}
		return fmt.Sprintf("%q: format has no %s field", e.Name, e.Field)
	}
	return fmt.Sprintf("%q: %s is field %d but the name only has %d", e.Name, e.Field, e.Index+1, e.Count)
}

// Unwrap lets errors.Is match ErrMalformedInput.
func (e *FieldError) Unwrap() error {
	return ErrMalformedInput
}

package rename

import (
	"unicode/utf8"

	"github.com/handiism/namechange/internal/model"
)

// separatorLiteral is written for every separator field, whatever delimiters
// the input used.
const separatorLiteral = " - "

// element returns the token the input format assigns to field.
func (f *FileName) element(elements []string, field model.Field) (string, error) {
	i, ok := f.opts.Format.Index(field)
	if !ok {
		return "", &FieldError{Name: f.original, Field: field, Index: -1, Count: len(elements)}
	}
	if i >= len(elements) {
		return "", &FieldError{Name: f.original, Field: field, Index: i, Count: len(elements)}
	}
	return elements[i], nil
}

func (f *FileName) renderArtist(elements []string) (string, error) {
	if !f.opts.Format.Has(model.FieldArtist) {
		if f.opts.Artist == "" {
			return "", &FieldError{Name: f.original, Field: model.FieldArtist, Index: -1, Count: len(elements)}
		}
		return f.opts.Artist, nil
	}
	artist, err := f.element(elements, model.FieldArtist)
	if err != nil {
		return "", err
	}
	return CapitalizeWords(artist, f.opts.MakeLower), nil
}

// renderNumber pads single character track numbers to two characters.
func (f *FileName) renderNumber(elements []string) (string, error) {
	number, err := f.element(elements, model.FieldNumber)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(number) == 1 {
		return "0" + number, nil
	}
	return number, nil
}

func (f *FileName) renderTitle(elements []string) (string, error) {
	title, err := f.element(elements, model.FieldTitle)
	if err != nil {
		return "", err
	}
	return CapitalizeWords(title, f.opts.MakeLower), nil
}

// render writes one output field.
func (f *FileName) render(field model.Field, elements []string) (string, error) {
	switch field {
	case model.FieldArtist:
		return f.renderArtist(elements)
	case model.FieldNumber:
		return f.renderNumber(elements)
	case model.FieldTitle:
		return f.renderTitle(elements)
	case model.FieldSeparator:
		return separatorLiteral, nil
	default:
		return "", nil
	}
}

package rename

import (
	"strings"

	"github.com/handiism/namechange/internal/model"
)

// Options configures how a FileName is parsed and rebuilt.
//
// The same Options value is normally shared by every file of a batch; it is
// only read.
type Options struct {
	// Artist is written when Format has no artist field.
	Artist string

	// Format describes the existing filename body, e.g. [artist number title].
	Format model.Format

	// NewFormat describes the name to build. Empty means DefaultNewFormat.
	NewFormat model.Format

	// Separators is the set of delimiter characters used to split the body.
	Separators string

	// RemoveUnderscore turns every '_' into a space before splitting.
	RemoveUnderscore bool

	// MakeLower lowercases artist and title words before capitalizing them.
	MakeLower bool
}

// FileName is a rename operation for one file.
type FileName struct {
	original string
	opts     Options
}

// New creates a rename operation for original, a base name such as
// "Artist-1-Title.mp3".
func New(original string, opts Options) *FileName {
	return &FileName{original: original, opts: opts}
}

// IsValidSuffix reports whether the original name ends in one of Suffixes.
func (f *FileName) IsValidSuffix() bool {
	return IsValidSuffix(f.original, Suffixes)
}

// Rename builds the new filename.
//
// ok is false when the original name has no accepted suffix; the file
// should be skipped. An error wrapping ErrMalformedInput is returned when
// the name does not split into the fields the formats refer to.
//
// Example:
//
//	f := New("Artist-1-title.mp3", Options{
//	    Format:     model.Format{model.FieldArtist, model.FieldNumber, model.FieldTitle},
//	    Separators: "-",
//	})
//	name, _, _ := f.Rename()
//	// name = "Artist - 01 - Title.mp3"
func (f *FileName) Rename() (name string, ok bool, err error) {
	if !f.IsValidSuffix() {
		return "", false, nil
	}

	body := f.original
	if f.opts.RemoveUnderscore {
		body = strings.ReplaceAll(body, "_", " ")
	}
	body = body[:len(body)-SuffixLength]

	elements, err := Tokenize(body, f.opts.Separators)
	if err != nil {
		return "", false, err
	}

	newFormat := f.opts.NewFormat
	if len(newFormat) == 0 {
		newFormat = model.DefaultNewFormat()
	}

	var sb strings.Builder
	for _, field := range newFormat {
		text, err := f.render(field, elements)
		if err != nil {
			return "", false, err
		}
		sb.WriteString(text)
	}
	sb.WriteString(OutputSuffix)

	return sb.String(), true, nil
}

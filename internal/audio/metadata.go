package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/handiism/namechange/internal/model"
	"github.com/handiism/namechange/internal/rename"
)

// ErrNotMP3 is returned by ParseTrack for files without an accepted suffix.
var ErrNotMP3 = errors.New("not an mp3 file")

// TagSource describes how track metadata is read from a file's name and
// location.
type TagSource struct {
	// ITunes selects the iTunes layout: Artist/Album/NN Title.mp3.
	// Otherwise the name is split on Separators into artist, number, title.
	ITunes bool

	// Separators is the delimiter set used outside iTunes mode.
	Separators string

	// Genre is written to every track when not empty.
	Genre string

	// Comment is written to every track.
	Comment string
}

// ParseTrack derives ID3 metadata for the MP3 file at path.
//
// The album is always the name of the directory holding the file. The rest
// depends on src:
//
//	iTunes:  /music/Bob Dylan/Blonde On Blonde/05 I Want You.mp3
//	         artist = "Bob Dylan", number = "05", title = "I Want You"
//	default: /music/Blonde On Blonde/Bob Dylan - 05 - I Want You.mp3 (Separators "-")
//	         artist = "Bob Dylan", number = "05", title = "I Want You"
//
// Names that do not have the expected shape return an error wrapping
// rename.ErrMalformedInput.
func ParseTrack(path string, src TagSource) (*model.Track, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(abs)
	if !rename.IsValidSuffix(name, rename.Suffixes) {
		return nil, fmt.Errorf("%w: %s", ErrNotMP3, name)
	}
	body := name[:len(name)-rename.SuffixLength]
	dir := filepath.Dir(abs)

	track := &model.Track{
		Path:    abs,
		Album:   filepath.Base(dir),
		Genre:   src.Genre,
		Comment: src.Comment,
	}

	if src.ITunes {
		// "NN Title": two digits, one space, then the title.
		if len(body) < 4 {
			return nil, fmt.Errorf("%w: %q is not in \"NN Title\" form", rename.ErrMalformedInput, name)
		}
		track.Artist = filepath.Base(filepath.Dir(dir))
		track.Number = body[:2]
		track.Title = strings.TrimSpace(body[3:])
		return track, nil
	}

	tokens, err := rename.Tokenize(body, src.Separators)
	if err != nil {
		return nil, err
	}
	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: %q has %d fields, want artist, number and title", rename.ErrMalformedInput, name, len(tokens))
	}
	track.Artist = tokens[0]
	track.Number = tokens[1]
	track.Title = tokens[2]

	return track, nil
}

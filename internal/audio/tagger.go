package audio

import (
	"fmt"

	"github.com/bogem/id3v2"
	"github.com/handiism/namechange/internal/model"
)

// TagEditAction defines how to handle individual ID3 tags.
type TagEditAction int

const (
	// TagEmpty clears the tag value.
	TagEmpty TagEditAction = iota

	// TagModify updates the tag with the value derived from the filename.
	TagModify

	// TagDoNotModify leaves the existing tag value unchanged.
	TagDoNotModify
)

// TagConfig holds tagging configuration for each ID3 field.
//
// Example:
//
//	cfg := &TagConfig{
//	    Artist:      TagModify,      // from the filename or grandparent directory
//	    Album:       TagModify,      // from the parent directory
//	    TrackTitle:  TagModify,
//	    TrackNumber: TagModify,
//	    Genre:       TagDoNotModify, // keep what the ripper wrote
//	    Comment:     TagModify,
//	}
type TagConfig struct {
	// Artist controls the TPE1 (Lead artist) frame.
	Artist TagEditAction

	// Album controls the TALB (Album title) frame.
	Album TagEditAction

	// TrackNumber controls the TRCK (Track number) frame.
	TrackNumber TagEditAction

	// TrackTitle controls the TIT2 (Title) frame.
	TrackTitle TagEditAction

	// Genre controls the TCON (Content type) frame. With TagModify an empty
	// Track.Genre leaves the frame alone.
	Genre TagEditAction

	// Comment controls the COMM (Comments) frame.
	Comment TagEditAction
}

// DefaultTagConfig returns the default tag configuration: every field is
// written from the track metadata.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		Artist:      TagModify,
		Album:       TagModify,
		TrackNumber: TagModify,
		TrackTitle:  TagModify,
		Genre:       TagModify,
		Comment:     TagModify,
	}
}

// Tagger writes ID3 tags to MP3 files.
//
// Example:
//
//	tagger := NewTagger(DefaultTagConfig())
//	track, err := ParseTrack(path, TagSource{Separators: "-"})
//	if err == nil {
//	    err = tagger.SaveTags(track, nil)
//	}
type Tagger struct {
	config *TagConfig
}

// NewTagger creates a new Tagger with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagger(config *TagConfig) *Tagger {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &Tagger{config: config}
}

// Cover is front cover art to embed.
type Cover struct {
	Data []byte

	// MIMEType defaults to image/jpeg when empty.
	MIMEType string
}

// SaveTags writes ID3 tags to the track's MP3 file.
//
// Existing frames that the configuration does not touch are preserved.
// cover, when not nil, replaces any attached picture.
func (t *Tagger) SaveTags(track *model.Track, cover *Cover) error {
	tag, err := id3v2.Open(track.Path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", track.FileName(), err)
	}
	defer tag.Close()

	t.updateStringTags(tag, track)

	if cover != nil && len(cover.Data) > 0 {
		t.updateArtwork(tag, cover)
	}

	return tag.Save()
}

// updateStringTags updates text-based ID3 frames based on configuration.
func (t *Tagger) updateStringTags(tag *id3v2.Tag, track *model.Track) {
	switch t.config.Artist {
	case TagEmpty:
		tag.SetArtist("")
	case TagModify:
		tag.SetArtist(track.Artist)
	}

	switch t.config.Album {
	case TagEmpty:
		tag.SetAlbum("")
	case TagModify:
		tag.SetAlbum(track.Album)
	}

	switch t.config.TrackNumber {
	case TagEmpty:
		tag.DeleteFrames("TRCK")
	case TagModify:
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, track.Number)
	}

	switch t.config.TrackTitle {
	case TagEmpty:
		tag.SetTitle("")
	case TagModify:
		tag.SetTitle(track.Title)
	}

	switch t.config.Genre {
	case TagEmpty:
		tag.SetGenre("")
	case TagModify:
		if track.Genre != "" {
			tag.SetGenre(track.Genre)
		}
	}

	switch t.config.Comment {
	case TagEmpty:
		tag.DeleteFrames(tag.CommonID("Comments"))
	case TagModify:
		tag.DeleteFrames(tag.CommonID("Comments"))
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding:    id3v2.EncodingUTF8,
			Language:    "eng",
			Description: "",
			Text:        track.Comment,
		})
	}
}

// updateArtwork embeds cover art as an attached picture frame.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, cover *Cover) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	mimeType := cover.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mimeType,
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     cover.Data,
	})
}

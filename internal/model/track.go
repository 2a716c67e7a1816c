package model

import "path/filepath"

// Track is one MP3 file together with the metadata derived from its name
// and location.
//
// Track is filled in by audio.ParseTrack and consumed by the tagger and the
// playlist writer. String fields are written to ID3 frames as they are;
// Number keeps the text found in the filename (for example "05").
//
// Example:
//
//	track := &Track{
//	    Path:   "/music/Dylan/Blonde On Blonde/Bob Dylan - 05 - I Want You.mp3",
//	    Artist: "Bob Dylan",
//	    Album:  "Blonde On Blonde",
//	    Number: "05",
//	    Title:  "I Want You",
//	}
type Track struct {
	// Path is the full path of the MP3 file.
	Path string

	// Artist is the lead artist (TPE1).
	Artist string

	// Album is the album title (TALB), usually the parent directory name.
	Album string

	// Number is the track number as it appears in the filename (TRCK).
	Number string

	// Title is the song title (TIT2).
	Title string

	// Genre is the content type (TCON). Empty means leave the frame alone.
	Genre string

	// Comment is written to the COMM frame.
	Comment string
}

// FileName returns the base name of the track's file.
func (t *Track) FileName() string {
	return filepath.Base(t.Path)
}

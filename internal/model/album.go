package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Album is a directory of tracks processed together.
//
// The album title defaults to the directory name, which is how most ripped
// collections are laid out:
//
//	/music/{artist}/{album}/{artist} - {number} - {title}.mp3
//
// Example:
//
//	album := NewAlbum("/music/Bob Dylan/Blonde On Blonde", PlaylistFormatM3U)
//	// album.Title = "Blonde On Blonde"
//	// album.Artist = "Bob Dylan"
//	// album.PlaylistPath = "/music/Bob Dylan/Blonde On Blonde/Blonde On Blonde.m3u"
type Album struct {
	// Artist is the album artist, taken from the grandparent directory name.
	Artist string

	// Title is the album title.
	Title string

	// Tracks holds the album's tracks in directory order.
	Tracks []*Track

	// Path is the album directory.
	Path string

	// PlaylistPath is where a playlist for this album is written.
	PlaylistPath string
}

// NewAlbum creates an Album for the directory at dir.
func NewAlbum(dir string, format PlaylistFormat) *Album {
	dir = filepath.Clean(dir)
	album := &Album{
		Path:   dir,
		Title:  filepath.Base(dir),
		Artist: filepath.Base(filepath.Dir(dir)),
	}
	album.PlaylistPath = filepath.Join(dir, sanitizeFileName(album.Title)+format.Extension())
	return album
}

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatM3U creates .m3u playlist files (most widely supported).
	PlaylistFormatM3U PlaylistFormat = iota

	// PlaylistFormatPLS creates .pls playlist files (used by Winamp).
	PlaylistFormatPLS

	// PlaylistFormatWPL creates .wpl playlist files (Windows Media Player).
	PlaylistFormatWPL

	// PlaylistFormatZPL creates .zpl playlist files (Zune Media Player).
	PlaylistFormatZPL
)

// ParsePlaylistFormat maps a settings value ("m3u", "pls", "wpl", "zpl")
// to a PlaylistFormat. The second result is false for unknown names.
func ParsePlaylistFormat(name string) (PlaylistFormat, bool) {
	switch strings.ToLower(name) {
	case "m3u", "":
		return PlaylistFormatM3U, true
	case "pls":
		return PlaylistFormatPLS, true
	case "wpl":
		return PlaylistFormatWPL, true
	case "zpl":
		return PlaylistFormatZPL, true
	}
	return PlaylistFormatM3U, false
}

// Extension returns the file extension for the playlist format, including the dot.
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case PlaylistFormatPLS:
		return ".pls"
	case PlaylistFormatWPL:
		return ".wpl"
	case PlaylistFormatZPL:
		return ".zpl"
	default:
		return ".m3u"
	}
}

var (
	invalidChars    = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots    = regexp.MustCompile(`\.+$`)
	multipleSpacing = regexp.MustCompile(`\s+`)
)

// sanitizeFileName replaces characters that are invalid in file names.
func sanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multipleSpacing.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

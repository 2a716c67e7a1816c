// Package model defines the data structures shared by the renamer, the
// batch driver and the tagger.
//
// # Formats
//
// A Format is an ordered list of Field tokens. The input format describes
// how an existing filename body is laid out; the output format describes
// the name to synthesize:
//
//	in, _ := model.ParseFormat([]string{"artist", "number", "title"})
//	out := model.DefaultNewFormat() // artist separator number separator title
//
// The classic short tokens are accepted as aliases:
//
//	n  artist
//	#  number
//	t  title
//	s  separator
//
// # Tracks and Albums
//
// Track carries the metadata written to ID3 tags. Album groups the tracks of
// one directory and knows where its playlist goes:
//
//	album := model.NewAlbum("/music/Artist/Album", model.PlaylistFormatM3U)
package model

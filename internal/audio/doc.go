// Package audio writes what namechange knows about a track back into the
// files: ID3 tags and playlists.
//
// # ID3 Tagging
//
// ParseTrack reads metadata from a file's name and directory, and the Tagger
// writes it:
//
//	track, err := audio.ParseTrack(path, audio.TagSource{Separators: "-"})
//	if err != nil {
//	    return err
//	}
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err = tagger.SaveTags(track, nil)
//
// Two filename layouts are understood:
//   - "Artist - NN - Title.mp3" in an album directory (split on a delimiter set)
//   - iTunes style "Artist/Album/NN Title.mp3"
//
// The album title is always the parent directory name.
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(album)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio

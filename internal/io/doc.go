// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Listing and renaming files without clobbering existing ones
//   - Filename sanitization for cross-platform compatibility
//   - Cover art detection, resizing and JPEG conversion
//
// # File Operations
//
//	names, err := ioutils.ListFiles("/music/Artist/Album")
//
//	// Fails with ErrTargetExists instead of overwriting
//	err = ioutils.RenameFile(ctx, dir, "artist-1-song.mp3", "Artist - 01 - Song.mp3")
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("AC/DC - 01 - T.N.T.mp3") // "AC_DC - 01 - T.N.T.mp3"
//
// # Image Processing
//
// The ImageService prepares cover art before it is embedded in ID3 tags:
//
//	svc := ioutils.NewImageService()
//	if _, err := svc.DetectImage(data); err != nil {
//	    // not an image
//	}
//	resized, _ := svc.ResizeImage(ctx, data, 500, 500)
package ioutils

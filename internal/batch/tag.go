package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/namechange/internal/audio"
	ioutils "github.com/handiism/namechange/internal/io"
	"github.com/handiism/namechange/internal/rename"
	"golang.org/x/sync/errgroup"
)

// Tag writes ID3 tags to every MP3 file in dir.
//
// Metadata comes from each file's name and directory as configured by the
// tag settings. When EmbedCover is set, the first cover image found in dir is
// resized and embedded in every file. Files are tagged concurrently; a file
// that fails is reported and does not stop the others.
func (m *Manager) Tag(ctx context.Context, dir string) (Stats, error) {
	names, err := ioutils.ListFiles(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var cover *audio.Cover
	if m.settings.EmbedCover {
		cover = m.loadCover(ctx, dir)
	}

	src := m.settings.ToTagSource()
	m.reset(len(names))

	var tagged, skipped, failed int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer atomic.AddInt32(&m.processed, 1)

			if !rename.IsValidSuffix(name, rename.Suffixes) {
				atomic.AddInt32(&skipped, 1)
				return nil
			}

			m.progress(ProgressEvent{Message: fmt.Sprintf("Opening file: %s (%d/%d)", name, i+1, len(names)), Level: LevelVerbose})

			track, err := audio.ParseTrack(filepath.Join(dir, name), src)
			if err == nil {
				err = m.tagger.SaveTags(track, cover)
			}
			if err != nil {
				atomic.AddInt32(&failed, 1)
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", name, err), Level: LevelError})
				return nil
			}

			atomic.AddInt32(&tagged, 1)
			m.progress(ProgressEvent{Message: fmt.Sprintf("Tagged %s: %s / %s / %s - %s", name, track.Artist, track.Album, track.Number, track.Title), Level: LevelVerbose})
			return nil
		})
	}

	err = g.Wait()
	return Stats{Tagged: int(tagged), Skipped: int(skipped), Failed: int(failed)}, err
}

// loadCover finds and prepares cover art; problems are reported as warnings
// and tagging continues without a cover.
func (m *Manager) loadCover(ctx context.Context, dir string) *audio.Cover {
	data, name, err := m.imageService.LoadCover(ctx, dir, m.settings.CoverFileNames)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			m.progress(ProgressEvent{Message: "No cover image found", Level: LevelWarning})
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading cover: %v", err), Level: LevelWarning})
		}
		return nil
	}

	if m.settings.CoverMaxSize > 0 {
		if resized, err := m.imageService.ResizeImage(ctx, data, m.settings.CoverMaxSize, m.settings.CoverMaxSize); err == nil {
			data = resized
		} else {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Failed to resize %s: %v", name, err), Level: LevelWarning})
		}
	}
	if m.settings.ConvertCoverJPG {
		if converted, err := m.imageService.ConvertToJPEG(ctx, data); err == nil {
			data = converted
		}
	}

	mime, err := m.imageService.DetectImage(data)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Ignoring cover %s: %v", name, err), Level: LevelWarning})
		return nil
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Using cover %s", name), Level: LevelInfo})
	return &audio.Cover{Data: data, MIMEType: mime}
}

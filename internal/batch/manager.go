package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/handiism/namechange/internal/audio"
	"github.com/handiism/namechange/internal/config"
	ioutils "github.com/handiism/namechange/internal/io"
	"github.com/handiism/namechange/internal/model"
	"github.com/handiism/namechange/internal/rename"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Status is the outcome planned for one file.
type Status int

const (
	// StatusRename means the file gets a new name.
	StatusRename Status = iota

	// StatusUnchanged means the computed name equals the current one.
	StatusUnchanged

	// StatusSkipped means the file has no accepted suffix.
	StatusSkipped

	// StatusFailed means no name could be computed; see Plan.Err.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRename:
		return "rename"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// ErrDuplicateTarget marks plans whose new name is claimed by an earlier file
// of the same batch.
var ErrDuplicateTarget = errors.New("another file in the batch gets the same name")

// Plan is the computed rename of one file.
type Plan struct {
	OldName string
	NewName string
	Status  Status
	Err     error
}

// Stats counts what a batch operation did.
type Stats struct {
	Renamed  int
	Tagged   int
	Declined int
	Skipped  int
	Failed   int
}

// ConfirmFunc decides whether a planned rename is carried out.
type ConfirmFunc func(Plan) bool

// Manager coordinates renaming and tagging of one directory at a time.
type Manager struct {
	settings     *config.Settings
	opts         rename.Options
	tagger       *audio.Tagger
	playlist     *audio.PlaylistCreator
	imageService *ioutils.ImageService

	total     int32
	processed int32

	onProgress func(ProgressEvent)
	mu         sync.Mutex
}

// NewManager creates a new batch Manager.
//
// The rename formats in settings are parsed once here; an error is returned
// when they are invalid. Unrecognized output format tokens are reported as
// warnings.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) (*Manager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	opts, err := settings.RenameOptions()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		settings:     settings,
		opts:         opts,
		tagger:       audio.NewTagger(audio.DefaultTagConfig()),
		playlist:     audio.NewPlaylistCreator(settings.ToPlaylistFormat(), settings.M3UExtended),
		imageService: ioutils.NewImageService(),
		onProgress:   onProgress,
	}

	for _, field := range opts.NewFormat {
		if !field.Known() {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Output format token %q is not a field and writes nothing", field), Level: LevelWarning})
		}
	}

	return m, nil
}

// GetProgress returns how many files of the running operation are done.
func (m *Manager) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&m.processed), atomic.LoadInt32(&m.total)
}

// Plan computes the new name of every file in dir.
//
// Names are computed concurrently, limited by Settings.Workers; the returned
// plans follow directory order. Nothing on disk is changed.
func (m *Manager) Plan(ctx context.Context, dir string) ([]Plan, error) {
	names, err := ioutils.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	m.reset(len(names))

	plans := make([]Plan, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.Workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plans[i] = m.planFile(name)
			atomic.AddInt32(&m.processed, 1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	markDuplicates(plans)

	for _, plan := range plans {
		switch plan.Status {
		case StatusFailed:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot rename %s: %v", plan.OldName, plan.Err), Level: LevelError})
		case StatusSkipped:
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s", plan.OldName), Level: LevelVerbose})
		}
	}

	return plans, nil
}

func (m *Manager) planFile(name string) Plan {
	newName, ok, err := rename.New(name, m.opts).Rename()
	switch {
	case err != nil:
		return Plan{OldName: name, Status: StatusFailed, Err: err}
	case !ok:
		return Plan{OldName: name, Status: StatusSkipped}
	}

	newName = ioutils.SanitizeFileName(newName)
	if newName == name {
		return Plan{OldName: name, NewName: newName, Status: StatusUnchanged}
	}
	return Plan{OldName: name, NewName: newName, Status: StatusRename}
}

// markDuplicates fails every rename whose target is already claimed by an
// earlier plan, or by a file that keeps its name.
func markDuplicates(plans []Plan) {
	claimed := make(map[string]bool, len(plans))
	for _, plan := range plans {
		if plan.Status == StatusUnchanged || plan.Status == StatusSkipped || plan.Status == StatusFailed {
			claimed[plan.OldName] = true
		}
	}
	for i := range plans {
		if plans[i].Status != StatusRename {
			continue
		}
		if claimed[plans[i].NewName] {
			plans[i].Status = StatusFailed
			plans[i].Err = fmt.Errorf("%w: %s", ErrDuplicateTarget, plans[i].NewName)
			continue
		}
		claimed[plans[i].NewName] = true
	}
}

// Apply carries out the renames in plans, one at a time.
//
// confirm is asked before each rename; nil accepts everything. Files that
// fail are reported and the batch continues. Cancelling ctx stops before the
// next file.
func (m *Manager) Apply(ctx context.Context, dir string, plans []Plan, confirm ConfirmFunc) (Stats, error) {
	var stats Stats
	m.reset(len(plans))

	var renamed []string
	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		atomic.AddInt32(&m.processed, 1)

		switch plan.Status {
		case StatusSkipped:
			stats.Skipped++
			continue
		case StatusFailed:
			stats.Failed++
			renamed = append(renamed, plan.OldName)
			continue
		case StatusUnchanged:
			renamed = append(renamed, plan.OldName)
			continue
		}

		if confirm != nil && !confirm(plan) {
			stats.Declined++
			renamed = append(renamed, plan.OldName)
			continue
		}

		if err := ioutils.RenameFile(ctx, dir, plan.OldName, plan.NewName); err != nil {
			stats.Failed++
			m.progress(ProgressEvent{Message: fmt.Sprintf("Cannot change file name to %s: %v", plan.NewName, err), Level: LevelError})
			renamed = append(renamed, plan.OldName)
			continue
		}
		stats.Renamed++
		renamed = append(renamed, plan.NewName)
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s -> %s", plan.OldName, plan.NewName), Level: LevelSuccess})
	}

	if m.settings.CreatePlaylist && len(renamed) > 0 {
		if err := m.WritePlaylist(ctx, dir, renamed); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist: %v", err), Level: LevelWarning})
		}
	}

	return stats, nil
}

// WritePlaylist writes a playlist of the named MP3 files into dir.
func (m *Manager) WritePlaylist(ctx context.Context, dir string, names []string) error {
	album := model.NewAlbum(dir, m.settings.ToPlaylistFormat())
	for _, name := range names {
		if !rename.IsValidSuffix(name, rename.Suffixes) {
			continue
		}
		path := filepath.Join(dir, name)
		track, err := audio.ParseTrack(path, audio.TagSource{Separators: m.settings.TagSeparators})
		if err != nil {
			track = &model.Track{Path: path}
		}
		album.Tracks = append(album.Tracks, track)
	}

	content := m.playlist.CreatePlaylist(album)
	if err := ioutils.EnsureDir(filepath.Dir(album.PlaylistPath)); err != nil {
		return err
	}
	if err := ioutils.WriteFile(ctx, album.PlaylistPath, []byte(content)); err != nil {
		return err
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist %s", filepath.Base(album.PlaylistPath)), Level: LevelSuccess})
	return nil
}

func (m *Manager) reset(total int) {
	atomic.StoreInt32(&m.total, int32(total))
	atomic.StoreInt32(&m.processed, 0)
}

func (m *Manager) progress(event ProgressEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

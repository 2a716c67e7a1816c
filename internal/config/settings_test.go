package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/handiism/namechange/internal/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Separators != "-" || settings.Workers != 4 || settings.PlaylistFormat != "m3u" {
		t.Errorf("Load(missing) = %+v, want defaults", settings)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	settings := DefaultSettings()
	settings.Artist = "Bob Dylan"
	settings.Separators = "-_"
	settings.Format = []string{"#", "t"}
	settings.NewFormat = []string{"title", "s", "artist"}
	settings.MakeLower = true
	settings.PlaylistFormat = "pls"

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.Artist != "Bob Dylan" || loaded.Separators != "-_" || !loaded.MakeLower {
		t.Errorf("Load() = %+v, want saved values", loaded)
	}
	if len(loaded.NewFormat) != 3 || loaded.NewFormat[2] != "artist" {
		t.Errorf("Load().NewFormat = %q", loaded.NewFormat)
	}
	if loaded.ToPlaylistFormat() != model.PlaylistFormatPLS {
		t.Errorf("ToPlaylistFormat() = %v, want PLS", loaded.ToPlaylistFormat())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "separators: \"_\"\nformat: [n, \"#\", t]\nremove_underscore: false\nworkers: 2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Separators != "_" || settings.Workers != 2 {
		t.Errorf("Load(yaml) = %+v", settings)
	}
	if settings.M3UExtended != true {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NAMECHANGE_ARTIST", "The Band")
	t.Setenv("NAMECHANGE_WORKERS", "8")

	settings, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Artist != "The Band" || settings.Workers != 8 {
		t.Errorf("Load() = artist %q workers %d, want env values", settings.Artist, settings.Workers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(*Settings) {}, false},
		{"zero workers", func(s *Settings) { s.Workers = 0 }, true},
		{"bad playlist", func(s *Settings) { s.PlaylistFormat = "xspf" }, true},
		{"empty format", func(s *Settings) { s.Format = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRenameOptions(t *testing.T) {
	s := DefaultSettings()
	s.Format = []string{"n", "#", "t"}
	s.NewFormat = []string{"t", "s", "n"}
	s.RemoveUnderscore = true

	opts, err := s.RenameOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Format.String() != "artist number title" {
		t.Errorf("Format = %q", opts.Format)
	}
	if opts.NewFormat.String() != "title separator artist" {
		t.Errorf("NewFormat = %q", opts.NewFormat)
	}
	if !opts.RemoveUnderscore || opts.Separators != "-" {
		t.Errorf("options = %+v", opts)
	}

	s.Format = make([]string, model.MaxFields+1)
	for i := range s.Format {
		s.Format[i] = "t"
	}
	if _, err := s.RenameOptions(); !errors.Is(err, model.ErrFormatTooLong) {
		t.Errorf("RenameOptions() error = %v, want ErrFormatTooLong", err)
	}
}

func TestToTagSource(t *testing.T) {
	s := DefaultSettings()
	s.ITunes = true
	s.Genre = "Folk"
	s.Comment = "from vinyl"

	src := s.ToTagSource()
	if !src.ITunes || src.Genre != "Folk" || src.Comment != "from vinyl" || src.Separators != "-" {
		t.Errorf("ToTagSource() = %+v", src)
	}
}

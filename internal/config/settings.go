package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/namechange/internal/audio"
	"github.com/handiism/namechange/internal/model"
	"github.com/handiism/namechange/internal/rename"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g. NAMECHANGE_SEPARATORS.
const EnvPrefix = "NAMECHANGE"

// Settings holds all configuration options.
type Settings struct {
	// Rename settings
	Artist           string   `mapstructure:"artist" json:"artist"`
	Separators       string   `mapstructure:"separators" json:"separators"`
	Format           []string `mapstructure:"format" json:"format"`
	NewFormat        []string `mapstructure:"new_format" json:"new_format"`
	RemoveUnderscore bool     `mapstructure:"remove_underscore" json:"remove_underscore"`
	MakeLower        bool     `mapstructure:"make_lower" json:"make_lower"`

	// Batch settings
	Workers   int  `mapstructure:"workers" json:"workers"`
	AssumeYes bool `mapstructure:"assume_yes" json:"assume_yes"`
	DryRun    bool `mapstructure:"dry_run" json:"dry_run"`
	Verbose   bool `mapstructure:"verbose" json:"verbose"`

	// Tag settings
	ITunes          bool     `mapstructure:"itunes" json:"itunes"`
	TagSeparators   string   `mapstructure:"tag_separators" json:"tag_separators"`
	Genre           string   `mapstructure:"genre" json:"genre"`
	Comment         string   `mapstructure:"comment" json:"comment"`
	EmbedCover      bool     `mapstructure:"embed_cover" json:"embed_cover"`
	CoverFileNames  []string `mapstructure:"cover_file_names" json:"cover_file_names"`
	CoverMaxSize    int      `mapstructure:"cover_max_size" json:"cover_max_size"`
	ConvertCoverJPG bool     `mapstructure:"convert_cover_jpg" json:"convert_cover_jpg"`

	// Playlist settings
	CreatePlaylist bool   `mapstructure:"create_playlist" json:"create_playlist"`
	PlaylistFormat string `mapstructure:"playlist_format" json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `mapstructure:"m3u_extended" json:"m3u_extended"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Separators: "-",
		Format:     []string{"artist", "number", "title"},

		Workers: 4,

		TagSeparators:   "-",
		CoverFileNames:  []string{"cover.jpg", "folder.jpg", "cover.png", "folder.png"},
		CoverMaxSize:    500,
		ConvertCoverJPG: true,

		PlaylistFormat: "m3u",
		M3UExtended:    true,
	}
}

// DefaultPath returns ~/.namechange/config.json.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".namechange", "config.json"), nil
}

// Load reads settings from path, on top of the defaults.
//
// The file type follows the extension (json, yaml, toml). A missing file is
// not an error. Environment variables with the NAMECHANGE_ prefix override
// values from the file.
func Load(path string) (*Settings, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	settings := DefaultSettings()
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return settings, nil
}

// Save writes settings to path, creating parent directories.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	v := viper.New()
	for key, value := range s.values() {
		v.Set(key, value)
	}
	return v.WriteConfigAs(path)
}

// Validate reports settings that cannot be used.
func (s *Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if _, ok := model.ParsePlaylistFormat(s.PlaylistFormat); !ok {
		return fmt.Errorf("invalid playlist format: %s", s.PlaylistFormat)
	}
	if len(s.Format) == 0 {
		return errors.New("format is empty")
	}
	return nil
}

// RenameOptions parses the format settings into rename options.
func (s *Settings) RenameOptions() (rename.Options, error) {
	format, err := model.ParseFormat(s.Format)
	if err != nil {
		return rename.Options{}, fmt.Errorf("format: %w", err)
	}
	newFormat, err := model.ParseFormat(s.NewFormat)
	if err != nil {
		return rename.Options{}, fmt.Errorf("new format: %w", err)
	}

	return rename.Options{
		Artist:           s.Artist,
		Format:           format,
		NewFormat:        newFormat,
		Separators:       s.Separators,
		RemoveUnderscore: s.RemoveUnderscore,
		MakeLower:        s.MakeLower,
	}, nil
}

// ToTagSource converts settings to the tagger's metadata source.
func (s *Settings) ToTagSource() audio.TagSource {
	return audio.TagSource{
		ITunes:     s.ITunes,
		Separators: s.TagSeparators,
		Genre:      s.Genre,
		Comment:    s.Comment,
	}
}

// ToPlaylistFormat returns the configured playlist format, M3U when unknown.
func (s *Settings) ToPlaylistFormat() model.PlaylistFormat {
	pf, _ := model.ParsePlaylistFormat(s.PlaylistFormat)
	return pf
}

func (s *Settings) values() map[string]any {
	return map[string]any{
		"artist":            s.Artist,
		"separators":        s.Separators,
		"format":            s.Format,
		"new_format":        s.NewFormat,
		"remove_underscore": s.RemoveUnderscore,
		"make_lower":        s.MakeLower,
		"workers":           s.Workers,
		"assume_yes":        s.AssumeYes,
		"dry_run":           s.DryRun,
		"verbose":           s.Verbose,
		"itunes":            s.ITunes,
		"tag_separators":    s.TagSeparators,
		"genre":             s.Genre,
		"comment":           s.Comment,
		"embed_cover":       s.EmbedCover,
		"cover_file_names":  s.CoverFileNames,
		"cover_max_size":    s.CoverMaxSize,
		"convert_cover_jpg": s.ConvertCoverJPG,
		"create_playlist":   s.CreatePlaylist,
		"playlist_format":   s.PlaylistFormat,
		"m3u_extended":      s.M3UExtended,
	}
}

// newViper returns a viper instance with every settings key bound to its
// environment variable, so overrides apply even without a config file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key := range DefaultSettings().values() {
		_ = v.BindEnv(key)
	}
	return v
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

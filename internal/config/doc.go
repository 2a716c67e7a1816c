// Package config provides configuration management for namechange.
//
// This package handles:
//   - Default settings for renaming, tagging and playlists
//   - Loading settings with viper (JSON, YAML or TOML by extension)
//   - Environment overrides with the NAMECHANGE_ prefix
//   - Conversion to rename.Options and audio.TagSource
//
// # Loading from File
//
//	path, _ := config.DefaultPath() // ~/.namechange/config.json
//	settings, err := config.Load(path)
//	// A missing file yields the defaults
//
// # Saving Settings
//
//	settings.Separators = "-_"
//	err := settings.Save(path)
//
// # Environment
//
//	NAMECHANGE_SEPARATORS="_" namechange rename ./album artist number title
package config

// Package config loads the tool-level settings that seed CLI defaults.
// Settings come from built-in defaults merged with an optional TOML
// file in the user's config directory.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/editorconfig/pkg/errors"
	"github.com/arthur-debert/editorconfig/pkg/resolver"
)

// Settings are the user-tunable CLI defaults.
type Settings struct {
	// ConfigFileName is the config file name looked up at each
	// directory level.
	ConfigFileName string `koanf:"config_file_name"`

	// Verbosity is the default log verbosity (0 = warnings only).
	Verbosity int `koanf:"verbosity"`

	// Table renders resolved properties as a styled table instead of
	// key=value lines.
	Table bool `koanf:"table"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"config_file_name": resolver.DefaultConfigFileName,
		"verbosity":        0,
		"table":            false,
	}
}

// Path returns the location of the user settings file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "editorconfig", "config.toml")
}

// Load merges built-in defaults with the user settings file, when one
// exists. A missing file is not an error.
func Load() (*Settings, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "loading default settings")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrSettingsLoad, "loading settings from %s", path).
				WithDetail("path", path)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrSettingsLoad, "unmarshaling settings")
	}
	return &s, nil
}

package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
)

// Render formats accepted by the render command and config file.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// Config holds user defaults read from config.toml. Command-line flags take
// precedence over every field.
//
//	verbose = true
//
//	[render]
//	format = "dot"
//	detailed = true
type Config struct {
	Verbose bool         `toml:"verbose"`
	Render  RenderConfig `toml:"render"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
}

func defaultConfig() Config {
	return Config{Render: RenderConfig{Format: formatSVG}}
}

// configFile returns the config path using the XDG standard
// (~/.config/spacegraph/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// readConfig decodes the config file at path on top of the defaults.
// A missing file yields the defaults unless required is set.
func readConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return cfg, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return defaultConfig(), nil
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "config file %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, apperrors.New(apperrors.ErrCodeInvalidFormat, "config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Render.Format = strings.ToLower(cfg.Render.Format)
	if err := apperrors.ValidateFormat(cfg.Render.Format, formatDOT, formatSVG); err != nil {
		return cfg, err
	}
	return cfg, nil
}

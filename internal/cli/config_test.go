package cli

import (
	"path/filepath"
	"testing"

	apperrors "github.com/matzehuels/spacegraph/pkg/errors"
)

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		code    apperrors.Code
	}{
		{
			name:    "full",
			content: "verbose = true\n[render]\nformat = \"dot\"\ndetailed = true\n",
			want:    Config{Verbose: true, Render: RenderConfig{Format: formatDOT, Detailed: true}},
		},
		{
			name:    "partial keeps defaults",
			content: "[render]\ndetailed = true\n",
			want:    Config{Render: RenderConfig{Format: formatSVG, Detailed: true}},
		},
		{
			name:    "format is case-insensitive",
			content: "[render]\nformat = \"SVG\"\n",
			want:    Config{Render: RenderConfig{Format: formatSVG}},
		},
		{
			name:    "unknown key",
			content: "[render]\nwidth = 800\n",
			code:    apperrors.ErrCodeInvalidFormat,
		},
		{
			name:    "bad format",
			content: "[render]\nformat = \"png\"\n",
			code:    apperrors.ErrCodeInvalidFormat,
		},
		{
			name:    "syntax error",
			content: "verbose = \n",
			code:    apperrors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.toml", tt.content)
			got, err := readConfig(path, true)
			if tt.code != "" {
				if !apperrors.Is(err, tt.code) {
					t.Errorf("readConfig() error = %v, want code %v", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("readConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("readConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	got, err := readConfig(path, false)
	if err != nil {
		t.Fatalf("readConfig() optional error = %v", err)
	}
	if got != defaultConfig() {
		t.Errorf("readConfig() = %+v, want defaults", got)
	}

	if _, err := readConfig(path, true); !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("readConfig() required error = %v, want code %v", err, apperrors.ErrCodeFileNotFound)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := configFile()
	if err != nil {
		t.Fatalf("configFile() error = %v", err)
	}
	if want := filepath.Join(dir, appName, "config.toml"); got != want {
		t.Errorf("configFile() = %q, want %q", got, want)
	}
}

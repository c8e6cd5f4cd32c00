package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are per-user preferences stored as TOML, separate from the
// shipped game tuning.
type Settings struct {
	Volume      float64 `toml:"volume"` // 0..1
	Muted       bool    `toml:"muted"`
	Scale       int     `toml:"scale"`
	SaveFile    string  `toml:"save_file"`
	TerminalFPS int     `toml:"terminal_fps"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Volume:      0.8,
		Scale:       2,
		SaveFile:    "runway_save.json",
		TerminalFPS: 30,
	}
}

// DefaultSettingsPath returns ~/.config/runway/settings.toml
func DefaultSettingsPath() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "settings.toml"
	}
	return filepath.Join(h, ".config", "runway", "settings.toml")
}

// LoadSettings reads settings from path. A missing file yields defaults.
// Fields absent from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.clamp()
	return s, nil
}

// SaveSettings writes settings to path, creating parent directories.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}

// ToggleMute flips Muted and writes the settings back to path. Muted is
// flipped even when the write fails.
func (s *Settings) ToggleMute(path string) error {
	s.Muted = !s.Muted
	return SaveSettings(path, *s)
}

func (s *Settings) clamp() {
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 1 {
		s.Volume = 1
	}
	if s.Scale < 1 {
		s.Scale = 1
	}
	if s.TerminalFPS <= 0 {
		s.TerminalFPS = DefaultSettings().TerminalFPS
	}
}

// Package config provides JSON-based settings for the analyzer.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ic-analyzer/internal/dataset"
)

const settingsFile = "settings.json"

// Settings holds the analyzer defaults. Command-line flags override
// individual fields at startup.
type Settings struct {
	DataDir    string `json:"data_dir"`
	FilePrefix string `json:"file_prefix"`
	FileSuffix string `json:"file_suffix"`
	PlotPath   string `json:"plot_path"`
	ExportPath string `json:"export_path"`
	ShowWindow bool   `json:"show_window"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		DataDir:    ".",
		FilePrefix: dataset.DefaultPrefix,
		FileSuffix: dataset.DefaultSuffix,
		PlotPath:   "ic_vs_field.png",
		ExportPath: "",
		ShowWindow: true,
	}
}

// Load reads settings from ~/.config/ic-analyzer/settings.json.
// Returns the defaults if the file doesn't exist; keys absent from the file
// keep their default values.
func Load() Settings {
	return loadFrom(settingsPath())
}

func loadFrom(path string) Settings {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	_ = json.Unmarshal(data, &s)
	return s
}

// Save writes the settings to disk, creating the config directory.
func (s Settings) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	path := settingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func settingsPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, "ic-analyzer", settingsFile)
}

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"stoicfocus/internal/ui/preferences"
	"stoicfocus/internal/validate"
)

const settingsFileName = "settings.yaml"

// ErrInvalidSettings wraps validation failures of the settings file.
var ErrInvalidSettings = errors.New("invalid settings")

type yamlSettings struct {
	FocusMinutes int      `yaml:"focus_minutes" validate:"gte=0,lte=600"`
	BreakMinutes int      `yaml:"break_minutes" validate:"gte=0,lte=600"`
	Intervals    int      `yaml:"intervals" validate:"gte=0,lte=100"`
	QuotesPath   string   `yaml:"quotes_path"`
	Volume       *float64 `yaml:"volume" validate:"omitempty,gte=0,lte=1"`
	RingRadius   float64  `yaml:"ring_radius" validate:"gte=0,lte=1000"`
	LogLevel     string   `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn warning error"`
}

// LoadSettings reads user preferences from the per-user config directory.
// If the file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath, true)
}

// LoadSettingsFile reads preferences from path. A missing file yields
// defaults when optional is set.
func LoadSettingsFile(path string, optional bool) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	if err := validate.Struct(fileData); err != nil {
		return settings, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, path, err)
	}

	applyYamlSettings(&settings, fileData, filepath.Dir(path))
	return settings, nil
}

// ResolveConfigPath returns <UserConfigDir>/<appName>/settings.yaml.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings, baseDir string) {
	if fileData.FocusMinutes > 0 {
		settings.Timer.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.BreakMinutes > 0 {
		settings.Timer.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.Intervals > 0 {
		settings.Timer.Intervals = fileData.Intervals
	}
	if fileData.RingRadius > 0 {
		settings.RingRadius = fileData.RingRadius
	}
	if fileData.Volume != nil {
		settings.Volume = *fileData.Volume
	}
	if fileData.QuotesPath != "" {
		settings.QuotesPath = expandPath(fileData.QuotesPath, baseDir)
	}
	settings.LogLevel = fileData.LogLevel
}

func expandPath(path, baseDir string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return path
}

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stoicfocus/internal/core/model"
	"stoicfocus/internal/ui/preferences"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsFile_MissingOptionalYieldsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestLoadSettingsFile_MissingRequiredFails(t *testing.T) {
	t.Parallel()

	_, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSettingsFile_AppliesValues(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
focus_minutes: 50
break_minutes: 10
intervals: 3
quotes_path: quotes.yaml
volume: 0
ring_radius: 90
log_level: debug
`)

	settings, err := LoadSettingsFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, model.Settings{FocusMinutes: 50, BreakMinutes: 10, Intervals: 3}, settings.Timer)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "quotes.yaml"), settings.QuotesPath)
	assert.InDelta(t, 0.0, settings.Volume, 1e-9)
	assert.InDelta(t, 90.0, settings.RingRadius, 1e-9)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestLoadSettingsFile_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, "break_minutes: 15\n")
	settings, err := LoadSettingsFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, 25, settings.Timer.FocusMinutes)
	assert.Equal(t, 15, settings.Timer.BreakMinutes)
	assert.InDelta(t, 1.0, settings.Volume, 1e-9)
	assert.Empty(t, settings.QuotesPath)
}

func TestLoadSettingsFile_AbsoluteQuotesPathKept(t *testing.T) {
	t.Parallel()

	quotes := filepath.Join(t.TempDir(), "mine.json")
	path := writeSettings(t, "quotes_path: "+quotes+"\n")
	settings, err := LoadSettingsFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, quotes, settings.QuotesPath)
}

func TestLoadSettingsFile_Invalid(t *testing.T) {
	t.Parallel()

	for name, content := range map[string]string{
		"negative focus": "focus_minutes: -5\n",
		"loud volume":    "volume: 2\n",
		"bad level":      "log_level: chatty\n",
	} {
		name, content := name, content
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadSettingsFile(writeSettings(t, content), false)
			require.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestLoadSettingsFile_Malformed(t *testing.T) {
	t.Parallel()

	_, err := LoadSettingsFile(writeSettings(t, "focus_minutes: [\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
}

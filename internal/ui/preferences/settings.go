package preferences

import (
	"stoicfocus/internal/core/model"
	"stoicfocus/internal/ui/ring"
)

// Settings defines the startup preferences of the application.
type Settings struct {
	Timer model.Settings

	// QuotesPath points at a JSON or YAML quote list; empty uses the bundled list.
	QuotesPath string
	Volume     float64
	RingRadius float64
	LogLevel   string
}

// DefaultSettings returns default settings for Stoic Focus.
func DefaultSettings() Settings {
	return Settings{
		Timer:      model.DefaultSettings(),
		Volume:     1,
		RingRadius: ring.DefaultRadius,
	}
}

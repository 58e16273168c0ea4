package terminal

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"stoicfocus/internal/core/clock"
	"stoicfocus/internal/core/model"
	"stoicfocus/internal/core/timekeeper"
)

func TestModel_DrivesTimeKeeper(t *testing.T) {
	logger, _ := test.NewNullLogger()
	manual := clock.NewManual()
	screen := NewScreen(model.DefaultSettings())
	keeper := timekeeper.New(screen, screen, timekeeper.Options{Scheduler: manual, Logger: logger})
	t.Cleanup(keeper.Close)
	m := NewModel(screen, keeper)

	m = press(t, m, "tab", "backspace", "backspace", "1", "enter")
	assert.Equal(t, "1:00", screen.Snapshot().TimeText)

	m = press(t, m, "space")
	manual.Advance(time.Second)
	assert.Equal(t, "0:59", screen.Snapshot().TimeText)
	assert.False(t, screen.Snapshot().InputsEnabled)

	manual.Advance(59 * time.Second)
	view := screen.Snapshot()
	assert.Equal(t, "1:00", view.TimeText)
	assert.Equal(t, timekeeper.IconPlay, view.Icon)
	assert.Equal(t, model.FallbackQuote, *view.Quote)

	press(t, m, "esc")
	assert.Nil(t, screen.Snapshot().Quote)
}

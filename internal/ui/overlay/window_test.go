package overlay

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"stoicfocus/internal/core/model"
)

func TestWindow_ShowHide(t *testing.T) {
	app := test.NewTempApp(t)

	overlay := New(app, DefaultConfig())
	closed := 0
	overlay.SetOnClose(func() { closed++ })

	overlay.Show(model.FallbackQuote)
	assert.True(t, overlay.Visible())
	assert.Equal(t, `"Focus on the present moment."`, overlay.QuoteText())
	assert.Equal(t, "Stoic Wisdom", overlay.Author())

	test.Tap(overlay.closeButton)
	assert.Equal(t, 1, closed)

	overlay.Hide()
	assert.False(t, overlay.Visible())
}

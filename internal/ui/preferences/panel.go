package preferences

import (
	"strconv"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stoicfocus/internal/core/model"
)

// Panel is the collapsible settings form of the main window.
type Panel struct {
	mu        sync.Mutex
	raw       model.RawSettings
	onChanged func()

	content   *fyne.Container
	focus     *widget.Entry
	breakDur  *widget.Entry
	intervals *widget.Entry
}

// NewPanel creates the settings form pre-filled with settings. Must run on the UI goroutine.
func NewPanel(settings model.Settings) *Panel {
	panel := &Panel{raw: settings.Raw()}

	panel.focus = newNumberEntry(panel.raw.Focus)
	panel.breakDur = newNumberEntry(panel.raw.Break)
	panel.intervals = newNumberEntry(panel.raw.Intervals)

	panel.focus.OnChanged = func(text string) {
		panel.update(func(raw *model.RawSettings) { raw.Focus = text })
	}
	panel.breakDur.OnChanged = func(text string) {
		panel.update(func(raw *model.RawSettings) { raw.Break = text })
	}
	panel.intervals.OnChanged = func(text string) {
		panel.update(func(raw *model.RawSettings) { raw.Intervals = text })
	}

	form := widget.NewForm(
		widget.NewFormItem("Focus (min)", panel.focus),
		widget.NewFormItem("Break (min)", panel.breakDur),
		widget.NewFormItem("Intervals", panel.intervals),
	)
	panel.content = container.NewPadded(form)
	panel.content.Hide()
	return panel
}

// Content returns the panel widget tree.
func (panel *Panel) Content() fyne.CanvasObject {
	return panel.content
}

// SetOnChanged registers the handler fired after every edit.
func (panel *Panel) SetOnChanged(handler func()) {
	panel.mu.Lock()
	defer panel.mu.Unlock()
	panel.onChanged = handler
}

// RawSettings returns the field texts. Safe from any goroutine.
func (panel *Panel) RawSettings() model.RawSettings {
	panel.mu.Lock()
	defer panel.mu.Unlock()
	return panel.raw
}

// SetEnabled locks or unlocks all fields.
func (panel *Panel) SetEnabled(enabled bool) {
	for _, entry := range []*widget.Entry{panel.focus, panel.breakDur, panel.intervals} {
		if enabled {
			entry.Enable()
		} else {
			entry.Disable()
		}
	}
}

// Toggle expands or collapses the panel.
func (panel *Panel) Toggle() {
	if panel.content.Visible() {
		panel.content.Hide()
		return
	}
	panel.content.Show()
}

// Collapse hides the panel.
func (panel *Panel) Collapse() {
	panel.content.Hide()
}

func (panel *Panel) update(apply func(*model.RawSettings)) {
	panel.mu.Lock()
	apply(&panel.raw)
	handler := panel.onChanged
	panel.mu.Unlock()

	if handler != nil {
		handler()
	}
}

func newNumberEntry(text string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText(text)
	entry.Validator = func(value string) error {
		_, err := strconv.Atoi(value)
		return err
	}
	return entry
}

// Package terminal renders the focus timer with Bubble Tea.
package terminal

import (
	"sync"

	"stoicfocus/internal/core/model"
	"stoicfocus/internal/core/timekeeper"
)

// Screen is the terminal presenter. Setters only record state and wake the
// Bubble Tea loop, so they are safe to call from the tick goroutine.
type Screen struct {
	mu            sync.Mutex
	timeText      string
	progress      float64
	phase         timekeeper.Phase
	icon          timekeeper.IconState
	inputsEnabled bool
	quote         *model.Quote
	raw           model.RawSettings
	notify        chan struct{}
	done          chan struct{}
	closeOnce     sync.Once
}

// View is a consistent copy of the screen state.
type View struct {
	TimeText      string
	Progress      float64
	Phase         timekeeper.Phase
	Icon          timekeeper.IconState
	InputsEnabled bool
	Quote         *model.Quote
	Raw           model.RawSettings
}

// NewScreen creates a screen whose settings fields start at settings.
func NewScreen(settings model.Settings) *Screen {
	return &Screen{
		timeText:      timekeeper.FormatClock(settings.FocusMinutes * 60),
		progress:      1,
		phase:         timekeeper.PhaseFocus,
		inputsEnabled: true,
		raw:           settings.Raw(),
		notify:        make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
}

// SetTimeText implements timekeeper.Presenter.
func (screen *Screen) SetTimeText(text string) {
	screen.update(func() { screen.timeText = text })
}

// SetProgress implements timekeeper.Presenter.
func (screen *Screen) SetProgress(ratio float64) {
	screen.update(func() { screen.progress = ratio })
}

// SetPhaseLabel implements timekeeper.Presenter.
func (screen *Screen) SetPhaseLabel(phase timekeeper.Phase) {
	screen.update(func() { screen.phase = phase })
}

// SetIconState implements timekeeper.Presenter.
func (screen *Screen) SetIconState(state timekeeper.IconState) {
	screen.update(func() { screen.icon = state })
}

// SetInputsEnabled implements timekeeper.Presenter.
func (screen *Screen) SetInputsEnabled(enabled bool) {
	screen.update(func() { screen.inputsEnabled = enabled })
}

// ShowQuote implements timekeeper.Presenter.
func (screen *Screen) ShowQuote(quote model.Quote) {
	screen.update(func() { screen.quote = &quote })
}

// HideQuote implements timekeeper.Presenter.
func (screen *Screen) HideQuote() {
	screen.update(func() { screen.quote = nil })
}

// RawSettings implements timekeeper.InputSource.
func (screen *Screen) RawSettings() model.RawSettings {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	return screen.raw
}

// SetRawSettings stores edited field texts.
func (screen *Screen) SetRawSettings(raw model.RawSettings) {
	screen.update(func() { screen.raw = raw })
}

// Snapshot returns the current view state.
func (screen *Screen) Snapshot() View {
	screen.mu.Lock()
	defer screen.mu.Unlock()
	view := View{
		TimeText:      screen.timeText,
		Progress:      screen.progress,
		Phase:         screen.phase,
		Icon:          screen.icon,
		InputsEnabled: screen.inputsEnabled,
		Raw:           screen.raw,
	}
	if screen.quote != nil {
		quote := *screen.quote
		view.Quote = &quote
	}
	return view
}

// Changed delivers a value after any setter ran. Wakeups coalesce.
func (screen *Screen) Changed() <-chan struct{} {
	return screen.notify
}

// Done is closed by Close.
func (screen *Screen) Done() <-chan struct{} {
	return screen.done
}

// Close releases anything waiting on Changed.
func (screen *Screen) Close() {
	screen.closeOnce.Do(func() { close(screen.done) })
}

func (screen *Screen) update(apply func()) {
	screen.mu.Lock()
	apply()
	screen.mu.Unlock()
	select {
	case screen.notify <- struct{}{}:
	default:
	}
}

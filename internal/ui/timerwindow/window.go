// Package timerwindow is the Fyne rendering of the focus timer.
package timerwindow

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"stoicfocus/internal/core/model"
	"stoicfocus/internal/core/timekeeper"
	"stoicfocus/internal/ui/overlay"
	"stoicfocus/internal/ui/preferences"
	"stoicfocus/internal/ui/ring"
)

const titleFade = 600 * time.Millisecond

var (
	focusStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	breakStroke = color.NRGBA{R: 134, G: 196, B: 150, A: 255}
	trackColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	titleColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
)

// Callbacks defines the user actions of the main window.
type Callbacks struct {
	OnToggle       func()
	OnReset        func()
	OnInputChanged func()
	OnDismissQuote func()
}

// Window is the main timer window. It implements timekeeper.Presenter.
type Window struct {
	window    fyne.Window
	ring      ring.Ring
	panel     *preferences.Panel
	overlay   *overlay.Window
	callbacks Callbacks

	mu       sync.Mutex
	progress float64
	stroke   color.Color

	raster         *canvas.Raster
	title          *canvas.Text
	phaseLabel     *canvas.Text
	timeText       *canvas.Text
	startButton    *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
	titleAnimation *fyne.Animation
}

// New builds the main window. Must run on the UI goroutine.
func New(app fyne.App, settings preferences.Settings) *Window {
	window := app.NewWindow("Stoic Focus")
	window.SetFixedSize(true)

	view := &Window{
		window:   window,
		ring:     ring.New(settings.RingRadius),
		panel:    preferences.NewPanel(settings.Timer),
		overlay:  overlay.New(app, overlay.DefaultConfig()),
		progress: 1,
		stroke:   focusStroke,
	}

	view.title = canvas.NewText("Stoic Focus", titleColor)
	view.title.Alignment = fyne.TextAlignCenter
	view.title.TextStyle = fyne.TextStyle{Bold: true}
	view.title.TextSize = 18

	view.phaseLabel = canvas.NewText(timekeeper.PhaseFocus.Label(), theme.Color(theme.ColorNameForeground))
	view.phaseLabel.Alignment = fyne.TextAlignCenter
	view.phaseLabel.TextSize = 15

	view.timeText = canvas.NewText(timekeeper.FormatClock(settings.Timer.FocusMinutes*60), theme.Color(theme.ColorNameForeground))
	view.timeText.Alignment = fyne.TextAlignCenter
	view.timeText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	view.timeText.TextSize = 48

	view.raster = canvas.NewRasterWithPixels(view.pixel)
	side := float32(2 * (view.ring.Radius + view.ring.Stroke))
	view.raster.SetMinSize(fyne.NewSize(side, side))

	view.startButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		if view.callbacks.OnToggle != nil {
			view.callbacks.OnToggle()
		}
	})
	view.startButton.Importance = widget.HighImportance
	view.resetButton = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), func() {
		if view.callbacks.OnReset != nil {
			view.callbacks.OnReset()
		}
	})
	view.settingsButton = widget.NewButtonWithIcon("", theme.SettingsIcon(), view.panel.Toggle)

	view.panel.SetOnChanged(func() {
		if view.callbacks.OnInputChanged != nil {
			view.callbacks.OnInputChanged()
		}
	})
	view.overlay.SetOnClose(func() {
		if view.callbacks.OnDismissQuote != nil {
			view.callbacks.OnDismissQuote()
		}
	})

	dial := container.NewStack(view.raster, container.NewCenter(view.timeText))
	controls := container.NewCenter(container.NewHBox(view.settingsButton, view.startButton, view.resetButton))
	content := container.NewVBox(
		view.title,
		view.phaseLabel,
		container.NewCenter(dial),
		controls,
		view.panel.Content(),
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(400, 600))
	return view
}

// SetCallbacks wires user actions.
func (view *Window) SetCallbacks(callbacks Callbacks) {
	view.callbacks = callbacks
}

// Inputs exposes the settings fields.
func (view *Window) Inputs() timekeeper.InputSource {
	return view.panel
}

// Window returns the underlying Fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// SetTimeText implements timekeeper.Presenter.
func (view *Window) SetTimeText(text string) {
	fyne.Do(func() {
		view.timeText.Text = text
		view.timeText.Refresh()
	})
}

// SetProgress implements timekeeper.Presenter.
func (view *Window) SetProgress(ratio float64) {
	view.mu.Lock()
	view.progress = ratio
	view.mu.Unlock()
	fyne.Do(view.raster.Refresh)
}

// SetPhaseLabel implements timekeeper.Presenter.
func (view *Window) SetPhaseLabel(phase timekeeper.Phase) {
	view.mu.Lock()
	view.stroke = strokeFor(phase)
	view.mu.Unlock()
	fyne.Do(func() {
		view.phaseLabel.Text = phase.Label()
		view.phaseLabel.Refresh()
		view.raster.Refresh()
	})
}

// SetIconState implements timekeeper.Presenter. Starting collapses the settings panel.
func (view *Window) SetIconState(state timekeeper.IconState) {
	fyne.Do(func() {
		if state == timekeeper.IconPause {
			view.panel.Collapse()
			view.startButton.SetIcon(theme.MediaPauseIcon())
			view.fadeTitle(titleColor, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
			return
		}
		view.startButton.SetIcon(theme.MediaPlayIcon())
		view.fadeTitle(view.title.Color, titleColor)
	})
}

// SetInputsEnabled implements timekeeper.Presenter.
func (view *Window) SetInputsEnabled(enabled bool) {
	fyne.Do(func() {
		view.panel.SetEnabled(enabled)
	})
}

// ShowQuote implements timekeeper.Presenter.
func (view *Window) ShowQuote(quote model.Quote) {
	fyne.Do(func() {
		view.overlay.Show(quote)
	})
}

// HideQuote implements timekeeper.Presenter.
func (view *Window) HideQuote() {
	fyne.Do(view.overlay.Hide)
}

func (view *Window) pixel(x, y, width, height int) color.Color {
	view.mu.Lock()
	progress := view.progress
	stroke := view.stroke
	view.mu.Unlock()
	return view.ring.Pixel(x, y, width, height, progress, stroke, trackColor)
}

func (view *Window) fadeTitle(from, to color.Color) {
	if view.titleAnimation != nil {
		view.titleAnimation.Stop()
	}
	view.titleAnimation = canvas.NewColorRGBAAnimation(from, to, titleFade, func(value color.Color) {
		view.title.Color = value
		view.title.Refresh()
	})
	view.titleAnimation.Start()
}

func strokeFor(phase timekeeper.Phase) color.Color {
	if phase == timekeeper.PhaseBreak {
		return breakStroke
	}
	return focusStroke
}

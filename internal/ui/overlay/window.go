package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"stoicfocus/internal/core/model"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
	Size    fyne.Size
}

// DefaultConfig sizes the overlay like the main window dial.
func DefaultConfig() Config {
	return Config{
		Opacity: 230,
		Size:    fyne.NewSize(360, 260),
	}
}

// Window shows the completion quote.
type Window struct {
	window      fyne.Window
	config      Config
	background  *canvas.Rectangle
	quoteLabel  *widget.Label
	authorLabel *canvas.Text
	closeButton *widget.Button
	visible     bool
	onClose     func()
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the overlay window. Must run on the UI goroutine.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("Stoic Focus")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 12, G: 12, B: 14, A: config.Opacity})
	background.CornerRadius = 18

	quoteLabel := widget.NewLabel("")
	quoteLabel.Wrapping = fyne.TextWrapWord
	quoteLabel.Alignment = fyne.TextAlignCenter
	quoteLabel.TextStyle = fyne.TextStyle{Italic: true}

	authorLabel := canvas.NewText("", color.NRGBA{R: 200, G: 200, B: 200, A: 255})
	authorLabel.Alignment = fyne.TextAlignCenter
	authorLabel.TextSize = 13

	closeButton := widget.NewButton("Close", nil)

	content := container.NewBorder(
		nil,
		container.NewVBox(authorLabel, container.NewCenter(closeButton)),
		nil,
		nil,
		container.New(layout.NewCustomPaddedLayout(24, 8, 24, 24), container.NewCenter(quoteLabel)),
	)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))

	overlay := &Window{
		window:      window,
		config:      config,
		background:  background,
		quoteLabel:  quoteLabel,
		authorLabel: authorLabel,
		closeButton: closeButton,
	}
	closeButton.OnTapped = func() {
		if overlay.onClose != nil {
			overlay.onClose()
		}
	}
	window.SetCloseIntercept(closeButton.OnTapped)
	return overlay
}

// SetOnClose sets the handler for the Close button.
func (overlay *Window) SetOnClose(handler func()) {
	overlay.onClose = handler
}

// Show displays quote. Must run on the UI goroutine.
func (overlay *Window) Show(quote model.Quote) {
	overlay.quoteLabel.SetText(`"` + quote.Text + `"`)
	overlay.authorLabel.Text = quote.Author
	overlay.authorLabel.Refresh()

	overlay.window.Resize(overlay.config.Size)
	overlay.window.CenterOnScreen()
	overlay.window.Show()
	overlay.window.RequestFocus()
	overlay.visible = true
}

// Hide closes the overlay. Must run on the UI goroutine.
func (overlay *Window) Hide() {
	overlay.window.Hide()
	overlay.visible = false
}

// Visible reports whether a quote is on screen.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// QuoteText returns the rendered quote line.
func (overlay *Window) QuoteText() string {
	return overlay.quoteLabel.Text
}

// Author returns the rendered author line.
func (overlay *Window) Author() string {
	return overlay.authorLabel.Text
}

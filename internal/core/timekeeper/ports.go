package timekeeper

import "stoicfocus/internal/core/model"

// Presenter renders timer effects. Implementations must not call back into
// the TimeKeeper synchronously.
type Presenter interface {
	SetTimeText(text string)
	SetProgress(ratio float64)
	SetPhaseLabel(phase Phase)
	SetIconState(state IconState)
	SetInputsEnabled(enabled bool)
	ShowQuote(quote model.Quote)
	HideQuote()
}

// InputSource exposes the current settings fields.
type InputSource interface {
	RawSettings() model.RawSettings
}

// Chime plays the completion sound.
type Chime interface {
	// Prepare acquires or resumes the audio output.
	Prepare() error
	// Play starts the chime and returns immediately.
	Play()
}

// QuoteSource draws a random quote.
type QuoteSource interface {
	Random() (model.Quote, error)
}

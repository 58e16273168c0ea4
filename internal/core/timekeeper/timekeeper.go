package timekeeper

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"stoicfocus/internal/core/clock"
	"stoicfocus/internal/core/model"
)

// Options contains the collaborators of a TimeKeeper.
type Options struct {
	TickInterval time.Duration
	Scheduler    clock.Scheduler
	Chime        Chime
	Quotes       QuoteSource
	Logger       logrus.FieldLogger
}

// TimeKeeper is the focus timer state machine.
type TimeKeeper struct {
	mu        sync.Mutex
	options   Options
	presenter Presenter
	inputs    InputSource
	logger    logrus.FieldLogger

	running         bool
	isBreak         bool
	timeLeft        int
	total           int
	currentInterval int
	quoteVisible    bool

	ticker      clock.Ticker
	generation  uint64
	chimeFailed bool
	closed      bool
	events      []chan Event
}

// New creates a TimeKeeper and renders the initial focus countdown.
func New(presenter Presenter, inputs InputSource, options Options) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Scheduler == nil {
		options.Scheduler = clock.System
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}

	keeper := &TimeKeeper{
		options:         options,
		presenter:       presenter,
		inputs:          inputs,
		logger:          options.Logger.WithField("component", "timekeeper"),
		timeLeft:        model.DefaultFocusMinutes * 60,
		total:           model.DefaultFocusMinutes * 60,
		currentInterval: 1,
	}

	keeper.mu.Lock()
	keeper.presenter.SetPhaseLabel(PhaseFocus)
	keeper.presenter.SetIconState(IconPlay)
	keeper.presenter.SetInputsEnabled(true)
	keeper.updateSettingsLocked()
	keeper.mu.Unlock()
	return keeper
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Toggle pauses a running countdown and starts an idle one.
func (keeper *TimeKeeper) Toggle() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running {
		keeper.pauseLocked()
	} else {
		keeper.startLocked()
	}
}

// Start begins ticking once per TickInterval.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.startLocked()
}

// Pause stops ticking and unlocks the settings inputs.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.pauseLocked()
}

// Reset returns to a fresh focus phase.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}
	keeper.pauseLocked()
	keeper.isBreak = false
	keeper.currentInterval = 1
	keeper.presenter.SetPhaseLabel(PhaseFocus)
	keeper.updateSettingsLocked()
	keeper.emitLocked(EventStateChange)
}

// UpdateSettings re-reads the focus duration. Ignored while running.
func (keeper *TimeKeeper) UpdateSettings() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.updateSettingsLocked() {
		keeper.emitLocked(EventStateChange)
	}
}

// InputChanged re-reads the duration of the active phase. Ignored while running.
func (keeper *TimeKeeper) InputChanged() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.running || keeper.closed {
		return
	}

	settings := keeper.inputs.RawSettings().Parse()
	minutes := settings.FocusMinutes
	if keeper.isBreak {
		minutes = settings.BreakMinutes
	}
	keeper.restartCountdownLocked(minutes)
	keeper.emitLocked(EventStateChange)
}

// DismissQuote hides the completion quote.
func (keeper *TimeKeeper) DismissQuote() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.quoteVisible {
		return
	}
	keeper.quoteVisible = false
	keeper.presenter.HideQuote()
	keeper.emitLocked(EventQuoteHidden)
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() Snapshot {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Close stops ticking and closes observers.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.pauseLocked()
	keeper.closed = true
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) startLocked() {
	if keeper.running || keeper.closed {
		return
	}
	if keeper.options.Chime != nil {
		if err := keeper.options.Chime.Prepare(); err != nil {
			if !keeper.chimeFailed {
				keeper.logger.WithError(err).Warn("audio output unavailable, completion chime disabled")
			}
			keeper.chimeFailed = true
		} else {
			keeper.chimeFailed = false
		}
	}

	keeper.running = true
	keeper.presenter.SetIconState(IconPause)
	keeper.presenter.SetInputsEnabled(false)

	keeper.generation++
	generation := keeper.generation
	keeper.ticker = keeper.options.Scheduler.Every(keeper.options.TickInterval, func() {
		keeper.tick(generation)
	})

	keeper.logger.WithField("remaining", FormatClock(keeper.timeLeft)).Debug("countdown started")
	keeper.emitLocked(EventStateChange)
}

func (keeper *TimeKeeper) pauseLocked() {
	if !keeper.running {
		return
	}
	keeper.running = false
	keeper.generation++
	if keeper.ticker != nil {
		keeper.ticker.Stop()
		keeper.ticker = nil
	}
	keeper.presenter.SetIconState(IconPlay)
	keeper.presenter.SetInputsEnabled(true)

	keeper.logger.WithField("remaining", FormatClock(keeper.timeLeft)).Debug("countdown paused")
	keeper.emitLocked(EventStateChange)
}

func (keeper *TimeKeeper) tick(generation uint64) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running || generation != keeper.generation {
		return
	}

	keeper.timeLeft--
	keeper.presenter.SetTimeText(FormatClock(keeper.timeLeft))
	keeper.presenter.SetProgress(Ratio(keeper.timeLeft, keeper.total))

	if keeper.timeLeft <= 0 {
		keeper.completeLocked()
		return
	}
	keeper.emitLocked(EventTick)
}

func (keeper *TimeKeeper) completeLocked() {
	keeper.pauseLocked()
	if keeper.options.Chime != nil && !keeper.chimeFailed {
		keeper.options.Chime.Play()
	}

	quote := keeper.drawQuoteLocked()
	keeper.quoteVisible = true
	keeper.presenter.ShowQuote(quote)

	settings := keeper.inputs.RawSettings().Parse()
	keeper.isBreak = false
	keeper.presenter.SetPhaseLabel(PhaseFocus)
	keeper.restartCountdownLocked(settings.FocusMinutes)

	keeper.logger.WithField("author", quote.Author).Info("focus session complete")
	keeper.emitLocked(EventComplete, quote)
}

func (keeper *TimeKeeper) drawQuoteLocked() model.Quote {
	if keeper.options.Quotes == nil {
		return model.FallbackQuote
	}
	quote, err := keeper.options.Quotes.Random()
	if err != nil {
		keeper.logger.WithError(err).Warn("quote source unavailable, using fallback")
		return model.FallbackQuote
	}
	return quote
}

// updateSettingsLocked reports whether the countdown was re-derived.
func (keeper *TimeKeeper) updateSettingsLocked() bool {
	if keeper.running || keeper.closed {
		return false
	}
	settings := keeper.inputs.RawSettings().Parse()
	keeper.restartCountdownLocked(settings.FocusMinutes)
	return true
}

func (keeper *TimeKeeper) restartCountdownLocked(minutes int) {
	keeper.total = minutes * 60
	keeper.timeLeft = keeper.total
	keeper.presenter.SetTimeText(FormatClock(keeper.timeLeft))
	keeper.presenter.SetProgress(1)
}

func (keeper *TimeKeeper) phaseLocked() Phase {
	if keeper.isBreak {
		return PhaseBreak
	}
	return PhaseFocus
}

func (keeper *TimeKeeper) snapshotLocked() Snapshot {
	return Snapshot{
		Running:         keeper.running,
		Phase:           keeper.phaseLocked(),
		TimeLeft:        time.Duration(keeper.timeLeft) * time.Second,
		Total:           time.Duration(keeper.total) * time.Second,
		Progress:        Ratio(keeper.timeLeft, keeper.total),
		CurrentInterval: keeper.currentInterval,
		QuoteVisible:    keeper.quoteVisible,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, quote ...model.Quote) {
	event := Event{
		Type:     eventType,
		Snapshot: keeper.snapshotLocked(),
		At:       time.Now(),
	}
	if len(quote) > 0 {
		event.Quote = quote[0]
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}

package timekeeper

import (
	"time"

	"stoicfocus/internal/core/model"
)

// Phase is the active countdown kind.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Label returns the text shown above the clock.
func (phase Phase) Label() string {
	if phase == PhaseBreak {
		return "Break"
	}
	return "Focus"
}

// IconState selects the glyph on the start button.
type IconState int

const (
	IconPlay IconState = iota
	IconPause
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventComplete    EventType = "complete"
	EventQuoteHidden EventType = "quote_hidden"
)

// Snapshot is a copy of the timer state.
type Snapshot struct {
	Running         bool
	Phase           Phase
	TimeLeft        time.Duration
	Total           time.Duration
	Progress        float64
	CurrentInterval int
	QuoteVisible    bool
}

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	Quote    model.Quote
	At       time.Time
}

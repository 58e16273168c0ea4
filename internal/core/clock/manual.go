package clock

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by Advance. Callbacks run on the caller's goroutine.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	tickers []*manualTicker
}

type manualTicker struct {
	owner   *Manual
	period  time.Duration
	next    time.Duration
	fn      func()
	stopped bool
}

// NewManual returns a Manual scheduler positioned at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every registers fn to run each time period elapses.
func (manual *Manual) Every(period time.Duration, fn func()) Ticker {
	if period <= 0 {
		period = time.Second
	}
	manual.mu.Lock()
	defer manual.mu.Unlock()
	ticker := &manualTicker{
		owner:  manual,
		period: period,
		next:   manual.now + period,
		fn:     fn,
	}
	manual.tickers = append(manual.tickers, ticker)
	return ticker
}

// Advance moves time forward, firing due callbacks in time order.
func (manual *Manual) Advance(delta time.Duration) {
	manual.mu.Lock()
	target := manual.now + delta
	manual.mu.Unlock()

	for {
		manual.mu.Lock()
		due := manual.nextDueLocked(target)
		if due == nil {
			manual.now = target
			manual.mu.Unlock()
			return
		}
		manual.now = due.next
		due.next += due.period
		fn := due.fn
		manual.mu.Unlock()

		fn()
	}
}

// Active reports how many tickers are still running.
func (manual *Manual) Active() int {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	count := 0
	for _, ticker := range manual.tickers {
		if !ticker.stopped {
			count++
		}
	}
	return count
}

// Elapsed returns the simulated time since creation.
func (manual *Manual) Elapsed() time.Duration {
	manual.mu.Lock()
	defer manual.mu.Unlock()
	return manual.now
}

func (manual *Manual) nextDueLocked(target time.Duration) *manualTicker {
	var due *manualTicker
	for _, ticker := range manual.tickers {
		if ticker.stopped || ticker.next > target {
			continue
		}
		if due == nil || ticker.next < due.next {
			due = ticker
		}
	}
	return due
}

func (ticker *manualTicker) Stop() {
	ticker.owner.mu.Lock()
	defer ticker.owner.mu.Unlock()
	ticker.stopped = true
}

package clock

import (
	"sync"
	"time"
)

// Ticker is a handle to a periodic callback.
type Ticker interface {
	Stop()
}

// Scheduler runs callbacks at a fixed period.
type Scheduler interface {
	Every(period time.Duration, fn func()) Ticker
}

// System is the wall-clock Scheduler.
var System Scheduler = systemScheduler{}

type systemScheduler struct{}

type systemTicker struct {
	stopOnce sync.Once
	stopCh   chan struct{}
}

func (systemScheduler) Every(period time.Duration, fn func()) Ticker {
	if period <= 0 {
		period = time.Second
	}
	ticker := &systemTicker{stopCh: make(chan struct{})}
	go ticker.run(period, fn)
	return ticker
}

func (ticker *systemTicker) run(period time.Duration, fn func()) {
	timeTicker := time.NewTicker(period)
	defer timeTicker.Stop()

	for {
		select {
		case <-ticker.stopCh:
			return
		case <-timeTicker.C:
			fn()
		}
	}
}

func (ticker *systemTicker) Stop() {
	ticker.stopOnce.Do(func() {
		close(ticker.stopCh)
	})
}

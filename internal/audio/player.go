package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"
)

const defaultSampleRate = beep.SampleRate(44100)

// Player plays the completion chime on the system speaker.
type Player struct {
	mu         sync.Mutex
	tone       Tone
	volume     float64
	sampleRate beep.SampleRate
	ready      bool
	logger     logrus.FieldLogger

	initSpeaker func(beep.SampleRate, int) error
	play        func(...beep.Streamer)
}

// NewPlayer creates a Player. volume is a linear factor in [0,1].
func NewPlayer(tone Tone, volume float64, logger logrus.FieldLogger) *Player {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Player{
		tone:        tone,
		volume:      clampVolume(volume),
		sampleRate:  defaultSampleRate,
		logger:      logger.WithField("component", "audio"),
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// Prepare opens the speaker on first use. A failed attempt is retried on the next call.
func (player *Player) Prepare() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.ready {
		return nil
	}
	if err := player.initSpeaker(player.sampleRate, player.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	player.ready = true
	player.logger.WithField("sample_rate", int(player.sampleRate)).Debug("speaker ready")
	return nil
}

// Play starts the chime without waiting for it to finish.
func (player *Player) Play() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if !player.ready {
		player.logger.Debug("chime skipped, speaker not ready")
		return
	}
	player.play(player.streamerLocked())
}

func (player *Player) streamerLocked() beep.Streamer {
	return &effects.Volume{
		Streamer: player.tone.Streamer(player.sampleRate),
		Base:     2,
		Volume:   math.Log2(math.Max(player.volume, 1e-6)),
		Silent:   player.volume <= 0,
	}
}

// Mute is a silent chime.
type Mute struct{}

// Prepare does nothing.
func (Mute) Prepare() error { return nil }

// Play does nothing.
func (Mute) Play() {}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}

package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChime_Frequency(t *testing.T) {
	t.Parallel()

	tone := Chime()
	assert.InDelta(t, 220.0, tone.Frequency(0), 1e-9)
	assert.InDelta(t, 155.563, tone.Frequency(time.Second), 1e-3)
	assert.InDelta(t, 110.0, tone.Frequency(2*time.Second), 1e-9)
	assert.InDelta(t, 110.0, tone.Frequency(3*time.Second), 1e-9)
}

func TestChime_Gain(t *testing.T) {
	t.Parallel()

	tone := Chime()
	assert.InDelta(t, 0.0, tone.Gain(0), 1e-9)
	assert.InDelta(t, 0.4, tone.Gain(50*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.8, tone.Gain(100*time.Millisecond), 1e-9)
	assert.InDelta(t, 0.001, tone.Gain(4*time.Second), 1e-9)
	assert.Less(t, tone.Gain(3*time.Second), tone.Gain(time.Second))
}

func TestChime_StreamerLength(t *testing.T) {
	t.Parallel()

	sampleRate := beep.SampleRate(8000)
	streamer := Chime().Streamer(sampleRate)

	buf := make([][2]float64, 1000)
	total := 0
	peak := 0.0
	for {
		n, ok := streamer.Stream(buf)
		if !ok {
			break
		}
		for _, sample := range buf[:n] {
			assert.Equal(t, sample[0], sample[1])
			if sample[0] > peak {
				peak = sample[0]
			}
		}
		total += n
	}
	assert.Equal(t, sampleRate.N(4*time.Second), total)
	assert.NoError(t, streamer.Err())
	assert.LessOrEqual(t, peak, 0.8)
	assert.Greater(t, peak, 0.5)
}

func TestPlayer_LazyInitAndRetry(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	player := NewPlayer(Chime(), 1, logger)

	inits := 0
	failNext := true
	player.initSpeaker = func(beep.SampleRate, int) error {
		inits++
		if failNext {
			failNext = false
			return errors.New("no device")
		}
		return nil
	}
	var played []beep.Streamer
	player.play = func(streamers ...beep.Streamer) {
		played = append(played, streamers...)
	}

	player.Play()
	assert.Empty(t, played)

	require.Error(t, player.Prepare())
	require.NoError(t, player.Prepare())
	require.NoError(t, player.Prepare())
	assert.Equal(t, 2, inits)

	player.Play()
	require.Len(t, played, 1)
	volume, ok := played[0].(*effects.Volume)
	require.True(t, ok)
	assert.False(t, volume.Silent)
	assert.InDelta(t, 0.0, volume.Volume, 1e-9)
}

func TestPlayer_ZeroVolumeIsSilent(t *testing.T) {
	t.Parallel()

	player := NewPlayer(Chime(), -2, nil)
	player.ready = true
	var played []beep.Streamer
	player.play = func(streamers ...beep.Streamer) {
		played = append(played, streamers...)
	}

	player.Play()
	require.Len(t, played, 1)
	assert.True(t, played[0].(*effects.Volume).Silent)
}

func TestMute(t *testing.T) {
	t.Parallel()

	var mute Mute
	assert.NoError(t, mute.Prepare())
	mute.Play()
}

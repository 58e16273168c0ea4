package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Tone describes a sine chime with an exponential pitch glide and an
// attack/decay gain envelope.
type Tone struct {
	StartFrequency float64
	EndFrequency   float64
	Glide          time.Duration
	PeakGain       float64
	FloorGain      float64
	Attack         time.Duration
	Length         time.Duration
}

// Chime is the completion tone: 220 Hz falling to 110 Hz over two seconds,
// peaking at 0.8 after 100 ms and fading out over four seconds.
func Chime() Tone {
	return Tone{
		StartFrequency: 220,
		EndFrequency:   110,
		Glide:          2 * time.Second,
		PeakGain:       0.8,
		FloorGain:      0.001,
		Attack:         100 * time.Millisecond,
		Length:         4 * time.Second,
	}
}

// Frequency returns the pitch at offset at; it holds EndFrequency after the glide.
func (tone Tone) Frequency(at time.Duration) float64 {
	switch {
	case at <= 0:
		return tone.StartFrequency
	case at >= tone.Glide:
		return tone.EndFrequency
	}
	return exponentialRamp(tone.StartFrequency, tone.EndFrequency, at.Seconds()/tone.Glide.Seconds())
}

// Gain returns the envelope value at offset at.
func (tone Tone) Gain(at time.Duration) float64 {
	switch {
	case at <= 0:
		return 0
	case at < tone.Attack:
		return tone.PeakGain * at.Seconds() / tone.Attack.Seconds()
	case at >= tone.Length:
		return tone.FloorGain
	}
	decay := tone.Length - tone.Attack
	if decay <= 0 {
		return tone.PeakGain
	}
	return exponentialRamp(tone.PeakGain, tone.FloorGain, (at - tone.Attack).Seconds()/decay.Seconds())
}

// Streamer renders the tone at sampleRate. It ends after Length.
func (tone Tone) Streamer(sampleRate beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		tone:       tone,
		sampleRate: sampleRate,
		total:      sampleRate.N(tone.Length),
	}
}

func exponentialRamp(from, to, fraction float64) float64 {
	if from <= 0 || to <= 0 {
		return from + (to-from)*fraction
	}
	return from * math.Pow(to/from, fraction)
}

type toneStreamer struct {
	tone       Tone
	sampleRate beep.SampleRate
	position   int
	total      int
	phase      float64
}

func (streamer *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if streamer.position >= streamer.total {
		return 0, false
	}
	n := 0
	for n < len(samples) && streamer.position < streamer.total {
		at := streamer.sampleRate.D(streamer.position)
		value := streamer.tone.Gain(at) * math.Sin(streamer.phase)
		samples[n][0] = value
		samples[n][1] = value

		streamer.phase += 2 * math.Pi * streamer.tone.Frequency(at) / float64(streamer.sampleRate)
		if streamer.phase > 2*math.Pi {
			streamer.phase -= 2 * math.Pi
		}
		streamer.position++
		n++
	}
	return n, true
}

func (streamer *toneStreamer) Err() error {
	return nil
}

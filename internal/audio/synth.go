// Package audio turns simulation events into short synthesized cues played
// through the beep speaker. It only ever consumes drained events; nothing
// here feeds back into the game.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a single tone, optionally sliding toward an end
// frequency over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSlide(freq, freq, duration, wave, rate)
}

// NewSlide creates a tone that glides exponentially from freq to endFreq.
func NewSlide(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2*o.phase - 1
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.freq > 0 && o.endFreq > 0 {
			k := float64(o.position) / float64(o.duration)
			freq = o.freq * math.Pow(o.endFreq/o.freq, k)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream exponentially from full volume to about 1% over
// its length, the shape of a plucked chiptune note.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay wraps s with an exponential fade lasting duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: max(rate.N(duration), 1)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Pow(0.01, float64(d.position)/float64(d.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero
// volume is rendered silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Note is one voice of a cue.
type Note struct {
	Wave     WaveType
	Freq     float64
	EndFreq  float64 // Zero means no slide
	Duration time.Duration
	Start    time.Duration // Offset from the start of the cue
	Volume   float64
}

// defaultNoteVolume matches the quiet default gain of a cue voice.
const defaultNoteVolume = 0.1

// Render mixes notes into one finite stream at the given master volume.
func Render(notes []Note, rate beep.SampleRate, master float64) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		end := n.EndFreq
		if end <= 0 {
			end = n.Freq
		}
		vol := n.Volume
		if vol <= 0 {
			vol = defaultNoteVolume
		}
		tone := NewDecay(NewSlide(n.Freq, end, n.Duration, n.Wave, rate), n.Duration, rate)
		voice := newVolume(tone, vol*master)
		if n.Start > 0 {
			voice = beep.Seq(beep.Silence(rate.N(n.Start)), voice)
		}
		voices = append(voices, voice)
	}
	return beep.Mix(voices...)
}

// Length returns the total duration of a cue.
func Length(notes []Note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d = max(d, n.Start+n.Duration)
	}
	return d
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator whose frequency glides linearly from
// startFreq to endFreq
type tone struct {
	rate      beep.SampleRate
	wave      Wave
	startFreq float64
	endFreq   float64
	total     int
	pos       int
	phase     float64
	seed      uint32
}

// NewTone creates a tone of the given duration
func NewTone(rate beep.SampleRate, wave Wave, startFreq, endFreq float64, d time.Duration) beep.Streamer {
	return &tone{
		rate:      rate,
		wave:      wave,
		startFreq: startFreq,
		endFreq:   endFreq,
		total:     rate.N(d),
		seed:      1,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.startFreq + (t.endFreq-t.startFreq)*progress

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			t.seed = t.seed*1103515245 + 12345
			v = float64(t.seed&0x7fffffff)/float64(0x7fffffff)*2 - 1
		}

		// linear release over the whole tone
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales a streamer linearly; vol <= 0 is silent.
// math.Log2(0) is -Inf, so zero volume is handled by Silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

func jumpSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(NewTone(rate, WaveSquare, 300, 600, 120*time.Millisecond), 0.25)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		withVolume(NewTone(rate, WaveNoise, 0, 0, 60*time.Millisecond), 0.3),
		withVolume(NewTone(rate, WaveSine, 160, 80, 150*time.Millisecond), 0.4),
	)
}

func fallSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(NewTone(rate, WaveSine, 700, 120, 500*time.Millisecond), 0.4)
}

func collectSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		withVolume(NewTone(rate, WaveSquare, 987.77, 987.77, 70*time.Millisecond), 0.2),
		withVolume(NewTone(rate, WaveSquare, 1318.51, 1318.51, 140*time.Millisecond), 0.2),
	)
}

func choiceSound(rate beep.SampleRate) beep.Streamer {
	return withVolume(NewTone(rate, WaveSine, 880, 880, 90*time.Millisecond), 0.3)
}

package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave - форма сигнала осциллятора
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone - короткий звук: частота скользит от Freq к EndFreq, громкость
// нарастает за Attack и затухает до конца.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Attack   time.Duration
	Wave     Wave
	Volume   float64
}

// tone - генератор одного Tone
type tone struct {
	t      Tone
	rate   beep.SampleRate
	total  int
	attack int
	pos    int
	phase  float64
	rng    *rand.Rand
}

// NewTone создает конечный стример. Шум детерминирован: звук не влияет
// на симуляцию, но одинаковые подсказки звучат одинаково.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	if t.EndFreq == 0 {
		t.EndFreq = t.Freq
	}
	return &tone{
		t:      t,
		rate:   rate,
		total:  rate.N(t.Duration),
		attack: rate.N(t.Attack),
		rng:    rand.New(rand.NewSource(int64(t.Freq))),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if o.pos >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.total {
			return i, true
		}
		progress := float64(o.pos) / float64(o.total)
		freq := o.t.Freq + (o.t.EndFreq-o.t.Freq)*progress

		var val float64
		switch o.t.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		// Огибающая: линейная атака, затем линейное затухание
		env := 1 - progress
		if o.pos < o.attack {
			env = float64(o.pos) / float64(o.attack)
		}
		val *= env

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// withVolume применяет громкость. log2(0) = -Inf, поэтому ноль - тишина.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Render собирает последовательность тонов в один стример.
func Render(tones []Tone, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, withVolume(NewTone(t, rate), t.Volume))
	}
	return beep.Seq(parts...)
}

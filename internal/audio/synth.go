package audio

import (
	"math"
	"math/rand"
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
	WaveNoise
)

// Sweep selects how an oscillator glides from its start to its end frequency.
type Sweep int

const (
	SweepLinear Sweep = iota
	SweepExponential
)

// oscillator generates a raw wave, optionally gliding between two frequencies
// over glide samples and holding the end frequency afterwards.
type oscillator struct {
	from, to float64
	sweep    Sweep
	glide    int
	phase    float64
	duration int // Samples; negative plays forever
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, SweepLinear, duration, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over
// glide. A negative duration streams forever.
func NewSweep(from, to float64, sweep Sweep, glide, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := -1
	if duration >= 0 {
		samples = rate.N(duration)
	}
	return &oscillator{
		from:     from,
		to:       to,
		sweep:    sweep,
		glide:    rate.N(glide),
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) freq() float64 {
	if o.glide <= 0 || o.position >= o.glide || o.from == o.to {
		return o.to
	}
	t := float64(o.position) / float64(o.glide)
	if o.sweep == SweepExponential && o.from > 0 && o.to > 0 {
		return o.from * math.Pow(o.to/o.from, t)
	}
	return o.from + (o.to-o.from)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration >= 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// ramp multiplies a stream by a gain moving from one level to another over
// duration. Exponential ramps need both levels above zero.
type ramp struct {
	streamer beep.Streamer
	from, to float64
	sweep    Sweep
	position int
	total    int
}

// NewRamp shapes s with a gain ramp and ends it after duration.
func NewRamp(s beep.Streamer, from, to float64, sweep Sweep, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &ramp{streamer: s, from: from, to: to, sweep: sweep, total: rate.N(duration)}
}

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if r.position >= r.total {
			return i, i > 0
		}
		t := float64(r.position) / float64(r.total)
		gain := r.from + (r.to-r.from)*t
		if r.sweep == SweepExponential && r.from > 0 && r.to > 0 {
			gain = r.from * math.Pow(r.to/r.from, t)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		r.position++
	}
	return n, ok
}

func (r *ramp) Err() error { return r.streamer.Err() }

// lowpass is a one-pole filter whose cutoff glides exponentially.
type lowpass struct {
	streamer beep.Streamer
	from, to float64
	glide    int
	position int
	rate     beep.SampleRate
	y        [2]float64
}

// NewLowpass filters s with a cutoff gliding from one frequency to another.
func NewLowpass(s beep.Streamer, from, to float64, glide time.Duration, rate beep.SampleRate) beep.Streamer {
	return &lowpass{streamer: s, from: from, to: to, glide: rate.N(glide), rate: rate}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		cutoff := l.to
		if l.position < l.glide {
			cutoff = l.from * math.Pow(l.to/l.from, float64(l.position)/float64(l.glide))
		}
		alpha := 1 - math.Exp(-2*math.Pi*cutoff/float64(l.rate))
		for c := range 2 {
			l.y[c] += alpha * (samples[i][c] - l.y[c])
			samples[i][c] = l.y[c]
		}
		l.position++
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// clipper overdrives a stream through a soft-knee curve bounded to ±1.
type clipper struct {
	streamer beep.Streamer
	drive    float64
}

// NewClipper distorts s. Higher drive gives a harder edge.
func NewClipper(s beep.Streamer, drive float64) beep.Streamer {
	return &clipper{streamer: s, drive: drive}
}

func (c *clipper) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = c.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := range 2 {
			x := samples[i][ch]
			samples[i][ch] = (1 + c.drive) * x / (1 + c.drive*math.Abs(x))
		}
	}
	return n, ok
}

func (c *clipper) Err() error { return c.streamer.Err() }

// newVolume wraps s in a linear gain. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

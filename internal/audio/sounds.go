package audio

import (
	"hash/fnv"
	"strings"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the output rate of every synthesized effect.
const SampleRate = beep.SampleRate(44100)

// fadeFloor is the gain decaying tones ramp down to.
const fadeFloor = 0.01

// tone is a decaying note, the building block of the short cues.
func tone(freq float64, wave WaveType, dur time.Duration, vol float64) beep.Streamer {
	osc := NewOscillator(freq, dur, wave, SampleRate)
	return NewRamp(osc, vol, fadeFloor, SweepExponential, dur, SampleRate)
}

// noise is a decaying burst of white noise.
func noise(dur time.Duration, vol float64) beep.Streamer {
	osc := NewOscillator(0, dur, WaveNoise, SampleRate)
	return NewRamp(osc, vol, fadeFloor, SweepExponential, dur, SampleRate)
}

// delayed starts s after d of silence.
func delayed(d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Seq(beep.Silence(SampleRate.N(d)), s)
}

// mixFor mixes streamers for at most d.
func mixFor(d time.Duration, s ...beep.Streamer) beep.Streamer {
	return beep.Take(SampleRate.N(d), beep.Mix(s...))
}

// CorrectSound is a rising two-note chime.
func CorrectSound() beep.Streamer {
	return mixFor(300*time.Millisecond,
		tone(600, WaveSine, 100*time.Millisecond, 0.1),
		delayed(100*time.Millisecond, tone(800, WaveSine, 200*time.Millisecond, 0.1)),
	)
}

// WrongSound is a falling two-note buzz.
func WrongSound() beep.Streamer {
	return mixFor(450*time.Millisecond,
		tone(300, WaveSaw, 200*time.Millisecond, 0.1),
		delayed(150*time.Millisecond, tone(200, WaveSaw, 300*time.Millisecond, 0.1)),
	)
}

// ExplosionSound is a square kick dropping to 10 Hz under a closing noise
// blast, overdriven.
func ExplosionSound() beep.Streamer {
	kick := NewSweep(150, 10, SweepExponential, 200*time.Millisecond, 200*time.Millisecond, WaveSquare, SampleRate)
	blast := NewLowpass(NewOscillator(0, 400*time.Millisecond, WaveNoise, SampleRate), 1500, 100, 300*time.Millisecond, SampleRate)
	driven := NewClipper(mixFor(400*time.Millisecond, kick, blast), 20)
	return NewRamp(driven, 0.8, fadeFloor, SweepExponential, 400*time.Millisecond, SampleRate)
}

// RocketSound is a noise whoosh whose filter opens upward.
func RocketSound() beep.Streamer {
	whoosh := NewLowpass(NewOscillator(0, 500*time.Millisecond, WaveNoise, SampleRate), 200, 3000, 300*time.Millisecond, SampleRate)
	return NewRamp(whoosh, 0.3, fadeFloor, SweepExponential, 400*time.Millisecond, SampleRate)
}

// BossChargeSound is a rising triangle swell lasting the boss charge.
func BossChargeSound() beep.Streamer {
	osc := NewSweep(100, 500, SweepLinear, 1500*time.Millisecond, 1500*time.Millisecond, WaveTriangle, SampleRate)
	return NewRamp(osc, 0.05, 0.2, SweepLinear, 1500*time.Millisecond, SampleRate)
}

// HeroChargeSound is a rising sine lasting the laser charge.
func HeroChargeSound() beep.Streamer {
	osc := NewSweep(200, 800, SweepExponential, 800*time.Millisecond, 800*time.Millisecond, WaveSine, SampleRate)
	return NewRamp(osc, 0.01, 0.1, SweepLinear, 800*time.Millisecond, SampleRate)
}

// BossFireSound is a second of noise over a low saw.
func BossFireSound() beep.Streamer {
	return mixFor(time.Second,
		noise(time.Second, 0.4),
		tone(100, WaveSaw, time.Second, 0.2),
	)
}

// LaserBeamSound is the endless beam hum: a saw settling from 150 to 100 Hz
// over a square sub-bass.
func LaserBeamSound() beep.Streamer {
	return newVolume(beep.Mix(
		NewSweep(150, 100, SweepLinear, 100*time.Millisecond, -1, WaveSaw, SampleRate),
		NewOscillator(75, -1, WaveSquare, SampleRate),
	), 0.2)
}

// VictorySound is a major arpeggio.
func VictorySound() beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, WaveSquare, 150*time.Millisecond, 0.3),
		tone(659.25, WaveSquare, 150*time.Millisecond, 0.3),
		tone(783.99, WaveSquare, 150*time.Millisecond, 0.3),
		tone(1046.5, WaveSquare, 600*time.Millisecond, 0.3),
	), 0.5)
}

// LoseSound is a slow descending saw line.
func LoseSound() beep.Streamer {
	return newVolume(beep.Seq(
		tone(392, WaveSaw, 250*time.Millisecond, 0.3),
		tone(349.23, WaveSaw, 250*time.Millisecond, 0.3),
		tone(311.13, WaveSaw, 250*time.Millisecond, 0.3),
		tone(196, WaveSaw, 800*time.Millisecond, 0.3),
	), 0.6)
}

// VoiceSound renders a line as a robotic growl, one syllable per word, pitched
// from the word so a line always sounds the same.
func VoiceSound(line string) beep.Streamer {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	syllables := make([]beep.Streamer, 0, len(words))
	for _, w := range words {
		h := fnv.New32a()
		h.Write([]byte(w))
		pitch := 70 + float64(h.Sum32()%60)
		dur := time.Duration(80+20*min(len(w), 8)) * time.Millisecond
		syllables = append(syllables,
			NewEnvelope(NewOscillator(pitch, dur, WaveSaw, SampleRate), dur, 10*time.Millisecond, dur/2, SampleRate),
			beep.Silence(SampleRate.N(40*time.Millisecond)),
		)
	}
	return newVolume(NewClipper(beep.Seq(syllables...), 4), 0.25)
}

// musicBeat is one step of the background loop.
const musicBeat = 300 * time.Millisecond

// musicPattern is the bass line of the background loop, one note per beat.
var musicPattern = []float64{55, 55, 65.41, 55, 49, 49, 58.27, 61.74}

// MusicTrack is the endless background loop: a square bass line with a noise
// hat on every off-beat.
func MusicTrack() beep.Streamer {
	step := 0
	return beep.Iterate(func() beep.Streamer {
		freq := musicPattern[step%len(musicPattern)]
		step++
		return mixFor(musicBeat,
			tone(freq, WaveSquare, musicBeat, 0.12),
			delayed(musicBeat/2, noise(musicBeat/4, 0.03)),
		)
	})
}

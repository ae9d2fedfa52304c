package audio

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the number of samples and the peak.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := range 2 {
				if math.IsNaN(buf[i][c]) || math.IsInf(buf[i][c], 0) {
					t.Fatalf("sample %d is not finite", total+i)
				}
				peak = math.Max(peak, math.Abs(buf[i][c]))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > limit {
			t.Fatalf("stream exceeded %d samples", limit)
		}
	}
}

func TestOscillatorWavesStayInRange(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise}
	for _, w := range waves {
		osc := NewOscillator(440, 50*time.Millisecond, w, SampleRate)
		n, peak := drain(t, osc, SampleRate.N(time.Second))
		if n != SampleRate.N(50*time.Millisecond) {
			t.Errorf("wave %d streamed %d samples, want %d", w, n, SampleRate.N(50*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d peaked at %v", w, peak)
		}
	}
}

func TestSquareWaveIsBipolar(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %v", i, v)
		}
	}
}

func TestSweepReachesEndFrequency(t *testing.T) {
	o := NewSweep(200, 800, SweepExponential, 100*time.Millisecond, time.Second, WaveSine, SampleRate).(*oscillator)
	if f := o.freq(); f != 200 {
		t.Errorf("start frequency %v, want 200", f)
	}
	buf := make([][2]float64, SampleRate.N(100*time.Millisecond))
	o.Stream(buf)
	if f := o.freq(); f != 800 {
		t.Errorf("frequency after glide %v, want 800", f)
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	dur := 100 * time.Millisecond
	square := NewOscillator(100, dur, WaveSquare, SampleRate)
	env := NewEnvelope(square, dur, 10*time.Millisecond, 20*time.Millisecond, SampleRate)

	buf := make([][2]float64, SampleRate.N(dur))
	n, _ := env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample %v, want 0 during attack", buf[0][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample %v, want near 0 after release", last)
	}
}

func TestEffectsTerminate(t *testing.T) {
	cases := map[string]beep.Streamer{
		"correct":    CorrectSound(),
		"wrong":      WrongSound(),
		"explosion":  ExplosionSound(),
		"rocket":     RocketSound(),
		"bossCharge": BossChargeSound(),
		"heroCharge": HeroChargeSound(),
		"bossFire":   BossFireSound(),
		"victory":    VictorySound(),
		"lose":       LoseSound(),
		"voice":      VoiceSound("WASTE OF RAM"),
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			n, peak := drain(t, s, SampleRate.N(3*time.Second))
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if peak > 2 {
				t.Errorf("peak %v is too loud", peak)
			}
		})
	}
}

func TestLaserBeamLoopsUntilStopped(t *testing.T) {
	ctrl := &beep.Ctrl{Streamer: LaserBeamSound()}
	buf := make([][2]float64, 512)
	for i := 0; i < 200; i++ {
		if n, ok := ctrl.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("beam ended after %d buffers", i)
		}
	}
	ctrl.Streamer = nil
	if _, ok := ctrl.Stream(buf); ok {
		t.Error("stopped beam should drain")
	}
}

func TestMusicTrackLoops(t *testing.T) {
	track := MusicTrack()
	buf := make([][2]float64, 512)
	beat := SampleRate.N(musicBeat)
	for i := 0; i < 4*len(musicPattern)*beat/len(buf); i++ {
		n, ok := track.Stream(buf)
		if !ok || n == 0 {
			t.Fatalf("music ended after %d buffers", i)
		}
	}
}

func TestMusicDucksWhileSpeaking(t *testing.T) {
	bus := newMusicBus(MusicTrack())
	near := func(got, want float64) bool { return math.Abs(got-want) < 1e-9 }

	if !near(bus.volume(), musicLevel) {
		t.Fatalf("music starts at %v, want %v", bus.volume(), musicLevel)
	}
	bus.duck()
	bus.duck()
	if !near(bus.volume(), duckedLevel) {
		t.Errorf("ducked music at %v, want %v", bus.volume(), duckedLevel)
	}
	bus.restore()
	if !near(bus.volume(), duckedLevel) {
		t.Error("music restored while a voice is still speaking")
	}
	bus.restore()
	bus.restore()
	if !near(bus.volume(), musicLevel) {
		t.Errorf("restored music at %v, want %v", bus.volume(), musicLevel)
	}

	bus.stop()
	if _, ok := bus.gain.Stream(make([][2]float64, 16)); ok {
		t.Error("stopped music should drain")
	}
}

func TestVoiceSoundIsDeterministicAndEmptySafe(t *testing.T) {
	if VoiceSound("   ") != nil {
		t.Error("blank line should produce no sound")
	}
	a, _ := drain(t, VoiceSound("BRAIN MISSING"), SampleRate.N(3*time.Second))
	b, _ := drain(t, VoiceSound("BRAIN MISSING"), SampleRate.N(3*time.Second))
	if a != b {
		t.Errorf("same line rendered %d and %d samples", a, b)
	}
}

func TestManagerIsSilentWithoutSpeaker(t *testing.T) {
	m := NewManager(log.New(io.Discard))

	// None of these may block or panic before Init.
	m.Correct()
	m.StartLaserBeam()
	m.StopLaserBeam()
	m.StartMusic()
	m.StopMusic()
	m.Close()

	if err := m.PlayVoice("DEPLOYMENT FAILED"); err != ErrNoDevice {
		t.Errorf("PlayVoice without speaker = %v, want ErrNoDevice", err)
	}
	m.SetMuted(true)
	if !m.Muted() {
		t.Error("mute should set")
	}
	m.SetMuted(false)
	if m.Muted() {
		t.Error("mute should clear")
	}
}

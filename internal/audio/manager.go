// Package audio synthesizes the fight's sound effects with beep and plays them
// through a single speaker mixer.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// ErrNoDevice is returned for playback attempted without a working speaker.
var ErrNoDevice = errors.New("audio: no output device")

// speakerBuffer is the speaker latency.
const speakerBuffer = 100 * time.Millisecond

// Background music gain, normal and while the boss speaks.
const (
	musicLevel  = 0.7
	duckedLevel = 0.2
)

// Manager owns the speaker and mixes every effect into it. All methods are safe
// to call before Init or after Init failed; they then do nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	laser       *beep.Ctrl
	music       *musicBus
	initialized bool
	log         *log.Logger
}

// NewManager creates a manager. Call Init to open the speaker.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	return &Manager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
		log:    logger.WithPrefix("audio"),
	}
}

// Init opens the speaker. On failure the manager stays silent.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(speakerBuffer)); err != nil {
		m.log.Warn("speaker unavailable, continuing muted", "err", err)
		return err
	}
	speaker.Play(m.master)
	m.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.laser = nil
	m.music = nil
	m.initialized = false
}

// SetMuted silences or restores the whole mix.
func (m *Manager) SetMuted(muted bool) {
	m.withSpeaker(func() { m.master.Silent = muted })
}

// Muted reports whether the mix is silenced.
func (m *Manager) Muted() bool {
	var muted bool
	m.withSpeaker(func() { muted = m.master.Silent })
	return muted
}

// withSpeaker runs fn while the speaker goroutine is held off.
func (m *Manager) withSpeaker(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

func (m *Manager) play(s beep.Streamer) {
	if s == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

func (m *Manager) Correct()     { m.play(CorrectSound()) }
func (m *Manager) Wrong()       { m.play(WrongSound()) }
func (m *Manager) Explosion()   { m.play(ExplosionSound()) }
func (m *Manager) Rocket()      { m.play(RocketSound()) }
func (m *Manager) BossCharge()  { m.play(BossChargeSound()) }
func (m *Manager) BossFire()    { m.play(BossFireSound()) }
func (m *Manager) HeroCharge()  { m.play(HeroChargeSound()) }
func (m *Manager) PlayVictory() { m.play(VictorySound()) }
func (m *Manager) PlayLose()    { m.play(LoseSound()) }

// StartLaserBeam starts the looping beam hum unless it is already playing.
func (m *Manager) StartLaserBeam() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.laser != nil {
		return
	}
	m.laser = &beep.Ctrl{Streamer: LaserBeamSound()}
	speaker.Lock()
	m.mixer.Add(m.laser)
	speaker.Unlock()
}

// StopLaserBeam ends the beam hum. A drained Ctrl is dropped by the mixer.
func (m *Manager) StopLaserBeam() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.laser == nil {
		return
	}
	if m.initialized {
		speaker.Lock()
		m.laser.Streamer = nil
		speaker.Unlock()
	}
	m.laser = nil
}

// StartMusic starts the background loop unless it is already playing.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.music != nil {
		return
	}
	m.music = newMusicBus(MusicTrack())
	speaker.Lock()
	m.mixer.Add(m.music.gain)
	speaker.Unlock()
}

// StopMusic ends the background loop.
func (m *Manager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.music == nil {
		return
	}
	if m.initialized {
		speaker.Lock()
		m.music.stop()
		speaker.Unlock()
	}
	m.music = nil
}

// PlayVoice speaks a boss line. The music is ducked until the line ends.
func (m *Manager) PlayVoice(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return ErrNoDevice
	}
	s := VoiceSound(line)
	if s == nil {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()
	if bus := m.music; bus != nil {
		bus.duck()
		// The callback runs on the speaker goroutine with the speaker held.
		s = beep.Seq(s, beep.Callback(bus.restore))
	}
	m.mixer.Add(s)
	return nil
}

// musicBus is the gain stage of the background loop. Every speaking voice
// holds it at duckedLevel.
type musicBus struct {
	ctrl     *beep.Ctrl
	gain     *effects.Volume
	speaking int
}

func newMusicBus(track beep.Streamer) *musicBus {
	ctrl := &beep.Ctrl{Streamer: track}
	b := &musicBus{ctrl: ctrl, gain: &effects.Volume{Streamer: ctrl, Base: 2}}
	b.level()
	return b
}

func (b *musicBus) duck() {
	b.speaking++
	b.level()
}

func (b *musicBus) restore() {
	b.speaking = max(b.speaking-1, 0)
	b.level()
}

func (b *musicBus) level() {
	v := musicLevel
	if b.speaking > 0 {
		v = duckedLevel
	}
	b.gain.Volume = math.Log2(v)
}

// volume returns the current linear gain.
func (b *musicBus) volume() float64 {
	return math.Pow(2, b.gain.Volume)
}

// stop drains the loop; the mixer then drops it.
func (b *musicBus) stop() {
	b.ctrl.Streamer = nil
}

// Nop discards every sound event.
type Nop struct{}

func (Nop) Correct()               {}
func (Nop) Wrong()                 {}
func (Nop) Explosion()             {}
func (Nop) Rocket()                {}
func (Nop) BossCharge()            {}
func (Nop) BossFire()              {}
func (Nop) HeroCharge()            {}
func (Nop) StartLaserBeam()        {}
func (Nop) StopLaserBeam()         {}
func (Nop) PlayVictory()           {}
func (Nop) PlayLose()              {}
func (Nop) StartMusic()            {}
func (Nop) StopMusic()             {}
func (Nop) PlayVoice(string) error { return nil }
func (Nop) SetMuted(bool)          {}

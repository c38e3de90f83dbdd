package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Sound is a short feedback sound.
type Sound uint8

const (
	// SoundBreak is played when a block is broken.
	SoundBreak Sound = iota
	// SoundPlace is played when a block is placed.
	SoundPlace
)

// Stream returns a finite streamer of the sound at the sample rate passed.
func Stream(s Sound, sr beep.SampleRate) beep.Streamer {
	switch s {
	case SoundBreak:
		return beep.Take(sr.N(120*time.Millisecond), newTone(sr, 140, 18))
	case SoundPlace:
		return beep.Take(sr.N(60*time.Millisecond), newTone(sr, 520, 40))
	}
	return beep.Silence(0)
}

// Manager plays sounds through the speaker. All methods are no-ops until Initialize succeeds.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager returns an uninitialised Manager.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play starts playing the sound passed without waiting for it to finish.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(Stream(s, sampleRate))
	speaker.Unlock()
}

// Close stops every sound and closes the speaker.
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
	m.initialized = false
}

// tone is a sine wave that fades out exponentially.
type tone struct {
	sr    beep.SampleRate
	freq  float64
	decay float64
	pos   int
}

func newTone(sr beep.SampleRate, freq, decay float64) *tone {
	return &tone{sr: sr, freq: freq, decay: decay}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.25 * math.Exp(-g.decay*t) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error {
	return nil
}

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = max(peak, sample[0], -sample[0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestStreamLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	n, peak := drain(Stream(SoundBreak, rate))
	assert.Equal(t, rate.N(120*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 0.25)
	assert.Greater(t, peak, 0.0)

	n, _ = drain(Stream(SoundPlace, rate))
	assert.Equal(t, rate.N(60*time.Millisecond), n)

	n, _ = drain(Stream(Sound(9), rate))
	assert.Zero(t, n)
}

func TestManagerUninitialised(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() {
		m.Play(SoundBreak)
		m.Close()
	})
}

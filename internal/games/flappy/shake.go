package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Shake jitters the render origin for a few ticks after an impact.
// It has its own RNG so render calls never disturb gameplay randomness.
type Shake struct {
	remaining int
	duration  int
	magnitude float64
	rng       *rand.Rand
}

// NewShake creates an unarmed shake.
func NewShake(cfg config.FlappyShake, rng *rand.Rand) *Shake {
	return &Shake{
		duration:  cfg.Duration,
		magnitude: cfg.Magnitude,
		rng:       rng,
	}
}

// Arm starts (or restarts) the shake at full duration.
func (s *Shake) Arm() {
	s.remaining = s.duration
}

// Tick counts one tick down.
func (s *Shake) Tick() {
	if s.remaining > 0 {
		s.remaining--
	}
}

// Remaining returns the ticks left.
func (s *Shake) Remaining() int {
	return s.remaining
}

// Offset returns a fresh random origin offset in [-magnitude, magnitude] on
// each axis, or zero when unarmed. Every call draws new values.
func (s *Shake) Offset() (dx, dy float64) {
	if s.remaining <= 0 {
		return 0, 0
	}
	dx = (s.rng.Float64() - 0.5) * 2 * s.magnitude
	dy = (s.rng.Float64() - 0.5) * 2 * s.magnitude
	return dx, dy
}

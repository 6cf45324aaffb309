package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player. Only its vertical axis moves; x is fixed.
type Bird struct {
	y        float64 // Top of the sprite
	velocity float64 // Positive = falling
	rotation float64 // Radians, derived from velocity while playing
	frame    int     // Flap animation frame

	cfg     config.FlappyBird
	physics config.FlappyPhysics
	groundY float64 // Playfield height
	maxUp   float64 // Radians
	maxDown float64 // Radians
}

// NewBird creates a bird at its spawn position.
func NewBird(cfg config.FlappyConfig) *Bird {
	b := &Bird{
		cfg:     cfg.Bird,
		physics: cfg.Physics,
		groundY: cfg.Playfield.Height,
		maxUp:   core.Radians(cfg.Physics.MaxUpDeg),
		maxDown: core.Radians(cfg.Physics.MaxDownDeg),
	}
	b.Reset()
	return b
}

// Reset puts the bird back at its spawn height, level and at rest.
func (b *Bird) Reset() {
	b.velocity = 0
	b.y = b.cfg.SpawnY
	b.rotation = 0
	b.frame = 0
}

// Flap applies the upward impulse. The state machine only calls it while playing.
func (b *Bird) Flap() {
	b.velocity = b.physics.JumpImpulse
}

// Advance runs one tick of animation and, depending on the phase, physics.
// Returns true when the bird hit the ground this tick.
func (b *Bird) Advance(clock Clock, phase Phase) bool {
	period := b.cfg.PlayFlapPeriod
	if phase == PhaseReadyToStart {
		period = b.cfg.ReadyFlapPeriod
	}
	if clock.Every(period) {
		b.frame = (b.frame + 1) % b.cfg.Frames
	}

	switch phase {
	case PhasePlaying:
		b.velocity += b.physics.Gravity
		b.y += b.velocity
		b.rotation = b.rotationFor(b.velocity)

		if b.y+b.cfg.Height >= b.groundY {
			b.y = b.groundY - b.cfg.Height
			b.velocity = 0
			return true
		}

	case PhaseOver:
		// Stay exactly where the crash happened
		b.velocity = 0

	case PhaseReadyToStart:
		b.rotation = 0
		b.y = b.cfg.SpawnY
		b.velocity = 0
	}
	return false
}

// rotationFor maps velocity linearly onto [maxUp, maxDown].
func (b *Bird) rotationFor(velocity float64) float64 {
	return core.ClampF(velocity/b.physics.RotationVelocity*b.maxDown, b.maxUp, b.maxDown)
}

// stop zeroes velocity without touching position or rotation.
func (b *Bird) stop() {
	b.velocity = 0
}

// Rect returns the sprite bounds.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.cfg.X, b.y, b.cfg.Width, b.cfg.Height)
}

// Hitbox returns the sprite bounds shrunk by the forgiveness inset.
func (b *Bird) Hitbox() core.Rect {
	return b.Rect().Inset(b.cfg.HitboxInset)
}

// X returns the fixed horizontal position.
func (b *Bird) X() float64 { return b.cfg.X }

// Y returns the top of the sprite.
func (b *Bird) Y() float64 { return b.y }

// Velocity returns the vertical velocity.
func (b *Bird) Velocity() float64 { return b.velocity }

// Rotation returns the sprite angle in radians.
func (b *Bird) Rotation() float64 { return b.rotation }

// Frame returns the current animation frame.
func (b *Bird) Frame() int { return b.frame }

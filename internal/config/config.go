// Package config provides YAML-based tuning for the flappy simulation.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all tuning for the game. Values are read once at
// startup and stay fixed for the whole session.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Bird      FlappyBird      `yaml:"bird"`
	Pipes     FlappyPipes     `yaml:"pipes"`
	Shake     FlappyShake     `yaml:"shake"`
}

// FlappyPlayfield is the size of the simulated world in pixels.
type FlappyPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines the vertical motion model.
type FlappyPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // Added to velocity every tick
	JumpImpulse      float64 `yaml:"jump_impulse"`      // Velocity set by a flap (negative = up)
	RotationVelocity float64 `yaml:"rotation_velocity"` // Velocity that maps to MaxDownDeg
	MaxUpDeg         float64 `yaml:"max_up_deg"`
	MaxDownDeg       float64 `yaml:"max_down_deg"`
}

// FlappyBird defines the player sprite and hitbox.
type FlappyBird struct {
	X               float64 `yaml:"x"`
	SpawnY          float64 `yaml:"spawn_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	HitboxInset     float64 `yaml:"hitbox_inset"`      // Forgiveness margin per side
	Frames          int     `yaml:"frames"`            // Flap animation frames
	ReadyFlapPeriod int     `yaml:"ready_flap_period"` // Ticks per frame while waiting to start
	PlayFlapPeriod  int     `yaml:"play_flap_period"`  // Ticks per frame otherwise
}

// FlappyPipes defines obstacle geometry and cadence.
type FlappyPipes struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Gap        float64 `yaml:"gap"`
	Speed      float64 `yaml:"speed"`       // Pixels scrolled per tick
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between spawns
	MaxOffset  int     `yaml:"max_offset"`  // Spawn offset is -floor(rand*MaxOffset)
}

// FlappyShake defines the impact screen shake.
type FlappyShake struct {
	Duration  int     `yaml:"duration"`  // Ticks
	Magnitude float64 `yaml:"magnitude"` // Max offset in pixels
}

// Validate reports tuning that would make the simulation meaningless.
// All problems are returned joined together.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	pf, ph, b, p := c.Playfield, c.Physics, c.Bird, c.Pipes

	check(pf.Width > 0 && pf.Height > 0, "playfield: size must be positive, got %vx%v", pf.Width, pf.Height)

	check(ph.Gravity > 0, "physics: gravity must be positive, got %v", ph.Gravity)
	check(ph.JumpImpulse < 0, "physics: jump_impulse must be negative (upward), got %v", ph.JumpImpulse)
	check(ph.RotationVelocity > 0, "physics: rotation_velocity must be positive, got %v", ph.RotationVelocity)
	check(ph.MaxUpDeg <= 0 && ph.MaxDownDeg >= 0, "physics: need max_up_deg <= 0 <= max_down_deg, got %v and %v", ph.MaxUpDeg, ph.MaxDownDeg)

	check(b.Width > 0 && b.Height > 0, "bird: size must be positive, got %vx%v", b.Width, b.Height)
	check(b.HitboxInset >= 0, "bird: hitbox_inset must not be negative, got %v", b.HitboxInset)
	check(2*b.HitboxInset < b.Width && 2*b.HitboxInset < b.Height, "bird: hitbox_inset %v leaves no hitbox", b.HitboxInset)
	check(b.X >= 0 && b.X+b.Width <= pf.Width, "bird: x %v does not fit the playfield", b.X)
	check(b.SpawnY >= 0 && b.SpawnY+b.Height < pf.Height, "bird: spawn_y %v must leave the bird above the ground", b.SpawnY)
	check(b.Frames > 0, "bird: frames must be positive, got %d", b.Frames)
	check(b.ReadyFlapPeriod > 0 && b.PlayFlapPeriod > 0, "bird: flap periods must be positive")

	check(p.Width > 0 && p.Height > 0, "pipes: size must be positive, got %vx%v", p.Width, p.Height)
	check(p.Gap > b.Height-2*b.HitboxInset, "pipes: gap %v is too small for the bird hitbox", p.Gap)
	check(p.Speed > 0, "pipes: speed must be positive, got %v", p.Speed)
	check(p.SpawnEvery > 0, "pipes: spawn_every must be positive, got %d", p.SpawnEvery)
	check(p.MaxOffset >= 0, "pipes: max_offset must not be negative, got %d", p.MaxOffset)

	check(c.Shake.Duration >= 0, "shake: duration must not be negative, got %d", c.Shake.Duration)
	check(c.Shake.Magnitude >= 0, "shake: magnitude must not be negative, got %v", c.Shake.Magnitude)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}

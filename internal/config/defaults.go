package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the classic tuning: a 320x480 playfield at 60
// ticks per second.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:  320,
			Height: 480,
		},
		Physics: FlappyPhysics{
			Gravity:          0.25,
			JumpImpulse:      -4.6,
			RotationVelocity: 10,
			MaxUpDeg:         -25,
			MaxDownDeg:       90,
		},
		Bird: FlappyBird{
			X:               50,
			SpawnY:          150,
			Width:           34,
			Height:          26,
			HitboxInset:     5,
			Frames:          3,
			ReadyFlapPeriod: 10,
			PlayFlapPeriod:  5,
		},
		Pipes: FlappyPipes{
			Width:      52,
			Height:     320,
			Gap:        100,
			Speed:      2,
			SpawnEvery: 100,
			MaxOffset:  150,
		},
		Shake: FlappyShake{
			Duration:  18, // ~300ms at 60fps
			Magnitude: 5,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

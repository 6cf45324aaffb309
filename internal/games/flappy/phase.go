// Package flappy implements the Flappy Bird simulation: a bird falls under
// gravity, the player flaps, and scrolling pipe pairs must be passed without
// touching them or the ground.
//
// All state lives in a World. Hosts push input into it, call Step once per
// frame and hand it a Renderer to draw the result.
package flappy

import "fmt"

// Phase is the game state machine's current state.
type Phase int

const (
	PhaseReadyToStart Phase = iota // Idle bird, waiting for the first press
	PhasePlaying                   // Physics, pipes and scoring are live
	PhaseOver                      // Frozen after a collision, waiting for a press to reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReadyToStart:
		return "ReadyToStart"
	case PhasePlaying:
		return "Playing"
	case PhaseOver:
		return "Over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) valid() bool {
	return p >= PhaseReadyToStart && p <= PhaseOver
}

// mustBeValid panics on a phase outside the state machine.
// Reaching it means a programming error, not a player action.
func (p Phase) mustBeValid() {
	if !p.valid() {
		panic(fmt.Sprintf("flappy: invalid phase %d", int(p)))
	}
}

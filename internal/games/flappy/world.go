package flappy

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Identity used for score storage and the UI.
const (
	ID    = "flappy"
	Title = "Flappy Bird"
)

// World owns every piece of game state. It is driven by a single goroutine
// calling Step; Push may be called from anywhere.
type World struct {
	cfg   config.FlappyConfig
	phase Phase
	clock Clock
	bird  *Bird
	field *ObstacleField
	score *ScoreTracker
	shake *Shake
	input *core.InputQueue

	// Update passes spent in PhasePlaying by the current or last run.
	runTicks uint64
}

// NewWorld creates a world in PhaseReadyToStart.
// seed makes pipe placement reproducible; store may be nil.
// It panics if cfg does not validate; use config.Load or config.Parse.
func NewWorld(cfg config.FlappyConfig, seed int64, store BestScoreStore, logger *log.Logger) *World {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}
	return &World{
		cfg:   cfg,
		phase: PhaseReadyToStart,
		bird:  NewBird(cfg),
		field: NewObstacleField(cfg, rand.New(rand.NewSource(seed))),
		score: NewScoreTracker(store, logger),
		shake: NewShake(cfg.Shake, rand.New(rand.NewSource(seed+1))),
		input: core.NewInputQueue(),
	}
}

// Push queues an input action for the next update pass.
func (w *World) Push(a core.Action) {
	w.input.Push(a)
}

// Step runs n update passes. Each pass applies queued input, updates the
// shake, bird and obstacles, then advances the clock.
func (w *World) Step(n int) {
	for i := 0; i < n; i++ {
		w.step()
	}
}

func (w *World) step() {
	w.phase.mustBeValid()

	for _, a := range w.input.Drain() {
		w.handle(a)
	}

	if w.phase == PhasePlaying {
		w.runTicks++
	}

	// Counted down before the updates, so a shake armed this tick
	// starts at full duration.
	w.shake.Tick()

	if w.bird.Advance(w.clock, w.phase) {
		w.gameOver()
	}

	ev := w.field.Advance(w.clock, w.phase, w.bird.Hitbox(), w.bird.X())
	if ev.Collided {
		w.gameOver()
	}
	for i := 0; i < ev.Passed; i++ {
		w.score.Increment()
	}

	if w.score.Current() < 0 {
		panic("flappy: negative score")
	}

	w.clock.Advance()
}

// handle applies one input event to the state machine.
func (w *World) handle(a core.Action) {
	if a != core.ActionPrimary {
		return
	}

	switch w.phase {
	case PhaseReadyToStart:
		w.phase = PhasePlaying
		w.runTicks = 0
	case PhasePlaying:
		w.bird.Flap()
	case PhaseOver:
		w.bird.Reset()
		w.field.Reset()
		w.score.Reset()
		w.phase = PhaseReadyToStart
	}
}

// gameOver moves Playing to Over and arms the shake. Further calls in the
// same tick are no-ops.
func (w *World) gameOver() {
	if w.phase != PhasePlaying {
		return
	}
	w.phase = PhaseOver
	w.bird.stop()
	w.shake.Arm()
}

// Phase returns the state machine's current state.
func (w *World) Phase() Phase { return w.phase }

// Tick returns the clock value.
func (w *World) Tick() uint64 { return w.clock.Now() }

// RunTicks returns how many update passes the current run has been playing,
// including the one that ended it. It holds its value through PhaseOver.
func (w *World) RunTicks() uint64 { return w.runTicks }

// Score returns the current run's score.
func (w *World) Score() int { return w.score.Current() }

// Best returns the best score.
func (w *World) Best() int { return w.score.Best() }

// Config returns the tuning the world runs with.
func (w *World) Config() config.FlappyConfig { return w.cfg }

// Snapshot is a copy of everything a renderer or test needs from one tick.
type Snapshot struct {
	Phase          Phase
	Tick           uint64
	RunTicks       uint64
	BirdX          float64
	BirdY          float64
	BirdVelocity   float64
	BirdRotation   float64
	BirdFrame      int
	Obstacles      []Obstacle
	Score          int
	Best           int
	ShakeRemaining int
}

// Snapshot returns a copy of the current state.
func (w *World) Snapshot() Snapshot {
	obstacles := make([]Obstacle, w.field.Len())
	copy(obstacles, w.field.Obstacles())

	return Snapshot{
		Phase:          w.phase,
		Tick:           w.clock.Now(),
		RunTicks:       w.runTicks,
		BirdX:          w.bird.X(),
		BirdY:          w.bird.Y(),
		BirdVelocity:   w.bird.Velocity(),
		BirdRotation:   w.bird.Rotation(),
		BirdFrame:      w.bird.Frame(),
		Obstacles:      obstacles,
		Score:          w.score.Current(),
		Best:           w.score.Best(),
		ShakeRemaining: w.shake.Remaining(),
	}
}

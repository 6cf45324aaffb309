package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// offscreen is a hitbox that never touches a pipe.
var offscreen = core.NewRect(-1000, 0, 1, 1)

func newTestField(cfg config.FlappyConfig) *ObstacleField {
	return NewObstacleField(cfg, rand.New(rand.NewSource(1)))
}

// run advances f through ticks [from, from+n) and returns the total passes.
func run(f *ObstacleField, from uint64, n int, hitbox core.Rect, birdX float64) int {
	passed := 0
	for i := 0; i < n; i++ {
		ev := f.Advance(Clock{tick: from + uint64(i)}, PhasePlaying, hitbox, birdX)
		passed += ev.Passed
	}
	return passed
}

func TestFieldSpawnCadence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.Speed = 0.1 // Slow enough that nothing leaves the screen
	f := newTestField(cfg)

	run(f, 0, 1000, offscreen, 50)

	if f.Len() != 10 {
		t.Fatalf("Expected 10 obstacles after 1000 playing ticks, got %d", f.Len())
	}
	obs := f.Obstacles()
	for i := 1; i < len(obs); i++ {
		if obs[i].X <= obs[i-1].X {
			t.Errorf("Obstacles out of order at %d: %v then %v", i, obs[i-1].X, obs[i].X)
		}
	}
}

func TestFieldSpawnOffsets(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.SpawnEvery = 1
	cfg.Pipes.Speed = 0
	f := newTestField(cfg)

	run(f, 0, 500, offscreen, 50)

	sawNegative := false
	for _, o := range f.Obstacles() {
		if o.Y > 0 || o.Y <= -150 {
			t.Fatalf("Offset %v outside (-150, 0]", o.Y)
		}
		if o.Y != math.Floor(o.Y) {
			t.Fatalf("Offset %v is not a whole pixel", o.Y)
		}
		if o.X != cfg.Playfield.Width {
			t.Fatalf("Spawn X = %v, expected %v", o.X, cfg.Playfield.Width)
		}
		if o.Y < 0 {
			sawNegative = true
		}
	}
	if !sawNegative {
		t.Error("Expected at least one negative offset in 500 spawns")
	}
}

func TestFieldSpawnReproducible(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := newTestField(cfg)
	b := newTestField(cfg)

	run(a, 0, 600, offscreen, 50)
	run(b, 0, 600, offscreen, 50)

	if a.Len() != b.Len() {
		t.Fatalf("Lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Obstacles() {
		if a.Obstacles()[i] != b.Obstacles()[i] {
			t.Errorf("Obstacle %d differs: %+v vs %+v", i, a.Obstacles()[i], b.Obstacles()[i])
		}
	}
}

func TestFieldEviction(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Pipes.SpawnEvery = 1_000_000 // Only tick 0 spawns
	f := newTestField(cfg)

	// x = 320 - 2k; evicted once x + 52 < 0, i.e. on the 187th advance.
	run(f, 0, 186, offscreen, 50)
	if f.Len() != 1 {
		t.Fatalf("Obstacle with trailing edge at 0 should survive, len = %d", f.Len())
	}
	if x := f.Obstacles()[0].X; x != -52 {
		t.Fatalf("X after 186 ticks = %v, expected -52", x)
	}

	run(f, 186, 1, offscreen, 50)
	if f.Len() != 0 {
		t.Fatalf("Obstacle should be evicted once fully off screen, len = %d", f.Len())
	}
}

func TestFieldScoring(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		wantTick int // Advance index on which the pass is reported
	}{
		{"speed divides the distance", 2, 160},
		{"speed overshoots the bird", 3, 107},
		{"fractional speed", 2.7, 119},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.Pipes.Speed = tc.speed
			cfg.Pipes.SpawnEvery = 1_000_000
			f := newTestField(cfg)

			total := 0
			for i := 0; i < 400; i++ {
				ev := f.Advance(Clock{tick: uint64(i)}, PhasePlaying, offscreen, 50)
				if ev.Passed > 0 && i != tc.wantTick {
					t.Fatalf("Pass reported on advance %d, expected %d", i, tc.wantTick)
				}
				total += ev.Passed
			}
			if total != 1 {
				t.Errorf("Expected exactly one pass, got %d", total)
			}
		})
	}
}

func TestFieldCollision(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	// The pipe scrolls to X=38 before the test, spanning [38, 90).
	// Its gap is [320, 420).
	tests := []struct {
		name   string
		hitbox core.Rect
		want   bool
	}{
		{"inside gap", core.NewRect(55, 330, 24, 16), false},
		{"touching gap edges", core.NewRect(55, 320, 24, 100), false},
		{"into top pipe", core.NewRect(55, 310, 24, 16), true},
		{"into bottom pipe", core.NewRect(55, 410, 24, 16), true},
		{"left of pipe", core.NewRect(0, 0, 24, 16), false},
		{"right of pipe", core.NewRect(100, 0, 24, 16), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestField(cfg)
			f.obstacles = append(f.obstacles, Obstacle{X: 40, Y: 0})

			ev := f.Advance(Clock{tick: 1}, PhasePlaying, tc.hitbox, 50)
			if ev.Collided != tc.want {
				t.Errorf("Collided = %v, expected %v", ev.Collided, tc.want)
			}
		})
	}
}

func TestFieldCollisionKeepsScrolling(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	f := newTestField(cfg)
	f.obstacles = append(f.obstacles,
		Obstacle{X: -1, Y: 0}, // Trailing edge crosses x=50 this tick
		Obstacle{X: 40, Y: 0}, // Overlaps the bird
	)

	ev := f.Advance(Clock{tick: 1}, PhasePlaying, core.NewRect(55, 100, 24, 16), 50)

	if !ev.Collided {
		t.Error("Expected a collision")
	}
	if ev.Passed != 1 {
		t.Errorf("Passed = %d, expected 1", ev.Passed)
	}
	if f.Obstacles()[0].X != -3 || f.Obstacles()[1].X != 38 {
		t.Errorf("Every obstacle should scroll, got %+v", f.Obstacles())
	}
}

func TestFieldFrozenOutsidePlaying(t *testing.T) {
	for _, phase := range []Phase{PhaseReadyToStart, PhaseOver} {
		t.Run(phase.String(), func(t *testing.T) {
			f := newTestField(config.DefaultFlappyConfig())
			f.obstacles = append(f.obstacles, Obstacle{X: 100, Y: -20})

			ev := f.Advance(Clock{tick: 0}, phase, core.NewRect(100, 0, 24, 16), 50)

			if ev.Collided || ev.Passed != 0 {
				t.Errorf("Unexpected events %+v", ev)
			}
			if f.Len() != 1 || f.Obstacles()[0].X != 100 {
				t.Errorf("Field changed outside playing: %+v", f.Obstacles())
			}
		})
	}
}

func TestFieldReset(t *testing.T) {
	f := newTestField(config.DefaultFlappyConfig())
	run(f, 0, 300, offscreen, 50)
	if f.Len() == 0 {
		t.Fatal("Expected obstacles before reset")
	}

	f.Reset()

	if f.Len() != 0 {
		t.Errorf("Reset left %d obstacles", f.Len())
	}
}

func TestObstacleRects(t *testing.T) {
	p := config.DefaultFlappyConfig().Pipes
	o := Obstacle{X: 100, Y: -40}

	if got, want := o.TopRect(p), core.NewRect(100, -40, 52, 320); got != want {
		t.Errorf("TopRect = %+v, expected %+v", got, want)
	}
	if got, want := o.BottomRect(p), core.NewRect(100, 380, 52, 320); got != want {
		t.Errorf("BottomRect = %+v, expected %+v", got, want)
	}
}

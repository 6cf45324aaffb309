package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair: a top pipe hanging down to Y+height and a bottom
// pipe starting Y+height+gap. Y is zero or negative, so gaps sit high.
type Obstacle struct {
	X float64 // Left edge
	Y float64 // Top of the top pipe
}

// TopRect returns the bounds of the upper pipe.
func (o Obstacle) TopRect(p config.FlappyPipes) core.Rect {
	return core.NewRect(o.X, o.Y, p.Width, p.Height)
}

// BottomRect returns the bounds of the lower pipe.
func (o Obstacle) BottomRect(p config.FlappyPipes) core.Rect {
	return core.NewRect(o.X, o.Y+p.Height+p.Gap, p.Width, p.Height)
}

// FieldEvents reports what happened during one ObstacleField.Advance.
type FieldEvents struct {
	Collided bool // The bird hit at least one pipe
	Passed   int  // Pipes whose trailing edge crossed the bird this tick
}

// ObstacleField spawns, scrolls, collides and evicts pipe pairs.
// Obstacles are kept oldest first, which is also left to right.
type ObstacleField struct {
	obstacles []Obstacle
	cfg       config.FlappyPipes
	spawnX    float64
	rng       *rand.Rand
}

// NewObstacleField creates an empty field. rng drives the gap offsets.
func NewObstacleField(cfg config.FlappyConfig, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		cfg:       cfg.Pipes,
		spawnX:    cfg.Playfield.Width,
		rng:       rng,
	}
}

// Reset removes every obstacle.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Obstacles returns the live obstacles, oldest first.
// The slice is owned by the field; copy it to keep it past the next tick.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Advance runs one tick. Outside PhasePlaying the field is frozen.
//
// hitbox is the bird's inset hitbox and birdX its fixed left edge. A
// collision does not cut the tick short: every obstacle still scrolls and
// can still score, and the caller turns any number of hits into a single
// game-over transition.
func (f *ObstacleField) Advance(clock Clock, phase Phase, hitbox core.Rect, birdX float64) FieldEvents {
	var ev FieldEvents
	if phase != PhasePlaying {
		return ev
	}

	if clock.Every(f.cfg.SpawnEvery) {
		f.spawn()
	}

	w := f.cfg.Width
	for i := range f.obstacles {
		o := &f.obstacles[i]
		prevTrailing := o.X + w
		o.X -= f.cfg.Speed

		if f.hits(*o, hitbox) {
			ev.Collided = true
		}

		// Crossing test rather than equality: speeds that do not divide the
		// distance to the bird would otherwise never score.
		if prevTrailing > birdX && o.X+w <= birdX {
			ev.Passed++
		}
	}

	for len(f.obstacles) > 0 && f.obstacles[0].X+w < 0 {
		f.obstacles = f.obstacles[1:]
	}

	return ev
}

// spawn appends a new obstacle at the right edge.
func (f *ObstacleField) spawn() {
	offset := -math.Floor(f.rng.Float64() * float64(f.cfg.MaxOffset))
	f.obstacles = append(f.obstacles, Obstacle{X: f.spawnX, Y: offset})
}

// hits reports whether the hitbox overlaps the pipe horizontally while
// sticking out of the gap band vertically.
func (f *ObstacleField) hits(o Obstacle, hitbox core.Rect) bool {
	top := o.TopRect(f.cfg)
	if !hitbox.OverlapsX(top) {
		return false
	}
	gapTop := top.Bottom()
	gapBottom := gapTop + f.cfg.Gap
	return hitbox.Y < gapTop || hitbox.Bottom() > gapBottom
}

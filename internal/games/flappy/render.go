package flappy

import "fmt"

// Sprite identifies an image the renderer knows how to draw.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteBird0             // Wings up
	SpriteBird1             // Wings level
	SpriteBird2             // Wings down
	SpritePipe              // Upright pipe, cap on top
)

// BirdSprite returns the sprite for an animation frame.
func BirdSprite(frame int) Sprite {
	return SpriteBird0 + Sprite(frame%3)
}

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBird0, SpriteBird1, SpriteBird2:
		return fmt.Sprintf("bird%d", int(s-SpriteBird0))
	case SpritePipe:
		return "pipe"
	default:
		return fmt.Sprintf("Sprite(%d)", int(s))
	}
}

// Renderer draws in playfield pixels. The world never reads anything back.
type Renderer interface {
	// DrawSprite draws a sprite into the box (x, y, w, h).
	DrawSprite(s Sprite, x, y, w, h float64)
	// DrawSpriteRotated draws a sprite rotated by angle radians about the box centre.
	DrawSpriteRotated(s Sprite, x, y, w, h, angle float64)
	// DrawSpriteFlippedV draws a sprite mirrored top to bottom.
	DrawSpriteFlippedV(s Sprite, x, y, w, h float64)
	// DrawDigits draws a number centred on centerX.
	DrawDigits(value int, centerX, y float64)
	// DrawText draws a label centred on centerX.
	DrawText(label string, centerX, y float64)
	// SetOrigin offsets every following draw call until reset to (0, 0).
	SetOrigin(dx, dy float64)
}

// HUD layout in playfield pixels.
const (
	hudScoreY      = 50
	hudOverY       = 300
	hudDigitsBelow = 25
	hudReadyY      = 100
)

// Render draws the current frame: background, pipes, bird, then the HUD.
// While the shake is armed the whole frame is offset by a fresh random amount.
func (w *World) Render(r Renderer) {
	pf := w.cfg.Playfield

	dx, dy := w.shake.Offset()
	r.SetOrigin(dx, dy)
	defer r.SetOrigin(0, 0)

	r.DrawSprite(SpriteBackground, 0, 0, pf.Width, pf.Height)

	p := w.cfg.Pipes
	for _, o := range w.field.Obstacles() {
		top := o.TopRect(p)
		r.DrawSpriteFlippedV(SpritePipe, top.X, top.Y, top.W, top.H)
		bottom := o.BottomRect(p)
		r.DrawSprite(SpritePipe, bottom.X, bottom.Y, bottom.W, bottom.H)
	}

	b := w.bird.Rect()
	r.DrawSpriteRotated(BirdSprite(w.bird.Frame()), b.X, b.Y, b.W, b.H, w.bird.Rotation())

	switch w.phase {
	case PhaseReadyToStart:
		r.DrawText("GET READY", pf.Width/2, hudReadyY)
		r.DrawText("TAP TO FLAP", pf.Width/2, hudOverY)
	case PhasePlaying:
		r.DrawDigits(w.score.Current(), pf.Width/2, hudScoreY)
	case PhaseOver:
		left, right := pf.Width/4, pf.Width*3/4
		r.DrawText("SCORE", left, hudOverY)
		r.DrawText("BEST", right, hudOverY)
		r.DrawDigits(w.score.Current(), left, hudOverY+hudDigitsBelow)
		r.DrawDigits(w.score.Best(), right, hudOverY+hudDigitsBelow)
	}
}

package flappy

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Glyphs for the terminal sprites.
const (
	PipeChar     = '█'
	PipeCapChar  = '▓'
	BirdChar     = '█'
	GroundChar   = '▀'
	WallChar     = '│'
	beakLevel    = '→'
	beakClimb    = '↗'
	beakDescend  = '↘'
	beakNoseDive = '↓'
)

// wingGlyphs is indexed by animation frame.
var wingGlyphs = [3]rune{'▀', '■', '▄'}

// ScreenRenderer draws playfield pixels onto a character Screen. The
// playfield is scaled to fit, keeps its aspect ratio and is centred.
// Nothing is drawn outside the playfield except the frame around it.
type ScreenRenderer struct {
	dst    *core.Screen
	sx, sy float64 // Cells per pixel
	left   int     // First playfield column
	top    int     // First playfield row
	cols   int     // Playfield width in cells
	rows   int     // Playfield height in cells
	ox, oy float64 // Origin offset in pixels
}

// NewScreenRenderer fits the playfield into dst.
func NewScreenRenderer(dst *core.Screen, pf config.FlappyPlayfield) *ScreenRenderer {
	sx := math.Min(float64(dst.Width())/pf.Width, cellAspect*float64(dst.Height())/pf.Height)
	sy := sx / cellAspect
	cols := int(math.Round(pf.Width * sx))
	rows := int(math.Round(pf.Height * sy))

	return &ScreenRenderer{
		dst:  dst,
		sx:   sx,
		sy:   sy,
		left: (dst.Width() - cols) / 2,
		top:  (dst.Height() - rows) / 2,
		cols: cols,
		rows: rows,
	}
}

// SetOrigin offsets subsequent draws by (dx, dy) pixels.
func (r *ScreenRenderer) SetOrigin(dx, dy float64) {
	r.ox, r.oy = dx, dy
}

// col maps a playfield x to a screen column.
func (r *ScreenRenderer) col(x float64) int {
	return r.left + int(math.Round((x+r.ox)*r.sx))
}

// row maps a playfield y to a screen row.
func (r *ScreenRenderer) row(y float64) int {
	return r.top + int(math.Round((y+r.oy)*r.sy))
}

// span maps a pixel box to a cell box [c0, c1) × [r0, r1). Any box with a
// positive size covers at least one cell.
func (r *ScreenRenderer) span(x, y, w, h float64) (c0, r0, c1, r1 int) {
	c0, c1 = r.col(x), r.col(x+w)
	r0, r1 = r.row(y), r.row(y+h)
	if w > 0 && c1 <= c0 {
		c1 = c0 + 1
	}
	if h > 0 && r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

// set writes a cell if it lies inside the playfield.
func (r *ScreenRenderer) set(c, rw int, ch rune, color core.Color) {
	if c < r.left || c >= r.left+r.cols || rw < r.top || rw >= r.top+r.rows {
		return
	}
	r.dst.Set(c, rw, ch, color)
}

// fill paints the cell box clipped to the playfield.
func (r *ScreenRenderer) fill(c0, r0, c1, r1 int, ch rune, color core.Color) {
	c0, c1 = max(c0, r.left), min(c1, r.left+r.cols)
	r0, r1 = max(r0, r.top), min(r1, r.top+r.rows)
	r.dst.FillRect(c0, r0, c1, r1, ch, color)
}

// DrawSprite draws the background, an upright pipe or a level bird.
// Unknown sprites are skipped.
func (r *ScreenRenderer) DrawSprite(s Sprite, x, y, w, h float64) {
	switch s {
	case SpriteBackground:
		r.drawBackground()
	case SpritePipe:
		c0, r0, c1, r1 := r.span(x, y, w, h)
		r.fill(c0, r0, c1, r1, PipeChar, core.ColorPipe)
		r.fill(c0, r0, c1, r0+1, PipeCapChar, core.ColorPipeCap)
	case SpriteBird0, SpriteBird1, SpriteBird2:
		r.DrawSpriteRotated(s, x, y, w, h, 0)
	}
}

// DrawSpriteFlippedV draws a pipe with its cap at the bottom.
func (r *ScreenRenderer) DrawSpriteFlippedV(s Sprite, x, y, w, h float64) {
	if s != SpritePipe {
		r.DrawSprite(s, x, y, w, h)
		return
	}
	c0, r0, c1, r1 := r.span(x, y, w, h)
	r.fill(c0, r0, c1, r1, PipeChar, core.ColorPipe)
	r.fill(c0, r1-1, c1, r1, PipeCapChar, core.ColorPipeCap)
}

// DrawSpriteRotated draws the bird. Cells cannot rotate, so the angle
// picks the beak glyph instead.
func (r *ScreenRenderer) DrawSpriteRotated(s Sprite, x, y, w, h, angle float64) {
	if s < SpriteBird0 || s > SpriteBird2 {
		r.DrawSprite(s, x, y, w, h)
		return
	}
	c0, r0, c1, r1 := r.span(x, y, w, h)
	r.fill(c0, r0, c1, r1, BirdChar, core.ColorBird)

	mid := r0 + (r1-r0-1)/2
	r.set(c0, mid, wingGlyphs[s-SpriteBird0], core.ColorBird)
	r.set(c1-1, mid, beakFor(angle), core.ColorBeak)
}

// beakFor picks a glyph for the bird's rotation in radians.
func beakFor(angle float64) rune {
	deg := core.Degrees(angle)
	switch {
	case deg <= -10:
		return beakClimb
	case deg >= 60:
		return beakNoseDive
	case deg >= 15:
		return beakDescend
	default:
		return beakLevel
	}
}

// DrawDigits draws a number centred on centerX.
func (r *ScreenRenderer) DrawDigits(value int, centerX, y float64) {
	r.drawCentered(strconv.Itoa(value), centerX, y, core.ColorScore)
}

// DrawText draws a label centred on centerX.
func (r *ScreenRenderer) DrawText(label string, centerX, y float64) {
	r.drawCentered(label, centerX, y, core.ColorLabel)
}

func (r *ScreenRenderer) drawCentered(text string, centerX, y float64, color core.Color) {
	runes := []rune(text)
	start := r.col(centerX) - len(runes)/2
	rw := r.row(y)
	for i, ch := range runes {
		r.set(start+i, rw, ch, color)
	}
}

// drawBackground clears the playfield and frames it with walls and ground.
func (r *ScreenRenderer) drawBackground() {
	r.fill(r.left, r.top, r.left+r.cols, r.top+r.rows, ' ', core.ColorSky)

	// The frame sits outside the playfield, so write it directly.
	for y := r.top; y < r.top+r.rows; y++ {
		r.dst.Set(r.left-1, y, WallChar, core.ColorGround)
		r.dst.Set(r.left+r.cols, y, WallChar, core.ColorGround)
	}
	r.dst.DrawHLine(r.left-1, r.top+r.rows, r.cols+2, GroundChar, core.ColorGround)
}

// Draw clears dst and renders the current frame onto it.
func (w *World) Draw(dst *core.Screen) {
	dst.Clear()
	w.Render(NewScreenRenderer(dst, w.cfg.Playfield))
}

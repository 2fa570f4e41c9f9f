// Package draw renders frame snapshots to a terminal using half-block
// characters.
package draw

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhrabos/nebuloids/internal/loop"
	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
	"github.com/mhrabos/nebuloids/internal/shape"
)

// Ship body in model space: nose up at rotation 0, unit-sized; scaled by the
// ship's scale at draw time.
var shipModel = []physics.Vec2{
	{X: 0, Y: 1},
	{X: -1, Y: -1},
	{X: 1, Y: -1},
}

// Thrust flame in model space, trailing below the ship.
var flameModel = []physics.Vec2{
	{X: 0, Y: 0},
	{X: -0.5, Y: -1},
	{X: 0.5, Y: -1},
}

const flameScale = 1.5 // Relative to the ship's scale

var (
	shipFill    = object.Color{R: 0.2, G: 0.7, B: 0.7}
	shipOutline = object.Color{R: 0.5, G: 1.0, B: 1.0}
	flameFill   = object.Color{R: 1.0, G: 1.0, B: 0.0}
	bulletColor = object.Color{R: 1.0, G: 0.0, B: 0.0}
)

// TerminalOptions configure a Terminal renderer.
type TerminalOptions struct {
	TermSizeFunc TermSizeFunc // Defaults to reading os.Stdout
	NoColor      bool         // Render monochrome (skip all SGR sequences)
}

// Terminal renders frames to a terminal writer. It resolves shape handles in
// the snapshot against the arena that issued them.
type Terminal struct {
	w        *bufio.Writer
	shapes   *shape.Arena
	sizeFunc TermSizeFunc
	canvas   *Canvas
	useColor bool

	scoreStyle  lipgloss.Style
	bannerStyle lipgloss.Style

	ptsBuf []physics.Vec2 // Reused polygon vertex buffer
}

// NewTerminal creates a renderer writing to w.
func NewTerminal(w io.Writer, shapes *shape.Arena, opts TerminalOptions) *Terminal {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	return &Terminal{
		w:           bufio.NewWriterSize(w, 16384),
		shapes:      shapes,
		sizeFunc:    sizeFunc,
		canvas:      NewCanvas(80, 24),
		useColor:    !opts.NoColor,
		scoreStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		bannerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

// Render draws one frame snapshot.
func (t *Terminal) Render(f *loop.Frame) error {
	width, height, err := t.sizeFunc()
	if err != nil {
		return err
	}
	t.canvas.Resize(width, height)
	t.canvas.Clear()

	// The ship disappears on game over; asteroids and bullets stay visible.
	if !f.GameOver {
		if f.Thrusting {
			t.drawModel(flameModel, f.Ship.Position, f.Ship.Rotation, f.Ship.Scale*flameScale, flameFill, &flameFill)
		}
		t.drawModel(shipModel, f.Ship.Position, f.Ship.Rotation, f.Ship.Scale, shipOutline, &shipFill)
	}

	for i := range f.Asteroids {
		t.drawAsteroid(&f.Asteroids[i])
	}

	for _, p := range f.Bullets {
		t.canvas.SetWorld(p, bulletColor)
	}

	ClearScreen(t.w)
	if err := t.canvas.Render(t.w, t.useColor); err != nil {
		return err
	}
	t.drawHUD(f)

	return t.w.Flush()
}

// drawModel draws a model-space polygon transformed by position, rotation,
// and scale.
func (t *Terminal) drawModel(model []physics.Vec2, pos physics.Vec2, rotation, scale float64, outline object.Color, fill *object.Color) {
	pts := t.borrowPoints(len(model))
	sin, cos := math.Sincos(rotation)
	for i, v := range model {
		pts[i] = physics.Vec2{
			X: pos.X + (v.X*cos-v.Y*sin)*scale,
			Y: pos.Y + (v.X*sin+v.Y*cos)*scale,
		}
	}
	t.canvas.PolygonWorld(pts, outline, fill)
}

// drawAsteroid draws an asteroid's irregular outline, fill darkened and
// outline brightened from its base color.
func (t *Terminal) drawAsteroid(a *loop.AsteroidPose) {
	dists := t.shapes.Outline(a.Shape)
	if len(dists) < 3 {
		return
	}

	pts := t.borrowPoints(len(dists))
	step := 2 * math.Pi / float64(len(dists))
	for i, d := range dists {
		angle := a.Rotation + float64(i)*step
		pts[i] = physics.Vec2{
			X: a.Position.X + math.Cos(angle)*d*a.Scale,
			Y: a.Position.Y + math.Sin(angle)*d*a.Scale,
		}
	}

	fill := a.Color.Scale(0.5)
	t.canvas.PolygonWorld(pts, a.Color.Scale(1.5), &fill)
}

// drawHUD writes the score and, on game over, the restart banner.
func (t *Terminal) drawHUD(f *loop.Frame) {
	score := t.style(t.scoreStyle, "SCORE "+strconv.Itoa(f.Score))
	MoveCursor(t.w, t.canvas.OffsetCol()+2, t.canvas.OffsetRow()+1)
	io.WriteString(t.w, score)

	if f.GameOver {
		banner := t.style(t.bannerStyle, "GAME OVER - press enter to restart, q to quit")
		col := t.canvas.OffsetCol() + t.canvas.Cols()/2 - lipgloss.Width(banner)/2
		if col < 1 {
			col = 1
		}
		MoveCursor(t.w, col, t.canvas.OffsetRow()+t.canvas.Rows()/2)
		io.WriteString(t.w, banner)
	}
}

// style applies s unless color is disabled.
func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.useColor {
		return text
	}
	return s.Render(text)
}

func (t *Terminal) borrowPoints(n int) []physics.Vec2 {
	if cap(t.ptsBuf) < n {
		t.ptsBuf = make([]physics.Vec2, n)
	}
	return t.ptsBuf[:n]
}

var _ loop.Renderer = (*Terminal)(nil)

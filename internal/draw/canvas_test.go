package draw

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
)

func TestCanvasFitsSquarePlayArea(t *testing.T) {
	c := NewCanvas(80, 24)

	// Height is the limit: 24 rows give 48 sub-pixels, so 48 columns.
	assert.Equal(t, 48, c.Cols())
	assert.Equal(t, 24, c.Rows())
	assert.Equal(t, 16, c.OffsetCol())
	assert.Equal(t, 0, c.OffsetRow())

	// Width-limited terminal.
	c.Resize(40, 60)
	assert.Equal(t, 40, c.Cols())
	assert.Equal(t, 20, c.Rows())
	assert.Equal(t, 0, c.OffsetCol())
	assert.Equal(t, 20, c.OffsetRow())
}

func TestToPixelMapping(t *testing.T) {
	c := NewCanvas(48, 24)

	topLeft := c.toPixel(physics.Vec2{X: -1, Y: 1})
	assert.Equal(t, pixelPoint{X: 0, Y: 0}, topLeft)

	bottomRight := c.toPixel(physics.Vec2{X: 1, Y: -1})
	assert.Equal(t, pixelPoint{X: c.Cols() - 1, Y: c.subRows - 1}, bottomRight)

	center := c.toPixel(physics.Vec2{})
	assert.InDelta(t, float64(c.Cols())/2, float64(center.X), 1.0)
	assert.InDelta(t, float64(c.subRows)/2, float64(center.Y), 1.0)
}

func TestRenderEmitsBlockCharacters(t *testing.T) {
	c := NewCanvas(20, 10)
	c.SetWorld(physics.Vec2{}, object.Color{R: 1})

	var sb strings.Builder
	require.NoError(t, c.Render(&sb, false))

	out := sb.String()
	assert.True(t,
		strings.ContainsRune(out, BlockUpperHalf) ||
			strings.ContainsRune(out, BlockLowerHalf) ||
			strings.ContainsRune(out, BlockFull),
		"output should contain a half-block character: %q", out)
	assert.NotContains(t, out, "\033[38", "monochrome render must not emit color sequences")
}

func TestRenderEmitsTruecolor(t *testing.T) {
	c := NewCanvas(20, 10)
	c.SetWorld(physics.Vec2{}, object.Color{R: 1})

	var sb strings.Builder
	require.NoError(t, c.Render(&sb, true))

	assert.Contains(t, sb.String(), "\033[38;2;255;0;0m")
	assert.Contains(t, sb.String(), "\033[0m")
}

func TestDrawOutsideWorldIsIgnored(t *testing.T) {
	c := NewCanvas(20, 10)
	c.SetWorld(physics.Vec2{X: 5, Y: 5}, object.Color{R: 1})
	c.LineWorld(physics.Vec2{X: 3}, physics.Vec2{X: 4}, object.Color{R: 1})

	var sb strings.Builder
	require.NoError(t, c.Render(&sb, false))
	assert.Empty(t, sb.String())
}

func TestPolygonFillCoversInterior(t *testing.T) {
	c := NewCanvas(40, 20)
	fill := object.Color{G: 1}
	c.PolygonWorld([]physics.Vec2{
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: -0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: 0.5},
	}, object.Color{R: 1}, &fill)

	// The world center lies inside the square.
	center := c.toPixel(physics.Vec2{})
	assert.NotZero(t, c.pixels[center.Y*c.Cols()+center.X])
}

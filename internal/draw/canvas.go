package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mhrabos/nebuloids/internal/object"
	"github.com/mhrabos/nebuloids/internal/physics"
)

// maxChunkSize is the maximum bytes to write at once. 1400 bytes stays under
// a typical MTU so frames flow smoothly even over slow links.
const maxChunkSize = 1400

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. It maps the square [-1,1]×[-1,1] world onto the largest square
// region that fits the terminal, centered. Each sub-pixel carries a color.
type Canvas struct {
	cols    int // Terminal columns used for the play area
	rows    int // Terminal rows used for the play area
	subRows int // rows * 2

	// pixels is a flat [y*cols+x] slice of packed colors; 0 means unset.
	pixels []uint32

	// Offsets for centering the play area in a larger terminal (0-based).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce per-frame allocations.
	renderBuf       strings.Builder
	pointBuf        []pixelPoint
	intersectionBuf []float64
	numBuf          [16]byte
}

type pixelPoint struct {
	X, Y int
}

// NewCanvas creates a canvas sized for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int) *Canvas {
	c := &Canvas{}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize fits the square play area into the terminal and recenters it.
// Half-block sub-pixels are roughly square, so a square world needs
// cols == rows*2.
func (c *Canvas) Resize(termWidth, termHeight int) {
	side := termWidth
	if termHeight*2 < side {
		side = termHeight * 2
	}
	if side < 2 {
		side = 2
	}

	cols := side
	rows := (side + 1) / 2
	if cols != c.cols || rows != c.rows {
		c.cols = cols
		c.rows = rows
		c.subRows = rows * 2
		c.pixels = make([]uint32, c.subRows*cols)
	}

	c.offsetCol = (termWidth - cols) / 2
	c.offsetRow = (termHeight - rows) / 2
	if c.offsetCol < 0 {
		c.offsetCol = 0
	}
	if c.offsetRow < 0 {
		c.offsetRow = 0
	}
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Cols returns the terminal column count of the play area.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count of the play area.
func (c *Canvas) Rows() int { return c.rows }

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// packColor packs an RGB color into a non-zero uint32 so that "unset" and
// "black" stay distinguishable.
func packColor(col object.Color) uint32 {
	r := uint32(col.R*255+0.5) & 0xff
	g := uint32(col.G*255+0.5) & 0xff
	b := uint32(col.B*255+0.5) & 0xff
	return 1<<24 | r<<16 | g<<8 | b
}

// toPixel converts world coordinates (+Y up) to sub-pixel coordinates (+Y down).
func (c *Canvas) toPixel(p physics.Vec2) pixelPoint {
	return pixelPoint{
		X: int(math.Round((p.X + 1) / 2 * float64(c.cols-1))),
		Y: int(math.Round((1 - p.Y) / 2 * float64(c.subRows-1))),
	}
}

func (c *Canvas) setPixel(x, y int, packed uint32) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		c.pixels[y*c.cols+x] = packed
	}
}

// SetWorld sets the pixel at a world position.
func (c *Canvas) SetWorld(p physics.Vec2, col object.Color) {
	px := c.toPixel(p)
	c.setPixel(px.X, px.Y, packColor(col))
}

// LineWorld draws a line between two world positions using Bresenham's
// algorithm.
func (c *Canvas) LineWorld(p1, p2 physics.Vec2, col object.Color) {
	c.line(c.toPixel(p1), c.toPixel(p2), packColor(col))
}

func (c *Canvas) line(a, b pixelPoint, packed uint32) {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}

	err := dx - dy
	x, y := a.X, a.Y

	for {
		c.setPixel(x, y, packed)

		if x == b.X && y == b.Y {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// PolygonWorld draws a polygon given in world coordinates. If fill is
// non-nil the interior is filled with *fill before the outline is drawn.
func (c *Canvas) PolygonWorld(points []physics.Vec2, outline object.Color, fill *object.Color) {
	if len(points) < 3 {
		return
	}

	if cap(c.pointBuf) < len(points) {
		c.pointBuf = make([]pixelPoint, len(points))
	}
	px := c.pointBuf[:len(points)]
	for i, p := range points {
		px[i] = c.toPixel(p)
	}

	if fill != nil {
		c.fillPolygon(px, packColor(*fill))
	}

	packed := packColor(outline)
	n := len(px)
	for i := 0; i < n; i++ {
		c.line(px[i], px[(i+1)%n], packed)
	}
}

// fillPolygon fills a polygon in pixel space using the scanline algorithm.
func (c *Canvas) fillPolygon(points []pixelPoint, packed uint32) {
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for y := minY; y <= maxY; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			y1, y2 := float64(p1.Y), float64(p2.Y)

			if (y1 <= scanY && y2 > scanY) || (y2 <= scanY && y1 > scanY) {
				t := (scanY - y1) / (y2 - y1)
				x := float64(p1.X) + t*float64(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, packed)
			}
		}
	}
}

// Render writes the canvas to w using half-block characters. When useColor
// is false, SGR sequences are skipped entirely. Output is chunked for
// smooth flow on slow writers.
func (c *Canvas) Render(w io.Writer, useColor bool) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 8)

	lastColor := uint32(0)

	for row := 0; row < c.rows; row++ {
		topOffset := (row * 2) * c.cols
		bottomOffset := (row*2 + 1) * c.cols

		for col := 0; col < c.cols; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			var cellColor uint32
			switch {
			case top != 0 && bottom != 0:
				ch = BlockFull
				cellColor = top
			case top != 0:
				ch = BlockUpperHalf
				cellColor = top
			case bottom != 0:
				ch = BlockLowerHalf
				cellColor = bottom
			default:
				continue // Skip empty cells
			}

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			if useColor && cellColor != lastColor {
				c.sgrColor(cellColor)
				lastColor = cellColor
			}
			c.renderBuf.WriteRune(ch)
		}
	}

	if useColor && lastColor != 0 {
		c.renderBuf.WriteString("\033[0m")
	}

	return flushChunked(w, c.renderBuf.String())
}

// moveCursor appends an ANSI cursor position sequence (1-based).
func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// sgrColor appends a truecolor foreground sequence for a packed color.
func (c *Canvas) sgrColor(packed uint32) {
	c.renderBuf.WriteString("\033[38;2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(packed>>16&0xff), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(packed>>8&0xff), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(packed&0xff), 10))
	c.renderBuf.WriteByte('m')
}

// flushChunked writes data to w in chunks of at most maxChunkSize bytes.
func flushChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2
	pixels         []colorful.Color
	set            []bool // Flat slice: [y * termWidth + x] - true if pixel is painted

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Logical offset added to every draw call (screen shake).
	shiftX, shiftY float64

	// Offset for centering the render area when terminal is larger than max resolution.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.set = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// SetShift translates all subsequent drawing by (dx, dy) logical units.
func (c *Canvas) SetShift(dx, dy float64) {
	c.shiftX = dx
	c.shiftY = dy
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.set)
}

func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	return (x + c.shiftX) * c.scaleX, (y + c.shiftY) * c.scaleY
}

// setPixel paints a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col colorful.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		i := y*c.termWidth + x
		c.pixels[i] = col
		c.set[i] = true
	}
}

// IsSet reports whether the pixel containing logical (x, y) has been painted.
func (c *Canvas) IsSet(x, y float64) bool {
	px, py := c.toPixel(x, y)
	ix, iy := int(math.Round(px)), int(math.Round(py))
	if ix < 0 || ix >= c.termWidth || iy < 0 || iy >= c.subPixelHeight {
		return false
	}
	return c.set[iy*c.termWidth+ix]
}

// Plot paints a single pixel at float logical coordinates.
func (c *Canvas) Plot(x, y float64, col colorful.Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(int(math.Round(px)), int(math.Round(py)), col)
}

// FillCircle paints a disc of logical radius r. Discs smaller than a pixel
// still paint their center pixel.
func (c *Canvas) FillCircle(x, y, r float64, col colorful.Color) {
	px, py := c.toPixel(x, y)
	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx < 0.5 && ry < 0.5 {
		c.setPixel(int(math.Round(px)), int(math.Round(py)), col)
		return
	}
	x0, x1 := int(math.Floor(px-rx)), int(math.Ceil(px+rx))
	y0, y1 := int(math.Floor(py-ry)), int(math.Ceil(py+ry))
	for iy := y0; iy <= y1; iy++ {
		for ix := x0; ix <= x1; ix++ {
			dx := (float64(ix) - px) / math.Max(rx, 0.5)
			dy := (float64(iy) - py) / math.Max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				c.setPixel(ix, iy, col)
			}
		}
	}
}

// StrokeCircle paints the outline of a circle of logical radius r.
func (c *Canvas) StrokeCircle(x, y, r float64, col colorful.Color) {
	// One sample per pixel of circumference, at least 12.
	n := int(2 * math.Pi * r * math.Max(c.scaleX, c.scaleY))
	if n < 12 {
		n = 12
	}
	for i := 0; i < n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		c.Plot(x+math.Cos(a)*r, y+math.Sin(a)*r, col)
	}
}

// FillRect paints an axis-aligned rectangle given in logical units.
func (c *Canvas) FillRect(x, y, w, h float64, col colorful.Color) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	px0, py0 := c.toPixel(x, y)
	px1, py1 := c.toPixel(x+w, y+h)
	for iy := int(math.Floor(py0)); iy <= int(math.Ceil(py1)); iy++ {
		for ix := int(math.Floor(px0)); ix <= int(math.Ceil(px1)); ix++ {
			c.setPixel(ix, iy, col)
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col colorful.Color) {
	fx1, fy1 := c.toPixel(p1.X, p1.Y)
	fx2, fy2 := c.toPixel(p2.X, p2.Y)
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool, col colorful.Color) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, col)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col colorful.Color) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		x, y := c.toPixel(p.X, p.Y)
		scaled[i] = Point{X: x, Y: y}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.set[topOffset+col]
			bottom := c.set[bottomOffset+col]
			if !top && !bottom {
				continue
			}

			c.writeCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			switch {
			case top && bottom:
				c.writeColor(38, c.pixels[topOffset+col])
				c.writeColor(48, c.pixels[bottomOffset+col])
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top:
				c.writeColor(38, c.pixels[topOffset+col])
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				c.writeColor(38, c.pixels[bottomOffset+col])
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(ansiReset)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) writeCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// writeColor appends a 24-bit SGR sequence; layer is 38 (foreground) or 48 (background).
func (c *Canvas) writeColor(layer int, col colorful.Color) {
	r, g, b := col.Clamped().RGB255()
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(r), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(g), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(b), 10))
	c.renderBuf.WriteByte('m')
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

package object

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
)

// Text is a HUD label drawn over the canvas.
// Coordinates are 1-based terminal positions.
type Text struct {
	Col      int
	Row      int
	Value    string
	Color    colorful.Color
	Bold     bool
	Centered bool // Col is the center column
}

// Draw writes the label through cw.
func (t Text) Draw(cw *draw.ChunkWriter) {
	if t.Value == "" {
		return
	}
	col, row := max(t.Col, 1), max(t.Row, 1)
	if t.Centered {
		cw.WriteCentered(col, row, t.Value, t.Color, t.Bold)
		return
	}
	cw.WriteColoredAt(col, row, t.Value, t.Color, t.Bold)
}

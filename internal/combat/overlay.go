package combat

import (
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
)

// AttackKind names a hero attack for the overlay.
type AttackKind int

const (
	AttackLaser AttackKind = iota
	AttackRockets
	AttackCombo
)

func (k AttackKind) String() string {
	switch k {
	case AttackRockets:
		return "rockets"
	case AttackCombo:
		return "combo"
	default:
		return "laser"
	}
}

type attackName struct {
	text  string
	color colorful.Color
}

var attackNames = map[AttackKind]attackName{
	AttackLaser:   {"EC2 ELASTIC BEAM", draw.Hex("#ffaa00")},
	AttackRockets: {"LAMBDA SWARM", draw.Hex("#ff4400")},
	AttackCombo:   {"BEDROCK COMBO", draw.Hex("#d900ff")},
}

// Overlay timing.
const (
	attackOverlayLife  = 1.5 // seconds
	captionOverlayLife = 2.0
	overlayStartScale  = 0.5
	overlayMaxScale    = 1.2
	overlayGrowth      = 0.05 // Per reference frame
)

// overlaySubline is printed under every banner.
const overlaySubline = ">>> SYSTEM OVERRIDE ENGAGED <<<"

// Overlay is the single zooming banner in the middle of the screen. A new
// banner replaces the current one immediately.
type Overlay struct {
	Active bool
	Text   string
	Color  colorful.Color
	Life   float64 // Seconds left
	Scale  float64
}

// ShowAttack displays the name of a hero attack.
func (o *Overlay) ShowAttack(kind AttackKind) {
	info, ok := attackNames[kind]
	if !ok {
		return
	}
	o.show(info.text, info.color, attackOverlayLife)
}

// ShowCaption displays free text, such as a boss taunt.
func (o *Overlay) ShowCaption(text string, color colorful.Color) {
	if text == "" {
		return
	}
	o.show(text, color, captionOverlayLife)
}

func (o *Overlay) show(text string, color colorful.Color, life float64) {
	*o = Overlay{Active: true, Text: text, Color: color, Life: life, Scale: overlayStartScale}
}

func (o *Overlay) update(dt time.Duration, step float64) {
	if !o.Active {
		return
	}
	if o.Scale < overlayMaxScale {
		o.Scale += overlayGrowth * step
	}
	o.Life -= dt.Seconds()
	if o.Life <= 0 {
		o.Active = false
	}
}

// Banner returns the text as rendered at the current zoom: letters are spaced
// apart once the banner has grown past full size.
func (o *Overlay) Banner() string {
	if !o.Active {
		return ""
	}
	if o.Scale < 1 || len(o.Text) > 20 {
		return o.Text
	}
	return strings.Join(strings.Split(o.Text, ""), " ")
}

// Subline returns the line drawn under the banner.
func (o *Overlay) Subline() string {
	if !o.Active {
		return ""
	}
	return overlaySubline
}

// Package config centralizes the tunables of the terminal host.
package config

import "time"

// Logical surface. The height is fixed; the width follows the terminal's
// aspect ratio within these limits.
const (
	LogicalHeight   = 800
	MinLogicalWidth = 480
	MaxLogicalWidth = 2000
)

// Max render resolution in terminal cells. Larger terminals are centered.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80

	FallbackTermWidth  = 80 // When the size cannot be read
	FallbackTermHeight = 24
)

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxFrameDelta   = 100 * time.Millisecond // Longer stalls are clamped
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Quiz panel
const (
	PanelMaxWidth = 100 // Columns
	PanelRows     = 9
)

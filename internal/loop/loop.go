// Package loop hosts a fight in a terminal: it reads keys, advances the game
// and paints the canvas plus its text layers every frame.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/input"
	"github.com/tomz197/quizboss/internal/loop/config"
)

// Options configures a terminal session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Audio        Audio
	Rand         *rand.Rand
	Logger       *log.Logger
}

// runner is the per-terminal frame driver.
type runner struct {
	game         *Game
	canvas       *draw.Canvas
	cw           *draw.ChunkWriter // Accumulates the frame for chunked output
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc
	log          *log.Logger

	termWidth, termHeight int
	offsetCol, offsetRow  int

	lastInput time.Time
	inactive  bool
}

// Run starts the main loop with the standard Input → Update → Draw cycle. It
// blocks until the player quits, the input closes or the player idles out.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	rn := &runner{
		cw:           draw.NewChunkWriter(w, 0, 0),
		stream:       input.StartStream(r),
		termSizeFunc: opts.TermSizeFunc,
		log:          opts.Logger.WithPrefix("loop"),
		lastInput:    time.Now(),
	}
	rn.game = NewGame(GameOptions{Audio: opts.Audio, Rand: opts.Rand, Logger: opts.Logger})
	rn.updateScreen()
	defer rn.game.Silence()

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()
	for {
		frameStart := time.Now()
		delta := min(frameStart.Sub(lastTime), config.MaxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(rn.stream)
		if !rn.trackActivity(in) {
			break
		}
		if in.Restart {
			input.ResetKeyInput(rn.stream)
		}

		// ===== UPDATE PHASE =====
		rn.updateScreen()
		if !rn.game.Update(delta, in) {
			break
		}

		// ===== DRAW PHASE =====
		if err := rn.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// trackActivity updates the inactivity state. It returns false once the
// player has been idle for too long.
func (rn *runner) trackActivity(in input.Input) bool {
	idle := time.Since(rn.lastInput).Seconds()
	switch {
	case len(in.Pressed) > 0:
		rn.lastInput = time.Now()
		rn.inactive = false
	case idle > config.InactivityDisconnectUser:
		rn.log.Info("disconnecting idle player", "idle", idle)
		return false
	case idle > config.InactivityWarnUser:
		rn.inactive = true
	}
	return true
}

// updateScreen follows terminal resizes. The logical height stays fixed and
// the logical width follows the aspect ratio of the render area, so a half-block
// pixel stays square.
func (rn *runner) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(rn.termSizeFunc)
	if err != nil || termWidth <= 0 || termHeight <= 0 {
		if rn.canvas != nil {
			return
		}
		termWidth, termHeight = config.FallbackTermWidth, config.FallbackTermHeight
	}
	if rn.canvas != nil && termWidth == rn.termWidth && termHeight == rn.termHeight {
		return
	}
	rn.termWidth, rn.termHeight = termWidth, termHeight

	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	rn.offsetCol, rn.offsetRow = offsetCol, offsetRow

	rn.game.Resize(config.LogicalHeight * float64(renderWidth) / float64(2*renderHeight))
	rn.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, rn.game.Width(), config.LogicalHeight)
	rn.canvas.SetOffset(offsetCol, offsetRow)
	rn.cw.SetOffset(offsetCol, offsetRow)
	rn.log.Debug("terminal resized", "cols", termWidth, "rows", termHeight, "logicalWidth", rn.game.Width())
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame paints the fight and the text layers as one chunked write.
func (rn *runner) drawFrame() error {
	rn.cw.WriteString("\033[H\033[2J")

	rn.canvas.Clear()
	if !rn.inactive {
		rn.game.Fight().Draw(rn.canvas)
	}
	rn.canvas.Render(rn.cw)

	rn.drawUI()
	return rn.cw.Flush()
}

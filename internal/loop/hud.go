package loop

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/tomz197/quizboss/internal/combat"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/loop/config"
	"github.com/tomz197/quizboss/internal/object"
	"github.com/tomz197/quizboss/internal/quiz"
)

// HUD palette
var (
	hudScore    = draw.Hex("#00ff88")
	hudLives    = draw.Hex("#ff4444")
	hudStreak   = draw.Hex("#ff00ff")
	hudDim      = draw.Hex("#888888")
	hudText     = draw.Hex("#e0e0e0")
	hudTitle    = draw.Hex("#ff9900")
	hudHealthLo = draw.Hex("#ff0033")
	hudHealthHi = draw.Hex("#00ff88")
	hudCorrect  = draw.Hex("#00ff88")
	hudWrong    = draw.Hex("#ff4444")
)

var hudTag = map[quiz.Difficulty]string{
	quiz.Easy:   "#00ff88",
	quiz.Medium: "#ffaa00",
	quiz.Hard:   "#ff4444",
}

const bossBarWidth = 30

// drawUI draws the text layers over the rendered canvas.
func (rn *runner) drawUI() {
	termWidth := rn.canvas.TerminalWidth()
	termHeight := rn.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if rn.inactive {
		rn.drawInactivityScreen(centerX, centerY)
		return
	}

	switch rn.game.State {
	case GameStateStart:
		rn.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		rn.drawPlayingHUD(termWidth, termHeight)
		rn.drawOverlay(centerX)
		rn.drawQuizPanel(termWidth, termHeight)
	case GameStateOver:
		rn.drawPlayingHUD(termWidth, termHeight)
		rn.drawOverlay(centerX)
		rn.drawGameOverScreen(centerX, centerY)
	}
	rn.drawMuteHint(termWidth, termHeight)
}

// drawStartScreen draws the title screen.
func (rn *runner) drawStartScreen(centerX, centerY int) {
	titleArt := []string{
		`  ___  _   _ ___ _______   ___  ___  ___ ___ `,
		` / _ \| | | |_ _|_  / _ ) / _ \/ __|/ __/ __|`,
		`| (_) | |_| || | / /| _ \| (_) \__ \\__ \__ \`,
		` \__\_\\___/|___/___|___/ \___/|___/|___/___/`,
	}
	row := centerY - len(titleArt) - 3
	for i, line := range titleArt {
		object.Text{Col: centerX, Row: row + i, Value: line, Color: hudTitle, Bold: true, Centered: true}.Draw(rn.cw)
	}

	lines := []object.Text{
		{Value: "Answer cloud questions to power your ship. Miss, and the boss fires back.", Color: hudText},
		{Value: "Press SPACE to start", Color: hudScore, Bold: true},
		{},
		{Value: "1-4 answer   WASD/arrows fly   SPACE shield   M mute   R restart   Q quit", Color: hudDim},
	}
	for i, t := range lines {
		t.Col, t.Row, t.Centered = centerX, centerY+i, true
		t.Draw(rn.cw)
	}
}

// drawPlayingHUD draws score, streak, lives and the boss health bar.
func (rn *runner) drawPlayingHUD(termWidth, termHeight int) {
	st := rn.game.Fight().State()

	object.Text{Col: 2, Row: 1, Value: fmt.Sprintf("SCORE %d", st.Score), Color: hudScore, Bold: true}.Draw(rn.cw)

	lives := strings.Repeat("♥ ", max(st.Lives, 0)) + strings.Repeat("♡ ", max(combat.StartingLives-st.Lives, 0))
	lives = "LIVES " + strings.TrimSpace(lives)
	object.Text{Col: termWidth - len([]rune(lives)), Row: 1, Value: lives, Color: hudLives, Bold: true}.Draw(rn.cw)

	if st.Streak > 0 {
		streak := fmt.Sprintf("STREAK x%d", st.Streak)
		if next := combat.ComboEvery - st.Streak%combat.ComboEvery; next < combat.ComboEvery {
			streak += fmt.Sprintf("  (combo in %d)", next)
		}
		object.Text{Col: termWidth / 2, Row: termHeight - config.PanelRows - 1, Value: streak, Color: hudStreak, Centered: true}.Draw(rn.cw)
	}

	ratio := 0.0
	if st.MaxBossHP > 0 {
		ratio = math.Max(0, float64(st.BossHP)/float64(st.MaxBossHP))
	}
	bar := healthBar(ratio, bossBarWidth)
	object.Text{
		Col:      termWidth / 2,
		Row:      1,
		Value:    fmt.Sprintf("BOSS %s %d/%d", bar, max(st.BossHP, 0), st.MaxBossHP),
		Color:    draw.Mix(hudHealthLo, hudHealthHi, ratio),
		Bold:     true,
		Centered: true,
	}.Draw(rn.cw)
}

// healthBar renders ratio as a bar of width cells, rounding partial cells up.
func healthBar(ratio float64, width int) string {
	filled := int(math.Ceil(ratio * float64(width)))
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// drawOverlay draws the zooming banner above the middle of the play field.
func (rn *runner) drawOverlay(centerX int) {
	o := rn.game.Fight().Overlay()
	banner := o.Banner()
	if banner == "" {
		return
	}
	layout := rn.game.Fight().Layout()
	_, row := rn.canvas.LogicalToTerminal(layout.Width/2, layout.Height/2-150*layout.Scale)
	object.Text{Col: centerX, Row: row, Value: banner, Color: o.Color, Bold: o.Scale >= 1, Centered: true}.Draw(rn.cw)
	object.Text{Col: centerX, Row: row + 1, Value: o.Subline(), Color: hudText, Centered: true}.Draw(rn.cw)
}

// drawQuizPanel draws the open question, its options and the grading line.
func (rn *runner) drawQuizPanel(termWidth, termHeight int) {
	s := rn.game.Session()
	if !s.Visible() {
		return
	}
	q := s.Current()
	width := min(termWidth-4, config.PanelMaxWidth)
	left := (termWidth-width)/2 + 1
	row := termHeight - config.PanelRows + 1

	tag := "[" + q.Difficulty.String() + "]"
	object.Text{Col: left, Row: row, Value: tag, Color: draw.Hex(hudTag[q.Difficulty]), Bold: true}.Draw(rn.cw)

	textWidth := width - len(tag) - 1
	lines := strings.Split(ansi.Wordwrap(q.Text, textWidth, ""), "\n")
	for i := 0; i < 2 && i < len(lines); i++ {
		line := lines[i]
		if i == 1 && len(lines) > 2 {
			line = ansi.Truncate(line+" "+strings.Join(lines[2:], " "), textWidth, "…")
		}
		object.Text{Col: left + len(tag) + 1, Row: row + i, Value: line, Color: hudText, Bold: true}.Draw(rn.cw)
	}

	selected := s.Selected()
	for i, opt := range q.Options {
		col := hudText
		switch {
		case selected >= 0 && i == q.Answer:
			col = hudCorrect
		case i == selected:
			col = hudWrong
		}
		line := ansi.Truncate(fmt.Sprintf("%d) %s", i+1, opt), width, "…")
		object.Text{Col: left, Row: row + 3 + i, Value: line, Color: col, Bold: i == selected}.Draw(rn.cw)
	}

	if fb := s.Feedback(); fb.Text != "" {
		object.Text{Col: termWidth / 2, Row: row + 7, Value: fb.Text, Color: draw.Hex(fb.Color), Bold: true, Centered: true}.Draw(rn.cw)
	}
}

// drawGameOverScreen draws the result and the restart prompt.
func (rn *runner) drawGameOverScreen(centerX, centerY int) {
	res := rn.game.Session().Result()
	if res == nil {
		return
	}
	title, col := "GAME OVER", hudWrong
	if res.Victory {
		title, col = "V I C T O R Y", hudCorrect
	}
	object.Text{Col: centerX, Row: centerY - 2, Value: title, Color: col, Bold: true, Centered: true}.Draw(rn.cw)
	object.Text{Col: centerX, Row: centerY, Value: fmt.Sprintf("Score: %d", res.Score), Color: hudText, Centered: true}.Draw(rn.cw)
	object.Text{Col: centerX, Row: centerY + 2, Value: "Press R or SPACE to play again, Q to quit", Color: hudDim, Centered: true}.Draw(rn.cw)
}

// drawInactivityScreen draws the inactivity warning screen.
func (rn *runner) drawInactivityScreen(centerX, centerY int) {
	left := int(config.InactivityDisconnectUser - time.Since(rn.lastInput).Seconds())
	lines := []string{
		"INACTIVITY WARNING",
		"",
		fmt.Sprintf("You have been inactive for too long. You will be disconnected in %d seconds.", max(left, 0)),
		"",
		"Press any key to continue",
	}
	for i, line := range lines {
		object.Text{Col: centerX, Row: centerY - 2 + i, Value: line, Color: hudText, Centered: true}.Draw(rn.cw)
	}
}

func (rn *runner) drawMuteHint(termWidth, termHeight int) {
	hint := "[M] SOUND ON"
	if rn.game.Muted {
		hint = "[M] MUTED"
	}
	object.Text{Col: termWidth - len(hint), Row: termHeight, Value: hint, Color: hudDim}.Draw(rn.cw)
}

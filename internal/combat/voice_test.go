package combat

import (
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/quizboss/internal/draw"
)

type captionRecorder struct {
	texts  []string
	colors []string
}

func (c *captionRecorder) ShowCaption(text, color string) {
	c.texts = append(c.texts, text)
	c.colors = append(c.colors, color)
}

type failingPlayer struct{ calls int }

func (p *failingPlayer) PlayVoice(string) error {
	p.calls++
	return errors.New("no audio device")
}

func TestVoiceNeverRepeatsLastLine(t *testing.T) {
	captions := &captionRecorder{}
	v := NewVoice(rand.New(rand.NewSource(3)), captions, nil, log.New(io.Discard))

	for i := 0; i < 200; i++ {
		v.Speak(VoiceWrongEasy)
	}
	for i := 1; i < len(captions.texts); i++ {
		if captions.texts[i] == captions.texts[i-1] {
			t.Fatalf("line %d repeated %q", i, captions.texts[i])
		}
	}
	for _, c := range captions.colors {
		if c != CaptionColor {
			t.Fatalf("caption color %q, want %q", c, CaptionColor)
		}
	}
}

func TestVoiceSurvivesPlaybackFailure(t *testing.T) {
	captions := &captionRecorder{}
	player := &failingPlayer{}
	v := NewVoice(rand.New(rand.NewSource(4)), captions, player, log.New(io.Discard))

	v.Speak(VoiceLose)
	if player.calls != 1 || len(captions.texts) != 1 {
		t.Errorf("player calls %d, captions %d", player.calls, len(captions.texts))
	}
	if v.Last() == "" {
		t.Error("last line not recorded")
	}
}

func TestVoiceIgnoresUnknownAndMuted(t *testing.T) {
	captions := &captionRecorder{}
	v := NewVoice(rand.New(rand.NewSource(5)), captions, nil, log.New(io.Discard))

	v.Speak(VoiceCategory("nope"))
	v.Muted = true
	v.Speak(VoiceWin)
	if len(captions.texts) != 0 {
		t.Errorf("captions %v, want none", captions.texts)
	}
}

func TestOverlayLastCallWins(t *testing.T) {
	var o Overlay
	o.ShowAttack(AttackLaser)
	if o.Text != "EC2 ELASTIC BEAM" || o.Life != attackOverlayLife || o.Scale != overlayStartScale {
		t.Fatalf("overlay = %+v", o)
	}

	o.update(100*time.Millisecond, 1)
	o.ShowCaption("WASTE OF RAM", CaptionColor)
	if o.Text != "WASTE OF RAM" || o.Life != captionOverlayLife || o.Scale != overlayStartScale {
		t.Fatalf("caption did not replace the banner: %+v", o)
	}
}

func TestOverlayGrowsAndExpires(t *testing.T) {
	var o Overlay
	o.ShowAttack(AttackRockets)

	frames := 0
	for o.Active {
		o.update(250*time.Millisecond, 1)
		frames++
		if o.Scale > overlayMaxScale+overlayGrowth {
			t.Fatalf("scale %v overshot", o.Scale)
		}
	}
	if frames != 6 {
		t.Errorf("banner lasted %d frames of 250ms, want 6", frames)
	}
	if o.Banner() != "" || o.Subline() != "" {
		t.Error("expired banner should render nothing")
	}
}

func TestOverlaySublineFollowsBanner(t *testing.T) {
	var o Overlay
	if o.Subline() != "" {
		t.Fatal("idle overlay has a subline")
	}
	o.ShowCaption("BRAIN MISSING", draw.Hex("#ff0033"))
	if o.Subline() != ">>> SYSTEM OVERRIDE ENGAGED <<<" {
		t.Errorf("caption subline = %q", o.Subline())
	}
	o.ShowAttack(AttackLaser)
	if o.Subline() != ">>> SYSTEM OVERRIDE ENGAGED <<<" {
		t.Errorf("attack subline = %q", o.Subline())
	}
}

func TestOverlayBannerSpacesOutWhenZoomed(t *testing.T) {
	var o Overlay
	o.ShowAttack(AttackCombo)
	if o.Banner() != "BEDROCK COMBO" {
		t.Fatalf("banner = %q", o.Banner())
	}
	o.Scale = 1.2
	if o.Banner() != "B E D R O C K   C O M B O" {
		t.Errorf("zoomed banner = %q", o.Banner())
	}
}

package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/shroud/component"
	"github.com/lixenwraith/shroud/parameter"
	"github.com/lixenwraith/shroud/vmath"
)

// shroudSegments is the number of samples along the shroud ring
const shroudSegments = 180

// Frame is everything drawn in one pass
type Frame struct {
	World  component.World
	Now    time.Duration
	Paused bool
}

// TerminalRenderer draws worlds onto a tcell screen, the last row is the status bar
type TerminalRenderer struct {
	screen tcell.Screen
	tuning parameter.Tuning
	hud    *HUD
}

// NewTerminalRenderer creates a renderer for screen, reading readouts from hud
func NewTerminalRenderer(screen tcell.Screen, tuning parameter.Tuning, hud *HUD) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		tuning: tuning,
		hud:    hud,
	}
}

// RenderFrame clears the screen, draws the frame and shows it
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width <= 0 || height <= 1 {
		r.screen.Show()
		return
	}

	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	vp := NewViewport(r.tuning.Level.Size, width, height-1)
	_, _, intensity := r.hud.Snapshot()

	// Back to front: shroud ring, obstacles, enemies, character
	if r.tuning.ShroudEnabled {
		r.drawShroud(vp, f.World.ShroudRadius, defaultStyle.Foreground(IntensityColor(intensity)))
	}
	r.drawObstacles(vp, f.World.Obstacles, defaultStyle.Foreground(RgbObstacle))
	r.drawEnemies(vp, f.World.Enemies, defaultStyle.Foreground(RgbEnemy))
	r.drawCharacter(vp, f.World.Character, f.Now, defaultStyle)

	r.drawStatusBar(f, width, height-1, defaultStyle)
	if f.World.Over() {
		r.drawCentered(vp, "GAME OVER", defaultStyle.Foreground(RgbGameOverText).Bold(true))
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawShroud(vp Viewport, radius float64, style tcell.Style) {
	if radius <= 0 {
		return
	}
	center := r.tuning.ShroudCenter
	for i := 0; i < shroudSegments; i++ {
		a := 2 * math.Pi * float64(i) / shroudSegments
		p := vmath.Add(center, vmath.V(radius*math.Cos(a), radius*math.Sin(a)))
		x, y := vp.ToCell(p)
		if vp.InBounds(x, y) {
			r.screen.SetContent(x, y, '·', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawObstacles(vp Viewport, obstacles []component.Obstacle, style tcell.Style) {
	for _, o := range obstacles {
		x0, y0, x1, y1 := vp.CellSpan(o.Position, o.Size)
		for y := max(y0, 0); y <= min(y1, vp.Rows-1); y++ {
			for x := max(x0, 0); x <= min(x1, vp.Cols-1); x++ {
				r.screen.SetContent(x, y, '█', nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawEnemies(vp Viewport, enemies []component.Enemy, style tcell.Style) {
	for _, e := range enemies {
		glyph := '>'
		if e.Facing == component.FacingLeft {
			glyph = '<'
		}
		x, y := vp.ToCell(e.Center())
		if vp.InBounds(x, y) {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawCharacter(vp Viewport, c component.Character, now time.Duration, style tcell.Style) {
	glyph, color := '@', RgbCharacter
	switch {
	case c.Dashing:
		glyph, color = '*', RgbDashing
	case c.Health > 0 && c.Invulnerable(now, r.tuning.InvulnerabilityWindow.Std()):
		color = RgbHurt
	}
	x, y := vp.ToCell(c.Center())
	if vp.InBounds(x, y) {
		r.screen.SetContent(x, y, glyph, nil, style.Foreground(color).Bold(true))
	}
}

func (r *TerminalRenderer) drawStatusBar(f Frame, width, row int, defaultStyle tcell.Style) {
	score, health, _ := r.hud.Snapshot()
	maxHealth := f.World.Character.MaxHealth

	x := 0
	x = r.drawText(x, row, fmt.Sprintf(" SCORE %d ", score), defaultStyle.Background(RgbScoreBg).Foreground(RgbStatusText))
	x++

	healthBg := RgbHealthBg
	if health <= 1 {
		healthBg = RgbHealthLowBg
	}
	bar := " HP " + strings.Repeat("♥", max(health, 0)) + strings.Repeat("·", max(maxHealth-health, 0)) + " "
	x = r.drawText(x, row, bar, defaultStyle.Background(healthBg).Foreground(RgbStatusText))
	x++

	if r.tuning.ShroudEnabled {
		x = r.drawText(x, row, fmt.Sprintf(" SHROUD %.0f ", f.World.ShroudRadius), defaultStyle.Foreground(RgbShroud).Reverse(true))
		x++
	}
	if f.Paused {
		r.drawText(x, row, " PAUSED ", defaultStyle.Background(RgbPausedBg).Foreground(RgbStatusText))
	}

	help := "arrows/wasd move  space dash  p pause  q quit"
	if hx := width - len(help) - 1; hx > x+10 {
		r.drawText(hx, row, help, defaultStyle.Foreground(RgbObstacle))
	}
}

func (r *TerminalRenderer) drawCentered(vp Viewport, text string, style tcell.Style) {
	x := (vp.Cols - len([]rune(text))) / 2
	r.drawText(max(x, 0), vp.Rows/2, text, style)
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-blasters/internal/core"
	"github.com/vovakirdan/tui-blasters/internal/fx"
	"github.com/vovakirdan/tui-blasters/internal/sim"
)

var shipGlyphs = [8]rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

// ShipGlyph returns the glyph for a heading; -π/2 (up) is '▲'.
func ShipGlyph(angle float64) rune {
	i := int(math.Round((angle+math.Pi/2)/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return shipGlyphs[i]
}

// HueColor maps a hue in degrees onto the terminal palette.
func HueColor(h float64) core.Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	switch {
	case h < 30 || h >= 330:
		return core.ColorBrightRed
	case h < 60:
		return core.ColorOrange
	case h < 90:
		return core.ColorBrightYellow
	case h < 150:
		return core.ColorBrightGreen
	case h < 210:
		return core.ColorBrightCyan
	case h < 270:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightMagenta
	}
}

// Put draws a rune at a world point if it falls in the playfield.
func Put(dst *core.Screen, v View, x, y float64, r rune, c core.Color) {
	cx, cy := v.Cell(x, y)
	if v.InPlayfield(cx, cy) {
		dst.SetColored(cx, cy, r, c)
	}
}

// Line draws a line between two world points.
func Line(dst *core.Screen, v View, x0, y0, x1, y1 float64, r rune, c core.Color) {
	ax, ay := v.Cell(x0, y0)
	bx, by := v.Cell(x1, y1)
	dx, dy := core.Abs(bx-ax), -core.Abs(by-ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		if v.InPlayfield(ax, ay) {
			dst.SetColored(ax, ay, r, c)
		}
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// FillBox fills a world-space box.
func FillBox(dst *core.Screen, v View, b core.Box, r rune, c core.Color) {
	x0, y0 := v.Cell(b.Left(), b.Top())
	x1, y1 := v.Cell(b.Right()-0.001, b.Bottom()-0.001)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.InPlayfield(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// DrawShip draws the ship and its flame. Spawn protection blinks.
func DrawShip(dst *core.Screen, v View, sh sim.Ship, clock float64) {
	if sh.Invincible > 0 && int(clock*10)%2 == 0 {
		return
	}
	if sh.Thrusting {
		flameX := sh.X - math.Cos(sh.Angle)*sh.Radius*1.2
		flameY := sh.Y - math.Sin(sh.Angle)*sh.Radius*1.2
		Put(dst, v, flameX, flameY, '∙', core.ColorOrange)
	}
	Put(dst, v, sh.X, sh.Y, ShipGlyph(sh.Angle), core.ColorBrightWhite)
}

// DrawBullets draws player bullets tinted by their hue tag.
func DrawBullets(dst *core.Screen, v View, bullets []sim.Bullet) {
	for _, b := range bullets {
		Put(dst, v, b.X, b.Y, '•', HueColor(b.Hue))
	}
}

// DrawEnemyBullets draws turret shots.
func DrawEnemyBullets(dst *core.Screen, v View, bullets []sim.EnemyBullet) {
	for _, b := range bullets {
		Put(dst, v, b.X, b.Y, '∗', core.ColorBrightRed)
	}
}

// DrawParticles draws sparks, dimming as they fade.
func DrawParticles(dst *core.Screen, v View, ps []fx.Particle) {
	for _, p := range ps {
		r, c := '·', HueColor(p.Hue)
		switch f := p.Fade(); {
		case f > 0.66:
			r = '*'
		case f > 0.33:
			r = '+'
		default:
			c = core.ColorGray
		}
		Put(dst, v, p.X, p.Y, r, c)
	}
}

// DrawHUD writes the status line on row 0.
func DrawHUD(dst *core.Screen, waveLabel string, st core.GameState) {
	lives := strings.Repeat("♥", core.Max(st.Lives, 0))
	left := fmt.Sprintf(" SCORE %d  BEST %d", st.Score, st.Best)
	right := fmt.Sprintf("%s %d  %s ", waveLabel, st.Wave, lives)
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightYellow)
}

var toastColors = map[fx.Severity]core.Color{
	fx.SeverityInfo:    core.ColorBrightCyan,
	fx.SeveritySuccess: core.ColorBrightGreen,
	fx.SeverityWarning: core.ColorBrightYellow,
}

// DrawToast shows the current toast just below the HUD.
func DrawToast(dst *core.Screen, t fx.Toast) {
	msg := " " + t.Message + " "
	x := (dst.Width() - len([]rune(msg))) / 2
	dst.DrawTextColored(x, HUDRows+1, msg, toastColors[t.Severity])
}

// DrawMessage draws a message box in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}

// DrawOverlay draws the phase message shared by both games.
func DrawOverlay(dst *core.Screen, title, waveLabel string, st core.GameState, suspended bool) {
	switch st.Phase {
	case core.PhaseMenu:
		switch {
		case suspended:
			DrawMessage(dst, "INTERMISSION", "Get ready")
		case st.Wave > 1:
			DrawMessage(dst, fmt.Sprintf("%s %d", waveLabel, st.Wave), "Press SPACE to continue")
		default:
			DrawMessage(dst, title, "SPACE start  ←→ turn  ↑ thrust  SPACE fire")
		}
	case core.PhasePaused:
		DrawMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseOver:
		head := "GAME OVER"
		if st.Victory {
			head = "VICTORY"
		}
		DrawMessage(dst, head, fmt.Sprintf("Score: %d  |  Best: %d  |  Press R to restart", st.Score, st.Best))
	}
}

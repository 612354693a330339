package stick

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	PerfectChar  = '▀'
	HillChar     = '▒'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg)
}

// viewport maps world units to screen cells.
type viewport struct {
	cfg       config.StickConfig
	offset    float64
	margin    int // Columns left of world x = offset
	groundRow int // First row of platform tops
}

func newViewport(dst *core.Screen, snap Snapshot, cfg config.StickConfig) viewport {
	viewCols := int(cfg.Render.ViewWidth / cfg.Render.UnitsPerColumn)
	platformRows := core.Max(2, int(cfg.Geometry.PlatformHeight/cfg.Render.UnitsPerRow))
	return viewport{
		cfg:       cfg,
		offset:    snap.SceneOffset,
		margin:    (dst.Width() - viewCols) / 2,
		groundRow: core.Max(1, dst.Height()-platformRows),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x-v.offset)/v.cfg.Render.UnitsPerColumn)) + v.margin
}

// row returns the screen row of a point height units above the ground.
func (v viewport) row(height float64) int {
	return v.groundRow - 1 - int(math.Floor(height/v.cfg.Render.UnitsPerRow))
}

// RenderSnapshot draws a snapshot. It never mutates the snapshot.
func RenderSnapshot(dst *core.Screen, snap Snapshot, cfg config.StickConfig) {
	dst.Clear()
	v := newViewport(dst, snap, cfg)

	drawHills(dst, v)
	for _, p := range snap.Platforms {
		drawPlatform(dst, v, p)
	}
	drawHero(dst, v, snap.Hero)
	for _, s := range snap.Sticks {
		drawStick(dst, v, s)
	}
	drawHUD(dst, snap)
}

// drawHills paints a slow-scrolling background band just above the ground.
func drawHills(dst *core.Screen, v viewport) {
	shift := v.offset * 0.2 / v.cfg.Render.UnitsPerColumn
	for x := 0; x < dst.Width(); x++ {
		h := 1 + int(1.5+1.5*math.Sin((float64(x)+shift)/7))
		dst.DrawVLine(x, v.groundRow-h, h, HillChar, core.ColorHill)
	}
}

func drawPlatform(dst *core.Screen, v viewport, p Platform) {
	left := v.col(p.X)
	width := core.Max(1, v.col(p.Right())-left)
	dst.DrawRect(core.NewRect(left, v.groundRow, width, dst.Height()-v.groundRow), PlatformChar, core.ColorPlatform)

	mid := v.col(p.Span().Mid())
	dst.SetColored(mid, v.groundRow, PerfectChar, core.ColorPerfect)
}

// drawHero draws a three-cell-wide sprite whose right edge is hero.X.
func drawHero(dst *core.Screen, v viewport, h Hero) {
	right := v.col(h.X)
	drop := int(math.Floor(h.Y / v.cfg.Render.UnitsPerRow))
	top := v.groundRow - 2 + drop

	dst.SetColored(right-3, top, '≈', core.ColorBandana)
	dst.SetColored(right-2, top, '█', core.ColorHero)
	dst.SetColored(right-1, top, '▪', core.ColorHero)
	dst.SetColored(right-2, top+1, '▌', core.ColorHero)
	dst.SetColored(right-1, top+1, '▌', core.ColorHero)
}

// drawStick plots points along the stick from its base on the ground.
func drawStick(dst *core.Screen, v viewport, s Stick) {
	if s.Length <= 0 {
		return
	}
	rad := s.Rotation * math.Pi / 180
	dx, dy := math.Sin(rad), math.Cos(rad)
	step := math.Min(v.cfg.Render.UnitsPerColumn, v.cfg.Render.UnitsPerRow) / 2
	r := stickRune(s.Rotation)

	for d := 0.0; d <= s.Length; d += step {
		dst.SetColored(v.col(s.X+d*dx), v.row(d*dy), r, core.ColorStick)
	}
}

func stickRune(rotation float64) rune {
	switch {
	case rotation < 22.5:
		return '│'
	case rotation < 67.5:
		return '/'
	case rotation < 112.5:
		return '─'
	case rotation < 157.5:
		return '\\'
	default:
		return '│'
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(1, fmt.Sprintf(" %d ", snap.Score), core.ColorHUD)

	if snap.Landing.Perfect && (snap.Phase == PhaseWalking || snap.Phase == PhaseTransitioning) {
		dst.DrawTextCentered(2, "PERFECT!", core.ColorPerfect)
	}

	if snap.FirstRound {
		dst.DrawTextCentered(3, "Hold down the mouse or press space to stretch out a stick", core.ColorDim)
	}

	switch {
	case snap.Aborted:
		drawCenteredMessage(dst, "SESSION STOPPED", "Internal error  |  Press Q to quit")
	case snap.Phase == PhaseDead:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  B back", snap.Score))
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextCentered(box.Y+1, title, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorHUD)
}

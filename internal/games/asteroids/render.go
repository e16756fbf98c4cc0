package asteroids

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/core"
)

// Visual characters for rendering
const (
	ProjectileChar = '•'
	WreckChar      = '✶'
)

// ShipGlyphs are indexed by heading octant, counter-clockwise from up.
var ShipGlyphs = [8]rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}

// Instructions is shown while the ship flies and rocks remain.
const Instructions = "You are the ship's pilot! Save your crew from the asteroids!!!"

// hudRows is the number of rows above the playfield.
const hudRows = 1

// viewport maps world coordinates onto a block of screen cells.
// The world is y-up; the terminal is y-down.
type viewport struct {
	world      core.Bounds
	x, y, w, h int
}

func (v viewport) cell(p core.Vec2) (int, int) {
	cx := int(p.X / v.world.W * float64(v.w))
	cy := int((v.world.H - p.Y) / v.world.H * float64(v.h))
	return v.x + platformcore.Clamp(cx, 0, v.w-1), v.y + platformcore.Clamp(cy, 0, v.h-1)
}

// ShipGlyph returns the glyph for a ship heading in degrees.
func ShipGlyph(angle float64) rune {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	octant := int(math.Floor(a/45+0.5)) % len(ShipGlyphs)
	return ShipGlyphs[octant]
}

// AsteroidGlyph returns the glyph and color for an asteroid size.
func AsteroidGlyph(s core.Size) (rune, platformcore.Color) {
	switch s {
	case core.SizeLarge:
		return '@', platformcore.ColorWhite
	case core.SizeMedium:
		return 'o', platformcore.ColorGray
	default:
		return '·', platformcore.ColorOrange
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.sim == nil {
		return
	}

	// Check for screen too small
	if g.tooSmall {
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", platformcore.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, hint, platformcore.ColorGray)
		return
	}

	snap := g.sim.Snapshot()
	view := viewport{world: snap.World, x: 0, y: hudRows, w: dst.Width(), h: dst.Height() - hudRows}

	g.renderHUD(dst, snap)
	renderBodies(dst, view, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws the score, status and rock count.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), platformcore.ColorBrightWhite)
	dst.DrawTextCentered(0, "ASTEROIDS", platformcore.ColorBrightCyan)

	rocks := fmt.Sprintf("Rocks: %d", len(snap.Asteroids))
	dst.DrawTextColored(dst.Width()-len(rocks)-1, 0, rocks, platformcore.ColorBrightWhite)
}

func renderBodies(dst *platformcore.Screen, view viewport, snap core.Snapshot) {
	for _, a := range snap.Asteroids {
		glyph, color := AsteroidGlyph(a.Size)
		x, y := view.cell(a.Pos)
		dst.SetColored(x, y, glyph, color)
	}

	for _, p := range snap.Projectiles {
		x, y := view.cell(p.Pos)
		dst.SetColored(x, y, ProjectileChar, platformcore.ColorBrightYellow)
	}

	x, y := view.cell(snap.Ship.Pos)
	if snap.Ship.Alive {
		dst.SetColored(x, y, ShipGlyph(snap.Ship.Angle), platformcore.ColorBrightGreen)
	} else {
		dst.SetColored(x, y, WreckChar, platformcore.ColorBrightRed)
	}
}

// renderOverlay draws the banner and the end-of-round or pause message.
func (g *Game) renderOverlay(dst *platformcore.Screen, snap core.Snapshot) {
	if snap.Status == core.StatusRunning && !g.paused {
		dst.DrawTextCentered(hudRows+1, Instructions, platformcore.ColorCyan)
	}

	var title, line string
	var color platformcore.Color
	switch {
	case snap.Status == core.StatusLost:
		title, line, color = "GAME OVER", fmt.Sprintf("Score: %d", snap.Score), platformcore.ColorBrightRed
	case snap.Status == core.StatusWon:
		title, line, color = "YOU WIN!", "Your crew is safe", platformcore.ColorBrightGreen
	case g.paused:
		title, line, color = "PAUSED", "Press P to resume", platformcore.ColorBrightYellow
	default:
		return
	}

	hint := "Press Enter to restart"
	if g.paused {
		hint = "Q to quit"
	}

	boxW := max(len(hint), len(line), len(title)) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, title, color)
	dst.DrawTextCentered(box.Y+2, line, platformcore.ColorDefault)
	dst.DrawTextCentered(box.Y+3, hint, platformcore.ColorGray)
}

package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	DefenseChar   = '▓'
	EnemyChar     = '▒'
	BulletChar    = '•'
	EnemyBullet   = '◦'
	ExplosionChar = '*'
	GroundChar    = '═'
	HeartFull     = '♥'
	HeartEmpty    = '♡'
)

const (
	hudRow         = 0
	groundFromBase = 1 // Ground line offset from the bottom row
)

// viewport maps world coordinates (y up, origin on the ground) onto the
// character grid (y down, HUD on the first row).
type viewport struct {
	scaleX, scaleY float64
	groundY        int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	groundY := dst.Height() - groundFromBase
	fieldH := core.Max(groundY-hudRow-1, 1)
	return viewport{
		scaleX:  float64(dst.Width()) / g.cfg.World.Width,
		scaleY:  float64(fieldH) / g.cfg.World.Height,
		groundY: groundY,
	}
}

// project converts a world box into screen cells. Every entity covers at
// least one cell.
func (v viewport) project(pos engine.Vec2, w, h float64) core.Rect {
	x := int(math.Floor(pos.X * v.scaleX))
	cw := core.Max(int(math.Round(w*v.scaleX)), 1)

	bottom := v.groundY - int(math.Round(pos.Y*v.scaleY))
	top := v.groundY - int(math.Round((pos.Y+h)*v.scaleY))
	ch := core.Max(bottom-top, 1)
	if bottom-top < 1 {
		top = bottom - 1
	}
	return core.NewRect(x, top, cw, ch)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	snap := g.state.Snapshot()
	v := g.viewport(dst)

	dst.DrawHLine(0, v.groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, x := range snap.Explosions {
		r := v.project(x.Pos, g.cfg.Explosions.Width, g.cfg.Explosions.Height)
		color := core.ColorOrange
		if x.Lifetime%2 == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawRect(r, ExplosionChar, color)
	}

	for _, e := range snap.Enemies {
		r := v.project(e.Pos, g.cfg.Enemies.Width, g.cfg.Enemies.Height)
		dst.DrawRect(r, EnemyChar, core.ColorRed)
		hp := fmt.Sprintf("%d", e.HP)
		dst.DrawTextColor(r.X+(r.W-len(hp))/2, r.Y, hp, core.ColorBrightWhite)
	}

	g.drawPlayer(dst, v, snap.Player)

	for _, b := range snap.Bullets {
		r := v.project(b.Pos, g.cfg.Bullets.Width, g.cfg.Bullets.Height)
		dst.DrawRect(r, BulletChar, core.ColorBrightYellow)
	}
	for _, b := range snap.EnemyBullets {
		r := v.project(b.Pos, g.cfg.EnemyBullets.Width, g.cfg.EnemyBullets.Height)
		dst.DrawRect(r, EnemyBullet, core.ColorMagenta)
	}

	g.drawHUD(dst, snap)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Phase == engine.PhaseGameOver {
		subtitle := fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", snap.Score, snap.BestScore)
		drawCenteredMessage(dst, "GAME OVER: "+strings.ToUpper(snap.GameOverReason), subtitle)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, p engine.Player) {
	if !p.Alive {
		return
	}
	r := v.project(p.Pos, g.cfg.Player.Width, g.cfg.Player.Height)
	if p.InDefense {
		dst.DrawRect(r, DefenseChar, core.ColorBrightCyan)
		return
	}
	dst.DrawRect(r, PlayerChar, core.ColorBrightGreen)
}

// drawHUD renders score, best score, health hearts, wave and the defense flag.
func (g *Game) drawHUD(dst *core.Screen, snap engine.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d  Wave: %d ", snap.Score, snap.BestScore, snap.Wave)
	dst.DrawText(1, hudRow, left)

	x := 1 + len(left) + 1
	for i := 0; i < g.cfg.Player.MaxHealth; i++ {
		if i < snap.Player.Health {
			dst.SetColor(x+i, hudRow, HeartFull, core.ColorBrightRed)
		} else {
			dst.SetColor(x+i, hudRow, HeartEmpty, core.ColorGray)
		}
	}

	if snap.Player.InDefense {
		dst.DrawTextColor(x+g.cfg.Player.MaxHealth+2, hudRow, "[DEFENSE]", core.ColorBrightCyan)
	}

	unlocked := 0
	for _, a := range snap.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	right := fmt.Sprintf(" Achievements: %d/%d ", unlocked, len(snap.Achievements))
	dst.DrawText(dst.Width()-len(right)-1, hudRow, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw := len([]rune(title))
	sw := len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColor(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}

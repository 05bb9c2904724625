// Package window - оконный хост на ebiten. Update делает ровно один тик
// симуляции (TPS = частота тиков), Draw рисует последний снапшот.
package window

import (
	"fmt"
	"image/color"

	"dungeon-arena/internal/audio"
	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/hosts/view"
	"dungeon-arena/internal/input"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

var keymap = []struct {
	key ebiten.Key
	btn input.Buttons
}{
	{ebiten.KeyW, input.Up},
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyS, input.Down},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyA, input.Left},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyD, input.Right},
	{ebiten.KeyArrowRight, input.Right},
	{ebiten.KeySpace, input.Attack},
	{ebiten.KeyJ, input.Attack},
	{ebiten.KeyShiftLeft, input.Dash},
	{ebiten.KeyShiftRight, input.Dash},
	{ebiten.KeyK, input.Dash},
	{ebiten.KeyEnter, input.Confirm},
	{ebiten.KeyEscape, input.Cancel},
}

// pollButtons читает уровни клавиш. Фронты считает движок.
func pollButtons() input.Buttons {
	var b input.Buttons
	for _, k := range keymap {
		if ebiten.IsKeyPressed(k.key) {
			b = b.With(k.btn)
		}
	}
	return b
}

// Host реализует ebiten.Game.
type Host struct {
	game  *engine.Game
	sound *audio.Player
	shake *view.Shake

	snap        *api.Snapshot
	grid        *api.GridView
	gridVersion int

	width, height int

	log *logrus.Entry
}

// New создает хост. sound может быть nil.
func New(g *engine.Game, sound *audio.Player) *Host {
	cfg := g.Config()
	h := &Host{
		game:   g,
		sound:  sound,
		shake:  view.NewShake(g.Seed()),
		width:  cfg.Viewport.Width,
		height: cfg.Viewport.Height,
		log:    logger.Log.WithField("component", "window_host"),
	}
	h.refresh()
	return h
}

// Run открывает окно и блокируется до закрытия.
func Run(h *Host, title string) error {
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(domain.TicksPerSecond)

	h.log.WithField("run_id", h.game.RunID().String()).Info("Window host started")
	return ebiten.RunGame(h)
}

func (h *Host) Update() error {
	b := pollButtons()
	if b.Has(input.Cancel) {
		h.log.Info("Window closed by player")
		return ebiten.Termination
	}
	if err := h.game.Tick(b); err != nil {
		return err
	}
	h.refresh()
	return nil
}

func (h *Host) refresh() {
	fresh := h.game.GridVersion() != h.gridVersion
	s := h.game.Snapshot(fresh)
	if s.Grid != nil {
		h.grid = s.Grid
		h.gridVersion = s.GridVersion
	}
	h.shake.Apply(s.Cues)
	if h.sound != nil {
		h.sound.Play(s.Cues)
	}
	h.game.DrainCues()
	h.snap = s
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

func (h *Host) Draw(screen *ebiten.Image) {
	s := h.snap
	screen.Fill(color.Black)
	if s == nil || h.grid == nil {
		return
	}
	if s.Over {
		h.drawLines(screen, view.GameOverLines(s))
		return
	}

	dx, dy := h.shake.Offset()
	ox := float32(-s.Camera.X + dx)
	oy := float32(-s.Camera.Y + dy)
	tile := float32(h.grid.Tile)

	c0, r0, c1, r1 := view.CellRange(s.Camera, h.grid)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			clr := view.ColorFloor
			if h.grid.IsWall(col, row) {
				clr = view.ColorWall
			}
			vector.DrawFilledRect(screen, float32(col)*tile+ox, float32(row)*tile+oy, tile, tile, clr, false)
		}
	}

	for _, sp := range s.Spawners {
		vector.StrokeRect(screen, float32(sp.X)+ox, float32(sp.Y)+oy, float32(sp.Size), float32(sp.Size), 3, view.ColorSpawner, false)
	}
	for _, l := range s.Loot {
		clr := view.LootColor(l.Kind)
		if l.Opened {
			clr = view.ColorOpened
		}
		inset := float32(l.Size) / 4
		vector.DrawFilledRect(screen, float32(l.X)+ox+inset, float32(l.Y)+oy+inset, float32(l.Size)/2, float32(l.Size)/2, clr, false)
	}
	for _, p := range s.Projectiles {
		r := float32(p.Size) / 2
		vector.DrawFilledCircle(screen, float32(p.X)+ox+r, float32(p.Y)+oy+r, r, view.ColorProjectile, false)
	}
	for _, e := range s.Enemies {
		h.drawEnemy(screen, e, ox, oy)
	}
	h.drawPlayer(screen, s.Player, ox, oy)

	for _, d := range s.DamageNumbers {
		text.Draw(screen, fmt.Sprint(d.Value), basicfont.Face7x13, int(float32(d.X)+ox), int(float32(d.Y)+oy), view.Fade(view.ColorDamage, d.Alpha))
	}
	for _, t := range s.Texts {
		text.Draw(screen, t.Text, basicfont.Face7x13, int(float32(t.X)+ox), int(float32(t.Y)+oy), view.ParseHex(t.Color, t.Alpha))
	}

	h.drawHUD(screen, s)
}

func (h *Host) drawEnemy(screen *ebiten.Image, e api.EnemyView, ox, oy float32) {
	size := float32(e.Size)
	x, y := float32(e.X)+ox, float32(e.Y)+oy

	if e.Boss != nil {
		switch {
		case e.Boss.Airborne:
			// Тень в точке приземления
			vector.DrawFilledRect(screen, float32(e.Boss.TargetX)+ox, float32(e.Boss.TargetY)+oy, size, size, view.ColorTelegraph, false)
			return
		case e.Boss.State == "DASH" || e.Boss.State == "JUMP_ATTACK":
			vector.StrokeRect(screen, x-4, y-4, size+8, size+8, 2, view.ColorTelegraph, false)
		}
	}

	vector.DrawFilledRect(screen, x, y, size, size, view.EnemyColor(e.Kind), false)
	if e.Attacking {
		vector.StrokeRect(screen, x, y, size, size, 2, view.ColorText, false)
	}
	if e.Boss == nil && e.MaxHP > 0 && e.HP < e.MaxHP {
		frac := float32(e.HP) / float32(e.MaxHP)
		vector.DrawFilledRect(screen, x, y-6, size, 4, view.ColorHPBack, false)
		vector.DrawFilledRect(screen, x, y-6, size*frac, 4, view.ColorHPFront, false)
	}
}

func (h *Host) drawPlayer(screen *ebiten.Image, p api.PlayerView, ox, oy float32) {
	if p.Attacking {
		a := p.AttackArea
		vector.DrawFilledRect(screen, float32(a.X)+ox, float32(a.Y)+oy, float32(a.W), float32(a.H), view.ColorAttack, false)
	}
	clr := view.ColorPlayer
	if p.Invincible > 0 {
		clr = view.ColorInvincible
	}
	vector.DrawFilledRect(screen, float32(p.X)+ox, float32(p.Y)+oy, float32(p.Size), float32(p.Size), clr, false)
}

func (h *Host) drawHUD(screen *ebiten.Image, s *api.Snapshot) {
	for i, line := range view.HUDLines(s) {
		text.Draw(screen, line, basicfont.Face7x13, 10, 20+i*15, view.ColorText)
	}

	if frac := view.BossHealth(s); frac >= 0 {
		w := float32(h.width) * 0.6
		x := (float32(h.width) - w) / 2
		y := float32(h.height) - 30
		vector.DrawFilledRect(screen, x, y, w, 14, view.ColorHPBack, false)
		vector.DrawFilledRect(screen, x, y, w*float32(frac), 14, view.ColorHPFront, false)
		vector.StrokeRect(screen, x, y, w, 14, 2, view.ColorText, false)
	}

	if b := view.Banner(s); b != "" {
		x := (h.width - len(b)*basicfont.Face7x13.Advance) / 2
		text.Draw(screen, b, basicfont.Face7x13, x, h.height/3, view.ColorText)
	}
}

// drawLines - блок строк по центру экрана.
func (h *Host) drawLines(screen *ebiten.Image, lines []string) {
	lineH := basicfont.Face7x13.Height + 4
	y := (h.height - len(lines)*lineH) / 2
	for i, l := range lines {
		x := (h.width - len(l)*basicfont.Face7x13.Advance) / 2
		text.Draw(screen, l, basicfont.Face7x13, x, y+i*lineH, view.ColorText)
	}
}

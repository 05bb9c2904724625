// Package terminal - хост для терминала на tcell: символьная отрисовка,
// клавиатура и звук подсказок.
package terminal

import (
	"context"
	"image/color"
	"strings"
	"time"

	"dungeon-arena/internal/audio"
	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/hosts/view"
	"dungeon-arena/internal/input"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

const (
	// cellWidth - клетка сетки занимает две колонки терминала (пропорции).
	cellWidth = 2
	// hudRows - строки статуса над картой.
	hudRows = 1
	// shakeScale - пикселей тряски на одну колонку смещения.
	shakeScale = 8
)

// Host владеет Game и крутит её на своей горутине.
type Host struct {
	screen tcell.Screen
	game   *engine.Game
	sound  *audio.Player
	keys   *heldKeys
	clock  *engine.Clock
	shake  *view.Shake

	snap        *api.Snapshot
	grid        *api.GridView
	gridVersion int
	quit        bool

	log *logrus.Entry
}

// New связывает экран и игру. sound может быть nil.
func New(screen tcell.Screen, g *engine.Game, sound *audio.Player) *Host {
	h := &Host{
		screen: screen,
		game:   g,
		sound:  sound,
		keys:   newHeldKeys(),
		clock:  engine.NewClock(engine.TickDuration, engine.MaxCatchUpTicks),
		shake:  view.NewShake(g.Seed()),
		log:    logger.Log.WithField("component", "terminal_host"),
	}
	h.refresh()
	return h
}

// Run крутит цикл до выхода игрока или отмены ctx.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(engine.TickDuration)
	defer ticker.Stop()

	h.log.WithField("run_id", h.game.RunID().String()).Info("Terminal host started")
	h.clock.Since(time.Now())
	h.draw()

	for !h.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			h.handleEvent(ev, time.Now())
		case now := <-ticker.C:
			if err := h.step(h.clock.Since(now), now); err != nil {
				return err
			}
			h.draw()
		}
	}
	h.log.Info("Terminal host stopped")
	return nil
}

func (h *Host) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			h.quit = true
			return
		}
		b := buttonFor(ev)
		if b.Has(input.Cancel) {
			h.quit = true
			return
		}
		h.keys.Press(b, now)
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

// step выполняет n тиков.
func (h *Host) step(n int, now time.Time) error {
	for i := 0; i < n; i++ {
		wasOver := h.game.Over()
		if err := h.game.Tick(h.keys.Buttons(now)); err != nil {
			return err
		}
		if wasOver && !h.game.Over() {
			h.keys.Release()
		}
	}
	if n > 0 {
		h.refresh()
	}
	return nil
}

// refresh снимает снапшот и забирает подсказки.
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

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(90, 84, 96))
	styleFloor  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(60, 56, 66))
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func rgb(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// draw рисует кадр: карта вокруг игрока, сущности, HUD, баннеры.
func (h *Host) draw() {
	s := h.snap
	h.screen.Clear()
	if s == nil || h.grid == nil {
		h.screen.Show()
		return
	}
	if s.Over {
		h.drawLines(view.GameOverLines(s), styleBanner)
		h.screen.Show()
		return
	}

	sw, sh := h.screen.Size()
	cols, rows := sw/cellWidth, sh-hudRows
	tile := h.grid.Tile

	dx, dy := h.shake.Offset()
	pc, pr := center(s.Player.X, s.Player.Y, s.Player.Size, tile)
	left := pc - cols/2 - dx/shakeScale
	top := pr - rows/2 - dy/shakeScale

	put := func(col, row int, ch rune, st tcell.Style) {
		sx, sy := (col-left)*cellWidth, (row-top)+hudRows
		if sx < 0 || sx >= sw || sy < hudRows || sy >= sh {
			return
		}
		h.screen.SetContent(sx, sy, ch, nil, st)
	}

	for row := top; row < top+rows; row++ {
		for col := left; col < left+cols; col++ {
			if h.grid.IsWall(col, row) {
				put(col, row, '#', styleWall)
			} else {
				put(col, row, '.', styleFloor)
			}
		}
	}

	for _, sp := range s.Spawners {
		c, r := center(sp.X, sp.Y, sp.Size, tile)
		put(c, r, '&', tcell.StyleDefault.Foreground(rgb(view.ColorSpawner)))
	}
	for _, l := range s.Loot {
		if l.Opened {
			continue
		}
		c, r := center(l.X, l.Y, l.Size, tile)
		put(c, r, '$', tcell.StyleDefault.Foreground(rgb(view.LootColor(l.Kind))))
	}
	for _, p := range s.Projectiles {
		c, r := center(int(p.X), int(p.Y), p.Size, tile)
		put(c, r, '*', tcell.StyleDefault.Foreground(rgb(view.ColorProjectile)))
	}
	for _, e := range s.Enemies {
		st := tcell.StyleDefault.Foreground(rgb(view.EnemyColor(e.Kind)))
		if e.Attacking {
			st = st.Reverse(true)
		}
		if e.Boss != nil && e.Boss.Airborne {
			tc, tr := center(e.Boss.TargetX, e.Boss.TargetY, e.Size, tile)
			put(tc, tr, 'X', tcell.StyleDefault.Foreground(tcell.ColorRed).Blink(true))
			continue
		}
		c, r := center(e.X, e.Y, e.Size, tile)
		put(c, r, enemyRune(e.Kind), st)
	}

	pst := tcell.StyleDefault.Foreground(rgb(view.ColorPlayer)).Bold(true)
	if s.Player.Invincible > 0 {
		pst = tcell.StyleDefault.Foreground(rgb(view.ColorInvincible))
	}
	if s.Player.Attacking {
		pst = pst.Reverse(true)
	}
	put(pc, pr, '@', pst)

	h.drawText(0, 0, strings.Join(view.HUDLines(s), " | "), styleHUD)
	if hp := view.BossHealth(s); hp >= 0 {
		h.drawBossBar(hp)
	}
	if b := view.Banner(s); b != "" {
		h.drawText((sw-len(b))/2, hudRows+rows/4, b, styleBanner)
	}
	h.screen.Show()
}

func center(x, y, size, tile int) (int, int) {
	if tile <= 0 {
		return 0, 0
	}
	return (x + size/2) / tile, (y + size/2) / tile
}

func enemyRune(kind string) rune {
	switch kind {
	case "RANGED":
		return 'r'
	case "BOSS":
		return 'B'
	}
	return 'm'
}

func (h *Host) drawText(x, y int, text string, st tcell.Style) {
	for i, ch := range text {
		h.screen.SetContent(x+i, y, ch, nil, st)
	}
}

// drawLines - блок строк по центру экрана.
func (h *Host) drawLines(lines []string, st tcell.Style) {
	sw, sh := h.screen.Size()
	y := (sh - len(lines)) / 2
	for i, l := range lines {
		h.drawText((sw-len(l))/2, y+i, l, st)
	}
}

// drawBossBar - полоса здоровья босса в последней строке.
func (h *Host) drawBossBar(frac float64) {
	sw, sh := h.screen.Size()
	width := sw - 8
	filled := int(float64(width) * frac)
	h.drawText(0, sh-1, "BOSS ", styleHUD)
	for i := 0; i < width; i++ {
		ch, st := '-', tcell.StyleDefault.Foreground(rgb(view.ColorHPBack))
		if i < filled {
			ch, st = '=', tcell.StyleDefault.Foreground(rgb(view.ColorHPFront))
		}
		h.screen.SetContent(5+i, sh-1, ch, nil, st)
	}
}

package agent

import (
	"math"
	"math/rand"

	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/input"
	"dungeon-arena/internal/systems"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	// stuckTicks - столько тиков без смещения, и бот считает себя застрявшим.
	stuckTicks = 8
	// wanderTicks - длина случайной прогулки после застревания.
	wanderTicks = 20
	// panicHP - доля здоровья, ниже которой бот уходит рывком от врага.
	panicHP = 0.35
	// deadZone - допуск по оси, внутри которого бот не дёргается.
	deadZone = 4
)

// Bot - автопилот (Headless Agent). Видит только снапшоты, как любой другой
// клиент, и возвращает кнопки на следующий тик. Реализует engine.InputSource.
//
// Приоритеты:
//  1. Забег окончен -> Confirm (рестарт).
//  2. Мало здоровья и враг рядом -> рывок от врага.
//  3. Видимый враг в зоне удара -> удар.
//  4. Видимый враг -> идти к нему.
//  5. Закрытый ящик -> идти к нему.
//  6. Иначе или при застревании -> случайная прогулка.
type Bot struct {
	rng *rand.Rand

	// Локальная копия сетки. Сервер шлёт её только при смене этапа.
	grid        *domain.Grid
	gridVersion int
	tile        int

	// Удар и Confirm срабатывают по фронту, поэтому кнопку надо отпускать.
	prev input.Buttons

	lastX, lastY int
	still        int
	wander       input.Buttons
	wanderLeft   int

	log *logrus.Entry
}

func NewBot(seed int64) *Bot {
	return &Bot{
		rng: rand.New(rand.NewSource(seed)),
		log: logger.Log.WithField("component", "bot"),
	}
}

// Next - мозг бота.
func (b *Bot) Next(s *api.Snapshot) input.Buttons {
	out := b.decide(s)
	b.prev = out
	return out
}

func (b *Bot) decide(s *api.Snapshot) input.Buttons {
	if s == nil {
		return 0
	}
	b.syncGrid(s.Grid)

	if s.Over {
		return b.tap(input.Confirm)
	}
	p := s.Player
	if !p.Alive || b.grid == nil {
		return 0
	}
	b.trackMovement(p)

	if b.wanderLeft > 0 {
		b.wanderLeft--
		return b.wander
	}

	target := b.nearestVisibleEnemy(s)
	if target != nil {
		d := centerDistance(p.X, p.Y, p.Size, target.X, target.Y, target.Size)

		if float64(p.HP) < float64(p.MaxHP)*panicHP && p.DashCooldown == 0 && !p.Dashing && d < 3*p.Size {
			// Рывок идёт по взгляду с прошлого тика: сначала разворот
			dir := away(p, target)
			if !b.prev.Has(dir) {
				return dir
			}
			return dir.With(input.Dash)
		}
		if overlaps(p.AttackArea, target.X, target.Y, target.Size) {
			if p.Attacking {
				return 0
			}
			return b.tap(input.Attack)
		}
		return toward(p.X, p.Y, target.X, target.Y)
	}

	if box := b.nearestLoot(s); box != nil {
		return toward(p.X, p.Y, box.X, box.Y)
	}

	b.startWander()
	return b.wander
}

// syncGrid пересобирает локальную сетку, когда пришла новая версия.
func (b *Bot) syncGrid(gv *api.GridView) {
	if gv == nil || (b.grid != nil && gv.Version == b.gridVersion) {
		return
	}
	b.grid = buildLocalGrid(gv)
	b.gridVersion = gv.Version
	b.tile = gv.Tile
	b.still, b.wanderLeft = 0, 0

	b.log.WithFields(logrus.Fields{
		"stage":   gv.Stage,
		"version": gv.Version,
	}).Debug("Bot received new grid")
}

// buildLocalGrid переводит DTO сетки в domain.Grid, чтобы переиспользовать
// системную проверку прямой видимости.
func buildLocalGrid(gv *api.GridView) *domain.Grid {
	g := domain.NewGrid(gv.Width, gv.Height)
	for row := 0; row < gv.Height; row++ {
		for col := 0; col < gv.Width; col++ {
			if !gv.IsWall(col, row) {
				g.Set(col, row, domain.Floor)
			}
		}
	}
	return g
}

// tap нажимает кнопку, только если в прошлом тике она была отпущена.
func (b *Bot) tap(btn input.Buttons) input.Buttons {
	if b.prev.Has(btn) {
		return 0
	}
	return btn
}

func (b *Bot) trackMovement(p api.PlayerView) {
	if p.X == b.lastX && p.Y == b.lastY && b.prev&(input.Up|input.Down|input.Left|input.Right) != 0 {
		b.still++
	} else {
		b.still = 0
	}
	b.lastX, b.lastY = p.X, p.Y

	if b.still >= stuckTicks {
		b.still = 0
		b.startWander()
	}
}

func (b *Bot) startWander() {
	dirs := [...]input.Buttons{input.Up, input.Down, input.Left, input.Right}
	b.wander = dirs[b.rng.Intn(len(dirs))]
	b.wanderLeft = wanderTicks
}

func (b *Bot) cell(x, y, size int) domain.Position {
	if b.tile <= 0 {
		return domain.Position{}
	}
	return domain.Position{X: (x + size/2) / b.tile, Y: (y + size/2) / b.tile}
}

func (b *Bot) visible(from, to domain.Position) bool {
	return systems.HasLineOfSight(b.grid, from, to)
}

func (b *Bot) nearestVisibleEnemy(s *api.Snapshot) *api.EnemyView {
	p := s.Player
	me := b.cell(p.X, p.Y, p.Size)

	var best *api.EnemyView
	bestDist := math.MaxInt
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !b.visible(me, b.cell(e.X, e.Y, e.Size)) {
			continue
		}
		if d := centerDistance(p.X, p.Y, p.Size, e.X, e.Y, e.Size); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (b *Bot) nearestLoot(s *api.Snapshot) *api.LootView {
	p := s.Player

	var best *api.LootView
	bestDist := math.MaxInt
	for i := range s.Loot {
		l := &s.Loot[i]
		if l.Opened {
			continue
		}
		if d := centerDistance(p.X, p.Y, p.Size, l.X, l.Y, l.Size); d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

func centerDistance(ax, ay, as, bx, by, bs int) int {
	return systems.Distance(ax+as/2, ay+as/2, bx+bs/2, by+bs/2)
}

func overlaps(r api.Rect, x, y, size int) bool {
	return r.X < x+size && r.X+r.W > x && r.Y < y+size && r.Y+r.H > y
}

// toward выбирает кнопки направления к точке. Допуск deadZone гасит дрожание.
func toward(fromX, fromY, toX, toY int) input.Buttons {
	var out input.Buttons
	switch dx := toX - fromX; {
	case dx > deadZone:
		out = out.With(input.Right)
	case dx < -deadZone:
		out = out.With(input.Left)
	}
	switch dy := toY - fromY; {
	case dy > deadZone:
		out = out.With(input.Down)
	case dy < -deadZone:
		out = out.With(input.Up)
	}
	return out
}

// away - одна кнопка от врага по доминирующей оси.
func away(p api.PlayerView, e *api.EnemyView) input.Buttons {
	dx, dy := p.X-e.X, p.Y-e.Y
	if abs(dx) >= abs(dy) {
		if dx >= 0 {
			return input.Right
		}
		return input.Left
	}
	if dy >= 0 {
		return input.Down
	}
	return input.Up
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

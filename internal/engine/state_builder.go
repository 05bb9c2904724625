package engine

import (
	"dungeon-arena/internal/core/types"
	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/api"
)

// Snapshot создает копию мира для рендерера. Сетка включается только при withGrid:
// она меняется раз в этап, а клиент хранит последнюю полученную.
func (g *Game) Snapshot(withGrid bool) *api.Snapshot {
	w := g.world
	p := w.Player

	s := &api.Snapshot{
		Type:        "SNAPSHOT",
		RunID:       g.runID.String(),
		Tick:        w.Tick,
		Over:        g.over,
		GridVersion: g.gridVersion,
		Camera: api.CameraView{
			X:      p.X - (w.ViewWidth/2 - w.Tile/2),
			Y:      p.Y - (w.ViewHeight/2 - w.Tile/2),
			Width:  w.ViewWidth,
			Height: w.ViewHeight,
		},
		Player:   playerView(p),
		Progress: g.progressView(),
	}

	if withGrid {
		s.Grid = g.GridView()
	}

	s.Enemies = make([]api.EnemyView, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Present() {
			s.Enemies = append(s.Enemies, enemyView(e))
		}
	}

	s.Projectiles = make([]api.ProjectileView, 0, len(w.Projectiles))
	for _, pr := range w.Projectiles {
		if pr.Active {
			s.Projectiles = append(s.Projectiles, api.ProjectileView{
				ID: uint64(pr.ID), X: pr.X, Y: pr.Y, Size: pr.Size,
			})
		}
	}

	s.Loot = make([]api.LootView, 0, len(w.Loot))
	for _, b := range w.Loot {
		s.Loot = append(s.Loot, api.LootView{
			ID: uint64(b.ID), X: b.X, Y: b.Y, Size: b.Size,
			Kind: b.Kind.String(), Opened: b.Opened,
		})
	}

	s.Spawners = make([]api.SpawnerView, 0, len(w.Spawners))
	for _, sp := range w.Spawners {
		s.Spawners = append(s.Spawners, api.SpawnerView{
			ID: uint64(sp.ID), X: sp.X, Y: sp.Y, Size: sp.Size, Active: sp.Active,
		})
	}

	for _, d := range w.DamageNumbers {
		s.DamageNumbers = append(s.DamageNumbers, api.DamageNumberView{
			X: d.X, Y: d.Y, Value: d.Value, Alpha: d.Fraction(),
		})
	}
	for _, t := range w.Texts {
		s.Texts = append(s.Texts, api.TextView{
			X: t.X, Y: t.Y, Text: t.Text,
			Color: types.MakeGlyph(t.Color, ' ').HexColor(),
			Alpha: t.Fraction(),
		})
	}
	for _, c := range w.Cues {
		s.Cues = append(s.Cues, api.CueView{
			Kind: c.Kind.String(), Magnitude: c.Magnitude, Duration: c.Duration,
		})
	}

	return s
}

// GridView - копия текущей сетки построчно.
func (g *Game) GridView() *api.GridView {
	grid := g.world.Grid
	rows := make([]string, grid.Height)
	buf := make([]byte, grid.Width)
	for r := 0; r < grid.Height; r++ {
		for c := 0; c < grid.Width; c++ {
			if grid.IsWall(c, r) {
				buf[c] = types.GlyphWall.Char()
			} else {
				buf[c] = types.GlyphFloor.Char()
			}
		}
		rows[r] = string(buf)
	}
	return &api.GridView{
		Width:   grid.Width,
		Height:  grid.Height,
		Tile:    g.world.Tile,
		Stage:   g.prog.Stage,
		Version: g.gridVersion,
		Rows:    rows,
	}
}

func (g *Game) progressView() api.ProgressView {
	p := g.prog
	return api.ProgressView{
		Score:               p.Score,
		TotalScore:          p.TotalScore,
		Stage:               p.Stage,
		Difficulty:          p.Difficulty,
		NextBossScore:       p.NextBossScore,
		BossActive:          p.BossActive,
		BossPending:         p.BossPending,
		BossCountdown:       p.BossCountdown,
		TransitionPending:   p.TransitionPending,
		TransitionCountdown: p.TransitionCountdown,
		BannerTicks:         p.BannerTicks,
	}
}

func playerView(p *domain.Player) api.PlayerView {
	area := p.AttackArea()
	return api.PlayerView{
		ID:           uint64(p.ID),
		X:            p.X,
		Y:            p.Y,
		Size:         p.Size,
		HP:           p.HP,
		MaxHP:        p.MaxHP,
		Alive:        p.Alive,
		Damage:       p.Damage,
		Armor:        p.Armor,
		Range:        p.Range,
		BaseRange:    p.BaseRange,
		RangeTimer:   p.RangeTimer,
		Attacking:    p.Attack.Active,
		AttackArea:   api.Rect{X: area.X, Y: area.Y, W: area.W, H: area.H},
		Dashing:      p.Dash.Active,
		DashCooldown: p.Dash.Cooldown,
		Invincible:   p.Invincible,
		Pushed:       p.Push.Active,
		Facing:       p.Facing.String(),
	}
}

func enemyView(e *domain.Enemy) api.EnemyView {
	v := api.EnemyView{
		ID:        uint64(e.ID),
		Kind:      e.Kind.String(),
		X:         e.X,
		Y:         e.Y,
		Size:      e.Size,
		HP:        e.HP,
		MaxHP:     e.MaxHP,
		Attacking: e.Attacking,
		Pushed:    e.Push.Active,
	}

	if b := e.Brain; b != nil {
		v.Boss = &api.BossView{
			State:       b.State.String(),
			ActionTimer: b.ActionTimer,
			PhaseTimer:  b.PhaseTimer,
			Airborne:    b.Airborne,
		}
		if b.Airborne {
			v.Boss.TargetX, v.Boss.TargetY = b.TargetX, b.TargetY
		}
	}

	if e.Kind == enums.KindRangedEnemy {
		v.ShotMode = "SINGLE"
		if e.ShotMode == domain.ShotSpread {
			v.ShotMode = "SPREAD"
		}
	}
	return v
}

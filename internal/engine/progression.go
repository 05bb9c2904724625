package engine

import (
	"fmt"

	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/dungeon"

	"github.com/sirupsen/logrus"
)

// Progression - состояние прогрессии одного забега.
// Меняется только боем (через domain.Progress) и таймерами в начале тика.
type Progression struct {
	Score         int
	TotalScore    int
	Stage         int
	Difficulty    int
	NextBossScore int

	BossActive    bool
	BossPending   bool
	BossCountdown int

	TransitionPending   bool
	TransitionCountdown int

	BannerTicks int
}

func newProgression() Progression {
	return Progression{
		Stage:         1,
		NextBossScore: domain.FirstBossThreshold,
	}
}

// Final - итоговый счёт забега.
func (p Progression) Final() int {
	return p.TotalScore + p.Score
}

// AddScore реализует domain.Progress: начисляет очки, пересчитывает сложность
// и запускает вызов босса при пересечении порога.
func (g *Game) AddScore(v int) {
	p := &g.prog
	p.Score += v
	g.updateDifficulty()

	if p.Score >= p.NextBossScore && !p.BossActive && !p.BossPending && !p.TransitionPending {
		g.beginBossSequence()
	}
}

// OnBossKilled реализует domain.Progress.
func (g *Game) OnBossKilled() {
	p := &g.prog
	p.BossActive = false
	p.Score += domain.BossKillBonus

	for _, s := range g.world.Spawners {
		s.Active = true
	}

	g.world.Emit(domain.Cue{Kind: domain.CueBossDefeated})
	g.bossDefeated()
}

// bossDefeated закрывает этап: бонус, перенос счёта в общий, отсчёт до перехода.
func (g *Game) bossDefeated() {
	p := &g.prog
	bonus := p.Score * domain.BossDefeatBonusPct / 100
	p.TotalScore += p.Score + bonus
	p.Score = 0
	g.updateDifficulty()

	p.TransitionPending = true
	p.TransitionCountdown = g.cfg.Timing.StageTransitionDelay

	g.announce("BOSS DEFEATED", domain.ColorYellow, logrus.Fields{
		"bonus": bonus,
		"total": p.TotalScore,
	})
}

// updateDifficulty - сложность не убывает в течение забега.
func (g *Game) updateDifficulty() {
	p := &g.prog
	if d := p.Final() / domain.DifficultyStep; d > p.Difficulty {
		p.Difficulty = d
	}
}

// beginBossSequence убирает живых врагов (только помечает, коллекция
// чистится в конце тика), выключает спавнеры и запускает отсчёт.
func (g *Game) beginBossSequence() {
	p := &g.prog
	w := g.world

	cleared := 0
	for _, e := range w.Enemies {
		if e.Present() {
			e.Removed = true
			cleared++
		}
	}
	for _, s := range w.Spawners {
		s.Active = false
	}

	p.BossPending = true
	p.BossCountdown = g.cfg.Timing.BossSpawnDelay
	p.NextBossScore += domain.BossThresholdStep

	w.Emit(domain.Cue{Kind: domain.CueBossIncoming})
	g.announce("BOSS INCOMING", domain.ColorRed, logrus.Fields{
		"cleared":         cleared,
		"next_boss_score": p.NextBossScore,
	})
}

// advanceTimers - первая фаза тика: отсчёты босса, перехода и баннера.
func (g *Game) advanceTimers() error {
	p := &g.prog

	if p.BossPending {
		p.BossCountdown--
		if p.BossCountdown <= 0 {
			if err := g.spawnBoss(); err != nil {
				return err
			}
		}
	}

	if p.TransitionPending {
		p.TransitionCountdown--
		if p.TransitionCountdown <= 0 {
			if err := g.startNextStage(); err != nil {
				return err
			}
		}
	}

	if p.BannerTicks > 0 {
		p.BannerTicks--
	}
	return nil
}

func (g *Game) spawnBoss() error {
	w := g.world
	p := &g.prog
	pc := w.Player.Cell(w.Tile)

	cell, err := dungeon.FloorCellNear(w.Grid, w.Rng, pc.X, pc.Y, domain.BossPlacementWindow)
	if err != nil {
		return fmt.Errorf("place boss: %w", err)
	}

	boss := domain.NewEnemy(w.IDs.Next(enums.KindBoss), enums.KindBoss,
		cell.X*w.Tile, cell.Y*w.Tile, w.Tile, p.Difficulty, domain.ShotSingle)
	w.Enemies = append(w.Enemies, boss)

	p.BossPending = false
	p.BossCountdown = 0
	p.BossActive = true

	w.Emit(domain.Cue{Kind: domain.CueBossSpawn})
	g.log.WithFields(logrus.Fields{
		"boss_id":    boss.ID,
		"hp":         boss.HP,
		"difficulty": p.Difficulty,
		"cell":       cell,
	}).Info("Boss spawned")
	return nil
}

func (g *Game) startNextStage() error {
	p := &g.prog
	p.Stage++
	p.TransitionPending = false
	p.TransitionCountdown = 0

	if err := g.buildStage(); err != nil {
		return fmt.Errorf("stage %d: %w", p.Stage, err)
	}

	g.world.Player.SetInvincible(g.cfg.Timing.StageInvincibility)
	g.world.Emit(domain.Cue{Kind: domain.CueStageClear})
	return nil
}

// buildStage генерирует сетку текущего этапа и заново расставляет население.
// Коллекции очищаются целиком, флаги босса и порог сбрасываются.
func (g *Game) buildStage() error {
	w := g.world
	p := &g.prog

	w.Stage = p.Stage
	w.IDs.Reset(uint32(p.Stage))
	w.Grid = dungeon.Generate(g.cfg.Grid.Width, g.cfg.Grid.Height, g.cfg.Grid.WalkSteps, w.Rng)
	g.gridVersion++

	w.Enemies = nil
	w.Projectiles = nil
	w.Loot = nil
	w.Spawners = nil
	w.DamageNumbers = nil
	w.Texts = nil

	layout, err := dungeon.Populate(w.Grid, w.Rng, g.cfg.Population.Spawners, g.cfg.Population.LootBoxes)
	if err != nil {
		return err
	}

	pl := w.Player
	pl.ID = w.IDs.Next(enums.KindPlayer)
	pl.X, pl.Y = layout.Player.X*w.Tile, layout.Player.Y*w.Tile
	pl.Push.Active = false
	pl.Dash.Active = false

	for _, c := range layout.Spawners {
		w.Spawners = append(w.Spawners, domain.NewSpawner(w.IDs.Next(enums.KindSpawner), c.X*w.Tile, c.Y*w.Tile, w.Tile))
	}
	for _, c := range layout.Loot {
		kind := enums.LootKind(w.Rng.Intn(enums.LootKindCount))
		w.Loot = append(w.Loot, domain.NewLootBox(w.IDs.Next(enums.KindLootBox), c.X*w.Tile, c.Y*w.Tile, w.Tile, kind))
	}

	p.BossActive = false
	p.BossPending = false
	p.BossCountdown = 0
	p.NextBossScore = domain.FirstBossThreshold
	p.BannerTicks = domain.StageBannerTicks

	g.announce(fmt.Sprintf("STAGE %d", p.Stage), domain.ColorWhite, logrus.Fields{
		"floor":    w.Grid.Count(domain.Floor),
		"spawners": len(w.Spawners),
		"loot":     len(w.Loot),
	})
	return nil
}

var _ domain.Progress = (*Game)(nil)

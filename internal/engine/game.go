package engine

import (
	"fmt"
	"math/rand"
	"time"

	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/input"
	"dungeon-arena/internal/systems"
	"dungeon-arena/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ScoreRecorder - внешний получатель результата забега (таблица рекордов).
type ScoreRecorder interface {
	Record(name string, score int) error
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithRecorder подключает получателя итогового счёта.
func WithRecorder(r ScoreRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithRunID задаёт идентификатор забега (по умолчанию случайный uuid).
func WithRunID(id uuid.UUID) Option {
	return func(g *Game) { g.runID = id }
}

// WithRecording включает запись кнопок для реплея. Без неё Replay() вернёт nil.
func WithRecording() Option {
	return func(g *Game) { g.recording = true }
}

// Game - корень симуляции. Владеет миром и прогрессией, двигает их по тикам.
// Не потокобезопасен: все вызовы из одной горутины.
type Game struct {
	cfg   Config
	world *domain.World
	prog  Progression
	input input.State

	recorder  ScoreRecorder
	runID     uuid.UUID
	replay    *domain.ReplaySession
	recording bool

	gridVersion int
	over        bool
	recorded    bool

	log *logrus.Entry
}

// New создает игру и строит первый этап.
// Ошибка возможна только на вырожденной конфигурации (нет клеток пола).
func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	g := &Game{cfg: cfg, runID: uuid.New()}
	for _, opt := range opts {
		opt(g)
	}

	g.log = logger.Log.WithFields(logrus.Fields{
		"component": "game_engine",
		"run_id":    g.runID.String(),
	})

	g.world = &domain.World{
		Tile:       cfg.TileSize,
		ViewWidth:  cfg.Viewport.Width,
		ViewHeight: cfg.Viewport.Height,
		Rng:        rand.New(rand.NewSource(cfg.Seed)),
	}
	g.world.Player = domain.NewPlayer(0, cfg.TileSize)

	if g.recording {
		g.replay = &domain.ReplaySession{
			RunID:      g.runID.String(),
			Seed:       cfg.Seed,
			Timestamp:  time.Now().Unix(),
			PlayerName: cfg.PlayerName,
		}
	}

	if err := g.reset(); err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"seed":   cfg.Seed,
		"player": cfg.PlayerName,
		"grid":   fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
	}).Info("Game created")
	return g, nil
}

// reset - начало забега: прогрессия и игрок к начальным значениям, этап 1.
func (g *Game) reset() error {
	g.prog = newProgression()
	g.over = false
	g.recorded = false
	g.input.Reset()

	w := g.world
	w.Tick = 0
	w.Cues = nil
	w.Player.Reset(w.Tile)

	return g.buildStage()
}

// Restart начинает новый забег на том же генераторе случайных чисел.
func (g *Game) Restart() error {
	g.log.WithField("final_score", g.prog.Final()).Info("Run restarted")
	if err := g.reset(); err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	return nil
}

// Tick продвигает симуляцию на один шаг с кнопками in.
// После смерти игрока мир стоит, Confirm начинает новый забег.
func (g *Game) Tick(in input.Buttons) error {
	if g.replay != nil {
		g.replay.Record(in)
	}
	g.input.Next(in)

	if g.over {
		if g.input.JustPressed(input.Confirm) {
			return g.Restart()
		}
		return nil
	}

	w := g.world
	w.Tick++

	if err := g.advanceTimers(); err != nil {
		return err
	}

	systems.UpdatePlayer(w, &g.input, g)
	systems.UpdateSpawners(w, g.prog.Difficulty, g.cfg.Population.EnemyCap)
	systems.UpdateEnemies(w)
	systems.UpdateProjectiles(w)

	systems.PruneEnemies(w)
	systems.PruneProjectiles(w)

	if err := systems.RespawnLoot(w); err != nil {
		return err
	}
	systems.UpdateEffects(w)

	if !w.Player.Alive {
		g.finishRun()
	}
	return nil
}

// finishRun фиксирует конец забега. Счёт уходит получателю ровно один раз.
func (g *Game) finishRun() {
	g.over = true
	g.world.Emit(domain.Cue{Kind: domain.CueGameOver})

	final := g.prog.Final()
	g.log.WithFields(logrus.Fields{
		"score": final,
		"stage": g.prog.Stage,
		"tick":  g.world.Tick,
	}).Info("Run finished")

	if g.recorded {
		return
	}
	g.recorded = true

	if g.recorder == nil {
		return
	}
	if err := g.recorder.Record(g.cfg.PlayerName, final); err != nil {
		g.log.WithError(err).Warn("Failed to record score")
	}
}

// DrainCues забирает накопленные подсказки.
func (g *Game) DrainCues() []domain.Cue {
	cues := g.world.Cues
	g.world.Cues = nil
	return cues
}

// Over - true, пока забег окончен и ждёт рестарта.
func (g *Game) Over() bool { return g.over }

// Progress возвращает копию состояния прогрессии.
func (g *Game) Progress() Progression { return g.prog }

// GridVersion растёт при каждой генерации сетки.
func (g *Game) GridVersion() int { return g.gridVersion }

func (g *Game) RunID() uuid.UUID { return g.runID }

func (g *Game) Seed() int64 { return g.cfg.Seed }

func (g *Game) Config() Config { return g.cfg }

// Replay - запись ввода с момента создания игры.
// Replay - запись забега или nil, если игра создана без WithRecording.
func (g *Game) Replay() *domain.ReplaySession { return g.replay }

package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"dungeon-arena/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все этапы забега.
	Seed       int64  `yaml:"seed"`
	PlayerName string `yaml:"player_name"`

	Grid       GridConfig       `yaml:"grid"`
	TileSize   int              `yaml:"tile_size"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Population PopulationConfig `yaml:"population"`
	Timing     TimingConfig     `yaml:"timing"`
}

type GridConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	WalkSteps int `yaml:"walk_steps"`
}

// ViewportConfig - окно просмотра в пикселях.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type PopulationConfig struct {
	Spawners  int `yaml:"spawners"`
	LootBoxes int `yaml:"loot_boxes"`
	EnemyCap  int `yaml:"enemy_cap"`
}

// TimingConfig - таймеры прогрессии в тиках.
type TimingConfig struct {
	BossSpawnDelay       int `yaml:"boss_spawn_delay"`
	StageTransitionDelay int `yaml:"stage_transition_delay"`
	StageInvincibility   int `yaml:"stage_invincibility"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:       time.Now().UnixNano(),
		PlayerName: "Player",
		Grid: GridConfig{
			Width:     domain.DefaultGridSize,
			Height:    domain.DefaultGridSize,
			WalkSteps: domain.DefaultWalkSize,
		},
		TileSize: domain.TileSize,
		Viewport: ViewportConfig{
			Width:  domain.ViewportCols * domain.TileSize,
			Height: domain.ViewportRows * domain.TileSize,
		},
		Population: PopulationConfig{
			Spawners:  domain.SpawnersPerStage,
			LootBoxes: domain.LootPerStage,
			EnemyCap:  domain.EnemyCap,
		},
		Timing: TimingConfig{
			BossSpawnDelay:       domain.BossSpawnDelay,
			StageTransitionDelay: domain.StageTransitionDelay,
			StageInvincibility:   domain.StageInvincibility,
		},
	}
}

// LoadConfig читает YAML поверх значений по умолчанию.
// Неизвестные ключи - ошибка: опечатка в конфиге не должна молча игнорироваться.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate реализует api.Validator.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("grid.width", c.Grid.Width)
	positive("grid.height", c.Grid.Height)
	nonNegative("grid.walk_steps", c.Grid.WalkSteps)
	positive("tile_size", c.TileSize)
	positive("viewport.width", c.Viewport.Width)
	positive("viewport.height", c.Viewport.Height)
	nonNegative("population.spawners", c.Population.Spawners)
	nonNegative("population.loot_boxes", c.Population.LootBoxes)
	positive("population.enemy_cap", c.Population.EnemyCap)
	positive("timing.boss_spawn_delay", c.Timing.BossSpawnDelay)
	positive("timing.stage_transition_delay", c.Timing.StageTransitionDelay)
	nonNegative("timing.stage_invincibility", c.Timing.StageInvincibility)

	return errors.Join(errs...)
}

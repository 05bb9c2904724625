package engine

import (
	"os"
	"path/filepath"
	"testing"

	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, 100, cfg.Grid.Width)
	assert.Equal(t, 1500, cfg.Grid.WalkSteps)
	assert.Equal(t, 48, cfg.TileSize)
	assert.Equal(t, 768, cfg.Viewport.Width)
	assert.Equal(t, 576, cfg.Viewport.Height)
	assert.Equal(t, domain.EnemyCap, cfg.Population.EnemyCap)
	assert.Equal(t, 300, cfg.Timing.BossSpawnDelay)
	assert.NoError(t, cfg.Validate())

	var _ api.Validator = cfg
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
seed: 1234
player_name: alice
grid:
  width: 40
  walk_steps: 200
population:
  enemy_cap: 8
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, "alice", cfg.PlayerName)
	assert.Equal(t, 40, cfg.Grid.Width)
	assert.Equal(t, 100, cfg.Grid.Height, "untouched keys keep defaults")
	assert.Equal(t, 200, cfg.Grid.WalkSteps)
	assert.Equal(t, 8, cfg.Population.EnemyCap)
	assert.Equal(t, domain.SpawnersPerStage, cfg.Population.Spawners)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "sead: 1\n"},
		{"bad type", "tile_size: big\n"},
		{"invalid value", "grid:\n  width: 0\n"},
		{"negative steps", "grid:\n  walk_steps: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.TileSize, cfg.TileSize)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

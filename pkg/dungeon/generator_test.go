package dungeon

import (
	"errors"
	"math/rand"
	"os"
	"testing"

	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestGenerate_Connectivity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid := Generate(domain.DefaultGridSize, domain.DefaultGridSize, domain.DefaultWalkSize, rng)

		start := Start(grid.Width, grid.Height)
		if grid.IsWall(start.X, start.Y) {
			t.Fatalf("seed %d: start cell is a wall", seed)
		}
		if !Connected(grid, start) {
			t.Errorf("seed %d: flood fill does not reach every floor cell", seed)
		}
	}
}

func TestGenerate_BorderStaysWall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := Generate(30, 20, 3000, rng)

	for c := 0; c < grid.Width; c++ {
		assert.True(t, grid.IsWall(c, 0), "top border col %d", c)
		assert.True(t, grid.IsWall(c, grid.Height-1), "bottom border col %d", c)
	}
	for r := 0; r < grid.Height; r++ {
		assert.True(t, grid.IsWall(0, r), "left border row %d", r)
		assert.True(t, grid.IsWall(grid.Width-1, r), "right border row %d", r)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(50, 50, 500, rand.New(rand.NewSource(99)))
	b := Generate(50, 50, 500, rand.New(rand.NewSource(99)))
	assert.Equal(t, a.Rows(), b.Rows())
}

func TestGenerate_ZeroSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	grid := Generate(domain.DefaultGridSize, domain.DefaultGridSize, 0, rng)

	require.Equal(t, 1, grid.Count(domain.Floor))
	start := Start(grid.Width, grid.Height)
	assert.False(t, grid.IsWall(start.X, start.Y))

	// Размещение не должно зацикливаться и обязано найти единственную клетку.
	pos, err := RandomFloorCell(grid, rng)
	require.NoError(t, err)
	assert.Equal(t, start, pos)

	layout, err := Populate(grid, rng, domain.SpawnersPerStage, domain.LootPerStage)
	require.NoError(t, err)
	assert.Equal(t, start, layout.Player)
	assert.Len(t, layout.Spawners, domain.SpawnersPerStage)
	assert.Len(t, layout.Loot, domain.LootPerStage)
}

func TestRandomFloorCell_NoFloor(t *testing.T) {
	grid := domain.NewGrid(10, 10)
	_, err := RandomFloorCell(grid, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, ErrNoFloor))

	_, err = Populate(grid, rand.New(rand.NewSource(1)), 1, 1)
	assert.ErrorIs(t, err, ErrNoFloor)
}

func TestFloorCellNear(t *testing.T) {
	grid := domain.NewGrid(20, 20)
	for r := 1; r < 19; r++ {
		for c := 1; c < 19; c++ {
			grid.Set(c, r, domain.Floor)
		}
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		p, err := FloorCellNear(grid, rng, 10, 10, domain.BossPlacementWindow)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p.X, 5)
		assert.LessOrEqual(t, p.X, 14)
		assert.GreaterOrEqual(t, p.Y, 5)
		assert.LessOrEqual(t, p.Y, 14)
		assert.False(t, grid.IsWall(p.X, p.Y))
	}
}

func TestFloorCellNear_OnlyCenterFree(t *testing.T) {
	grid := domain.NewGrid(20, 20)
	grid.Set(10, 10, domain.Floor)

	p, err := FloorCellNear(grid, rand.New(rand.NewSource(5)), 10, 10, domain.BossPlacementWindow)
	require.NoError(t, err)
	assert.Equal(t, domain.Position{X: 10, Y: 10}, p)
}

func TestFloodFill_SplitIslands(t *testing.T) {
	grid := domain.NewGrid(7, 3)
	grid.Set(1, 1, domain.Floor)
	grid.Set(2, 1, domain.Floor)
	grid.Set(5, 1, domain.Floor)

	reach := FloodFill(grid, domain.Position{X: 1, Y: 1})
	assert.Len(t, reach, 2)
	assert.False(t, Connected(grid, domain.Position{X: 1, Y: 1}))
}

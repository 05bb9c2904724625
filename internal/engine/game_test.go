package engine

import (
	"math/rand"
	"testing"

	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/input"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g, err := New(testConfig(), opts...)
	require.NoError(t, err)
	return g
}

func TestNew_BuildsFirstStage(t *testing.T) {
	g := newTestGame(t)
	w := g.world

	assert.Equal(t, 1, g.prog.Stage)
	assert.Equal(t, domain.FirstBossThreshold, g.prog.NextBossScore)
	assert.Equal(t, 1, g.GridVersion())
	assert.Len(t, w.Spawners, domain.SpawnersPerStage)
	assert.Len(t, w.Loot, domain.LootPerStage)
	assert.Empty(t, w.Enemies)

	pc := w.Player.Cell(w.Tile)
	assert.False(t, w.Grid.IsWall(pc.X, pc.Y))
	assert.Equal(t, enums.KindPlayer, w.Player.ID.Kind())
	assert.False(t, g.Over())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.TileSize = 0
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_ZeroStepsPlacesOnStartCell(t *testing.T) {
	cfg := testConfig()
	cfg.Grid.WalkSteps = 0
	g, err := New(cfg)
	require.NoError(t, err)

	w := g.world
	assert.Equal(t, 1, w.Grid.Count(domain.Floor))
	start := domain.Position{X: cfg.Grid.Width / 2, Y: cfg.Grid.Height / 2}
	assert.Equal(t, start, w.Player.Cell(w.Tile))
	for _, s := range w.Spawners {
		assert.Equal(t, start, s.Cell(w.Tile))
	}
}

func TestTick_AdvancesWorld(t *testing.T) {
	g := newTestGame(t, WithRecording())
	x0 := g.world.Player.X

	for i := 0; i < 5; i++ {
		require.NoError(t, g.Tick(0))
	}
	assert.Equal(t, uint64(5), g.world.Tick)
	assert.Equal(t, x0, g.world.Player.X)
	assert.Equal(t, 5, g.Replay().Ticks())
}

func TestGame_DeathRecordsOnce(t *testing.T) {
	rec := &fakeRecorder{}
	g := newTestGame(t, WithRecorder(rec))
	g.prog.Score = 120
	g.prog.TotalScore = 3000

	g.world.Player.TakeDamage(domain.PlayerMaxHP)
	require.NoError(t, g.Tick(0))
	require.NoError(t, g.Tick(0))
	require.NoError(t, g.Tick(input.Attack))

	assert.True(t, g.Over())
	assert.Equal(t, []string{"tester"}, rec.names)
	assert.Equal(t, []int{3120}, rec.scores)
	assert.Contains(t, g.DrainCues(), domain.Cue{Kind: domain.CueGameOver})

	require.NoError(t, g.Tick(input.Confirm))
	assert.False(t, g.Over())
	assert.Zero(t, g.prog.Final())
	assert.True(t, g.world.Player.Alive)
	assert.Equal(t, domain.PlayerMaxHP, g.world.Player.HP)
	assert.Equal(t, 2, g.GridVersion())

	g.world.Player.TakeDamage(domain.PlayerMaxHP)
	require.NoError(t, g.Tick(0))
	assert.Len(t, rec.scores, 2, "a new run records again")
}

func TestGame_DrainCues(t *testing.T) {
	g := newTestGame(t)
	g.world.Emit(domain.Shake(1, 2))

	assert.Len(t, g.DrainCues(), 1)
	assert.Empty(t, g.DrainCues())
}

// scriptedInput - детерминированный поток кнопок для сравнения прогонов.
func scriptedInput(seed int64, ticks int) []input.Buttons {
	r := rand.New(rand.NewSource(seed))
	out := make([]input.Buttons, ticks)
	var cur input.Buttons
	for i := range out {
		if i%10 == 0 {
			cur = input.Buttons(r.Intn(64))
		}
		out[i] = cur
	}
	return out
}

func TestGame_Deterministic(t *testing.T) {
	id := uuid.New()
	a := newTestGame(t, WithRunID(id))
	b := newTestGame(t, WithRunID(id))

	for _, in := range scriptedInput(7, 900) {
		require.NoError(t, a.Tick(in))
		require.NoError(t, b.Tick(in))
	}

	assert.Equal(t, a.Snapshot(true), b.Snapshot(true))
	assert.Equal(t, a.Progress(), b.Progress())
}

func TestReplay_ReproducesRun(t *testing.T) {
	g := newTestGame(t, WithRecording())
	for _, in := range scriptedInput(11, 900) {
		require.NoError(t, g.Tick(in))
	}

	replayed, err := Replay(testConfig(), g.Replay())
	require.NoError(t, err)

	assert.Equal(t, g.RunID(), replayed.RunID())
	assert.Equal(t, g.Snapshot(true), replayed.Snapshot(true))
}

func TestGame_NoRecordingByDefault(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 100; i++ {
		require.NoError(t, g.Tick(input.Buttons(i%4)))
	}
	assert.Nil(t, g.Replay(), "без WithRecording кнопки не копятся")

	_, err := Replay(testConfig(), g.Replay())
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t)
	w := g.world

	s := g.Snapshot(false)
	assert.Nil(t, s.Grid)
	assert.Equal(t, g.RunID().String(), s.RunID)
	assert.Equal(t, w.Player.X, s.Player.X)
	assert.Equal(t, w.Player.X-(w.ViewWidth/2-w.Tile/2), s.Camera.X)
	assert.Len(t, s.Loot, domain.LootPerStage)
	assert.Nil(t, s.Boss())

	s = g.Snapshot(true)
	require.NotNil(t, s.Grid)
	assert.Len(t, s.Grid.Rows, w.Grid.Height)
	pc := w.Player.Cell(w.Tile)
	assert.False(t, s.Grid.IsWall(pc.X, pc.Y))
	assert.True(t, s.Grid.IsWall(0, 0))
	assert.True(t, s.Grid.IsWall(-1, 3))
}

func TestSnapshot_HidesRemovedEnemies(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	e := domain.NewEnemy(w.IDs.Next(enums.KindRangedEnemy), enums.KindRangedEnemy, w.Player.X, w.Player.Y, w.Tile, 0, domain.ShotSpread)
	w.Enemies = append(w.Enemies, e)

	s := g.Snapshot(false)
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, "RANGED", s.Enemies[0].Kind)
	assert.Equal(t, "SPREAD", s.Enemies[0].ShotMode)
	assert.Nil(t, s.Enemies[0].Boss)

	e.Removed = true
	assert.Empty(t, g.Snapshot(false).Enemies)
}

func TestSnapshot_Boss(t *testing.T) {
	g := newTestGame(t)
	w := g.world
	boss := domain.NewEnemy(w.IDs.Next(enums.KindBoss), enums.KindBoss, w.Player.X, w.Player.Y, w.Tile, 0, domain.ShotSingle)
	w.Enemies = append(w.Enemies, boss)

	// без флага босса клиент полосу здоровья не рисует
	assert.Nil(t, g.Snapshot(false).Boss())

	g.prog.BossActive = true
	got := g.Snapshot(false).Boss()
	require.NotNil(t, got)
	assert.Equal(t, "IDLE", got.Boss.State)
	assert.Empty(t, got.ShotMode)
}

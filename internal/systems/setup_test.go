package systems

import (
	"math/rand"
	"os"
	"testing"

	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	logger.Quiet()

	os.Exit(m.Run())
}

// fakeProgress запоминает начисления очков и убийства босса.
type fakeProgress struct {
	score     int
	calls     []int
	bossKills int
}

func (f *fakeProgress) AddScore(v int) {
	f.score += v
	f.calls = append(f.calls, v)
}

func (f *fakeProgress) OnBossKilled() { f.bossKills++ }

// newTestWorld - открытая арена с игроком в клетке (5,5).
func newTestWorld(cols, rows int) *domain.World {
	w := &domain.World{
		Grid:       newOpenGrid(cols, rows),
		Tile:       tile,
		ViewWidth:  domain.ViewportCols * tile,
		ViewHeight: domain.ViewportRows * tile,
		Rng:        rand.New(rand.NewSource(1)),
		Stage:      1,
	}
	w.IDs.Reset(1)
	w.Player = domain.NewPlayer(w.IDs.Next(enums.KindPlayer), tile)
	w.Player.X, w.Player.Y = 5*tile, 5*tile
	return w
}

func addEnemy(w *domain.World, kind enums.EntityKind, x, y int) *domain.Enemy {
	e := domain.NewEnemy(w.IDs.Next(kind), kind, x, y, tile, 0, domain.ShotSingle)
	w.Enemies = append(w.Enemies, e)
	return e
}

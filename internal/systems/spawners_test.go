package systems

import (
	"testing"

	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSpawners(t *testing.T) {
	w := newTestWorld(12, 12)
	s := domain.NewSpawner(w.IDs.Next(enums.KindSpawner), 2*tile, 2*tile, tile)
	w.Spawners = append(w.Spawners, s)

	for i := 0; i < domain.SpawnInterval-1; i++ {
		UpdateSpawners(w, 0, domain.EnemyCap)
	}
	assert.Empty(t, w.Enemies)

	UpdateSpawners(w, 3, domain.EnemyCap)
	require.Len(t, w.Enemies, 1)

	e := w.Enemies[0]
	assert.True(t, e.Kind == enums.KindMeleeEnemy || e.Kind == enums.KindRangedEnemy)
	assert.Equal(t, s.X, e.X)
	hp, _ := domain.ScaledStats(false, 3)
	assert.Equal(t, hp, e.MaxHP)
	assert.Zero(t, s.Timer)
}

func TestUpdateSpawners_Cap(t *testing.T) {
	w := newTestWorld(12, 12)
	s := domain.NewSpawner(w.IDs.Next(enums.KindSpawner), 2*tile, 2*tile, tile)
	s.Timer = s.Interval - 1
	w.Spawners = append(w.Spawners, s)
	addEnemy(w, enums.KindMeleeEnemy, 8*tile, 8*tile)

	UpdateSpawners(w, 0, 1)
	assert.Len(t, w.Enemies, 1, "refused at the cap")
	assert.Zero(t, s.Timer)
}

func TestUpdateSpawners_Inactive(t *testing.T) {
	w := newTestWorld(12, 12)
	s := domain.NewSpawner(w.IDs.Next(enums.KindSpawner), 2*tile, 2*tile, tile)
	s.Active = false
	w.Spawners = append(w.Spawners, s)

	for i := 0; i < 2*domain.SpawnInterval; i++ {
		UpdateSpawners(w, 0, domain.EnemyCap)
	}
	assert.Empty(t, w.Enemies)
	assert.Zero(t, s.Timer)
}

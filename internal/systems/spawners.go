package systems

import (
	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UpdateSpawners продвигает таймеры активных спавнеров. Готовый спавнер
// выпускает врага случайного типа, если живых врагов меньше enemyCap.
func UpdateSpawners(w *domain.World, difficulty, enemyCap int) {
	for _, s := range w.Spawners {
		if !s.Ready() {
			continue
		}
		if w.LiveEnemies() >= enemyCap {
			continue
		}

		kind := enums.KindMeleeEnemy
		if w.Rng.Intn(2) == 0 {
			kind = enums.KindRangedEnemy
		}
		mode := domain.ShotMode(w.Rng.Intn(2))

		e := domain.NewEnemy(w.IDs.Next(kind), kind, s.X, s.Y, w.Tile, difficulty, mode)
		w.Enemies = append(w.Enemies, e)

		logger.Log.WithFields(logrus.Fields{
			"component":  "spawner_system",
			"kind":       kind,
			"difficulty": difficulty,
			"tick":       w.Tick,
		}).Debug("Enemy spawned")
	}
}

package dungeon

import (
	"fmt"
	"math/rand"

	"dungeon-arena/internal/domain"
)

// Layout - клетки, на которые встаёт население нового этапа.
type Layout struct {
	Player   domain.Position
	Spawners []domain.Position
	Loot     []domain.Position
}

// Populate размещает игрока, спавнеры и ящики на случайных клетках пола.
// Клетки могут совпадать: так же ведёт себя и одиночное размещение.
func Populate(grid *domain.Grid, rng *rand.Rand, spawners, loot int) (Layout, error) {
	var l Layout
	var err error

	if l.Player, err = RandomFloorCell(grid, rng); err != nil {
		return l, fmt.Errorf("place player: %w", err)
	}

	l.Spawners = make([]domain.Position, 0, spawners)
	for i := 0; i < spawners; i++ {
		p, err := RandomFloorCell(grid, rng)
		if err != nil {
			return l, fmt.Errorf("place spawner %d: %w", i, err)
		}
		l.Spawners = append(l.Spawners, p)
	}

	l.Loot = make([]domain.Position, 0, loot)
	for i := 0; i < loot; i++ {
		p, err := RandomFloorCell(grid, rng)
		if err != nil {
			return l, fmt.Errorf("place loot %d: %w", i, err)
		}
		l.Loot = append(l.Loot, p)
	}
	return l, nil
}

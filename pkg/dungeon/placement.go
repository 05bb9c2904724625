package dungeon

import (
	"errors"
	"math/rand"

	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrNoFloor - на сетке нет ни одной клетки пола. Фатальная ошибка конфигурации.
var ErrNoFloor = errors.New("dungeon: grid has no floor cells")

// MaxPlacementAttempts - сколько случайных проб делается до перебора всех клеток.
const MaxPlacementAttempts = 1000

// RandomFloorCell выбирает случайную клетку пола.
// Сначала ограниченное число случайных проб, затем равновероятный выбор
// из перечисленных клеток пола, так что вырожденная сетка не зацикливает поиск.
func RandomFloorCell(grid *domain.Grid, rng *rand.Rand) (domain.Position, error) {
	for i := 0; i < MaxPlacementAttempts; i++ {
		col := rng.Intn(grid.Width)
		row := rng.Intn(grid.Height)
		if !grid.IsWall(col, row) {
			return domain.Position{X: col, Y: row}, nil
		}
	}

	cells := grid.FloorCells()
	if len(cells) == 0 {
		return domain.Position{}, ErrNoFloor
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_placement",
		"floor":     len(cells),
	}).Debug("Random probes exhausted, picking from floor list")

	return cells[rng.Intn(len(cells))], nil
}

// FloorCellNear выбирает клетку пола в окне смещений [-window/2, window/2-1]
// вокруг (col,row), исключая нулевую строку и столбец.
func FloorCellNear(grid *domain.Grid, rng *rand.Rand, col, row, window int) (domain.Position, error) {
	half := window / 2
	ok := func(c, r int) bool {
		return c > 0 && r > 0 && !grid.IsWall(c, r)
	}

	for i := 0; i < MaxPlacementAttempts; i++ {
		c := col + rng.Intn(window) - half
		r := row + rng.Intn(window) - half
		if ok(c, r) {
			return domain.Position{X: c, Y: r}, nil
		}
	}

	var candidates []domain.Position
	for dr := -half; dr < window-half; dr++ {
		for dc := -half; dc < window-half; dc++ {
			if ok(col+dc, row+dr) {
				candidates = append(candidates, domain.Position{X: col + dc, Y: row + dr})
			}
		}
	}
	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))], nil
	}
	return RandomFloorCell(grid, rng)
}

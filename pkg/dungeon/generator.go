package dungeon

import (
	"math/rand"

	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

const (
	// BrushRadius - радиус вырезаемой области: 1 даёт блок 3x3.
	BrushRadius = 1
	// EdgeMargin - ходок не подходит к краю ближе, чем на 2 клетки.
	EdgeMargin = 2
	// MinDimension - минимальный размер сетки, при котором ходок может двигаться.
	MinDimension = 2*EdgeMargin + 1
)

// Start возвращает клетку, с которой ходок начинает вырезать пол (центр сетки).
func Start(width, height int) domain.Position {
	return domain.Position{X: width / 2, Y: height / 2}
}

// Generate строит подземелье случайным блужданием.
//
// Все клетки становятся стенами, стартовая клетка в центре вырезается,
// затем steps раз ходок делает шаг в случайном направлении, прижимается
// к границе [2, dim-3] и вырезает вокруг себя блок 3x3.
// Связность следует из того, что соседние позиции ходка отличаются
// не больше чем на клетку, и их блоки перекрываются.
func Generate(width, height, steps int, rng *rand.Rand) *domain.Grid {
	grid := domain.NewGrid(width, height)
	start := Start(width, height)
	grid.Set(start.X, start.Y, domain.Floor)

	if width < MinDimension || height < MinDimension {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon_generator",
			"width":     width,
			"height":    height,
		}).Warn("Grid too small for random walk, only start cell carved")
		return grid
	}

	x, y := start.X, start.Y
	for i := 0; i < steps; i++ {
		switch rng.Intn(4) {
		case 0:
			y--
		case 1:
			y++
		case 2:
			x--
		case 3:
			x++
		}

		x = clamp(x, EdgeMargin, width-1-EdgeMargin)
		y = clamp(y, EdgeMargin, height-1-EdgeMargin)

		carve(grid, x, y)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"width":     width,
		"height":    height,
		"steps":     steps,
		"floor":     grid.Count(domain.Floor),
	}).Debug("Dungeon generated")

	return grid
}

func carve(grid *domain.Grid, x, y int) {
	for dy := -BrushRadius; dy <= BrushRadius; dy++ {
		for dx := -BrushRadius; dx <= BrushRadius; dx++ {
			grid.Set(x+dx, y+dy, domain.Floor)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FloodFill возвращает множество клеток пола, достижимых из start
// по четырём направлениям. Индекс клетки: row*width + col.
func FloodFill(grid *domain.Grid, start domain.Position) map[int]bool {
	visited := make(map[int]bool)
	if grid.IsWall(start.X, start.Y) {
		return visited
	}

	queue := []domain.Position{start}
	visited[start.Y*grid.Width+start.X] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := p.X+d[0], p.Y+d[1]
			if grid.IsWall(nx, ny) {
				continue
			}
			idx := ny*grid.Width + nx
			if visited[idx] {
				continue
			}
			visited[idx] = true
			queue = append(queue, domain.Position{X: nx, Y: ny})
		}
	}
	return visited
}

// Connected - true, если из start достижима каждая клетка пола.
func Connected(grid *domain.Grid, start domain.Position) bool {
	return len(FloodFill(grid, start)) == grid.Count(domain.Floor)
}

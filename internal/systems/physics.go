package systems

import (
	"math"

	"dungeon-arena/internal/domain"
)

// WouldCollide проверяет четыре угла квадратного тела размера size,
// поставленного в (nextX, nextY). Выход за сетку тоже считается столкновением.
func WouldCollide(g *domain.Grid, tile, nextX, nextY, size int) bool {
	// Деление в Go округляет к нулю, поэтому отрицательные координаты
	// отсекаем явно: иначе -1/48 попадёт в столбец 0.
	if nextX < 0 || nextY < 0 {
		return true
	}

	leftCol := nextX / tile
	rightCol := (nextX + size - 1) / tile
	topRow := nextY / tile
	bottomRow := (nextY + size - 1) / tile

	if leftCol < 0 || rightCol >= g.Width || topRow < 0 || bottomRow >= g.Height {
		return true
	}

	return g.IsWall(leftCol, topRow) ||
		g.IsWall(rightCol, topRow) ||
		g.IsWall(leftCol, bottomRow) ||
		g.IsWall(rightCol, bottomRow)
}

// TryMove переносит тело в (nx, ny), только если там нет столкновения.
// Отклонённый ход не меняет позицию (никакого скольжения вдоль стены).
func TryMove(g *domain.Grid, tile int, b *domain.Body, nx, ny int) bool {
	if WouldCollide(g, tile, nx, ny, b.Size) {
		return false
	}
	b.X, b.Y = nx, ny
	return true
}

// StepPushback делает один тик отбрасывания. Возвращает true, если отбрасывание
// было активно (значит, обычная логика владельца в этом тике пропускается).
func StepPushback(g *domain.Grid, tile int, b *domain.Body, p *domain.Pushback) bool {
	if !p.Active {
		return false
	}

	nx := b.X + int(math.Cos(p.Direction)*float64(p.Speed))
	ny := b.Y + int(math.Sin(p.Direction)*float64(p.Speed))
	TryMove(g, tile, b, nx, ny)

	p.Remaining--
	if p.Remaining <= 0 {
		p.Active = false
	}
	return true
}

// Angle - угол от точки (fromX, fromY) к (toX, toY).
func Angle(fromX, fromY, toX, toY int) float64 {
	return math.Atan2(float64(toY-fromY), float64(toX-fromX))
}

// Distance - евклидово расстояние, усечённое до целого.
func Distance(ax, ay, bx, by int) int {
	dx := float64(bx - ax)
	dy := float64(by - ay)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// HasLineOfSight проверяет прямую видимость между двумя клетками.
// Алгоритм Брезенхэма, только целочисленная арифметика.
// Начальная и конечная клетки не проверяются.
func HasLineOfSight(g *domain.Grid, p1, p2 domain.Position) bool {
	if p1 == p2 {
		return true
	}

	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}

	sx, sy := p1.DirectionTo(p2)

	err := dx - dy

	for {
		isStart := x0 == p1.X && y0 == p1.Y
		isEnd := x0 == p2.X && y0 == p2.Y

		if !isStart && !isEnd && g.IsWall(x0, y0) {
			return false
		}

		if x0 == x1 && y0 == y1 {
			break
		}

		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}

	return true
}

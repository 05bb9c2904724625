package domain

import (
	"math/rand"

	"dungeon-arena/internal/core/types"
)

// Cell - классификация клетки сетки.
type Cell uint8

const (
	Wall Cell = iota
	Floor
)

// Position - координата клетки (col,row).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DirectionTo возвращает знаки смещения по осям к другой клетке.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Grid - плотная сетка Floor/Wall, адресуемая (col,row).
// После генерации не меняется до следующего этапа.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// NewGrid создает сетку, целиком заполненную стенами.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
}

// InBounds проверяет, что клетка лежит внутри сетки.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// At возвращает клетку. За пределами сетки - Wall.
func (g *Grid) At(col, row int) Cell {
	if !g.InBounds(col, row) {
		return Wall
	}
	return g.cells[row*g.Width+col]
}

// IsWall - true для стены и для клеток вне сетки.
func (g *Grid) IsWall(col, row int) bool {
	return g.At(col, row) == Wall
}

// Set меняет клетку. Вызывается только генератором.
func (g *Grid) Set(col, row int, c Cell) {
	if g.InBounds(col, row) {
		g.cells[row*g.Width+col] = c
	}
}

// Count считает клетки заданного типа.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// FloorCells перечисляет все клетки пола в порядке строк.
func (g *Grid) FloorCells() []Position {
	out := make([]Position, 0, g.Count(Floor))
	for i, v := range g.cells {
		if v == Floor {
			out = append(out, Position{X: i % g.Width, Y: i / g.Width})
		}
	}
	return out
}

// Rows возвращает копию сетки построчно (для снапшотов и бота).
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.Height)
	for r := 0; r < g.Height; r++ {
		rows[r] = make([]bool, g.Width)
		for c := 0; c < g.Width; c++ {
			rows[r][c] = g.cells[r*g.Width+c] == Wall
		}
	}
	return rows
}

// World - корневой контекст симуляции: сетка и все коллекции сущностей.
// Принадлежит одной горутине (тик-цикл), блокировок нет.
type World struct {
	Grid *Grid
	Tile int

	// Размер окна просмотра в пикселях (нужен для респауна ящиков).
	ViewWidth  int
	ViewHeight int

	Player        *Player
	Enemies       []*Enemy
	Projectiles   []*Projectile
	Loot          []*LootBox
	Spawners      []*Spawner
	DamageNumbers []*DamageNumber
	Texts         []*FloatingText

	// Cues копятся за тик и забираются хостом.
	Cues []Cue

	Rng *rand.Rand
	IDs types.IDAllocator

	Stage int
	Tick  uint64
}

// WidthPx - ширина мира в пикселях.
func (w *World) WidthPx() int { return w.Grid.Width * w.Tile }

// HeightPx - высота мира в пикселях.
func (w *World) HeightPx() int { return w.Grid.Height * w.Tile }

// Emit ставит подсказку (тряска/звук) в очередь текущего тика.
func (w *World) Emit(c Cue) {
	w.Cues = append(w.Cues, c)
}

// AddText добавляет всплывающую надпись.
func (w *World) AddText(x, y int, text string, color uint32) {
	w.Texts = append(w.Texts, NewFloatingText(x, y, text, color))
}

// LiveEnemies считает живых, не помеченных на удаление врагов.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Present() {
			n++
		}
	}
	return n
}

// Boss возвращает живого босса или nil.
func (w *World) Boss() *Enemy {
	for _, e := range w.Enemies {
		if e.IsBoss() && e.Present() {
			return e
		}
	}
	return nil
}

// Progress - то, что системы боя сообщают контроллеру прогрессии.
type Progress interface {
	AddScore(v int)
	OnBossKilled()
}

package domain

import (
	"math"

	"dungeon-arena/internal/core/types"
	"dungeon-arena/internal/core/types/enums"
)

// Projectile - снаряд. Скорость вычисляется один раз при запуске.
type Projectile struct {
	ID     types.EntityID `json:"id"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	VX     float64        `json:"vx"`
	VY     float64        `json:"vy"`
	Size   int            `json:"size"`
	Damage int            `json:"damage"`
	Active bool           `json:"active"`
}

// NewProjectile запускает снаряд из точки (x,y) под углом angle.
func NewProjectile(id types.EntityID, x, y int, angle float64, damage int) *Projectile {
	return &Projectile{
		ID:     id,
		X:      float64(x),
		Y:      float64(y),
		VX:     math.Cos(angle) * ProjectileSpeed,
		VY:     math.Sin(angle) * ProjectileSpeed,
		Size:   ProjectileSize,
		Damage: damage,
		Active: true,
	}
}

// Bounds - прямоугольник снаряда.
func (p *Projectile) Bounds() Rect {
	return Rect{X: int(p.X), Y: int(p.Y), W: p.Size, H: p.Size}
}

// LootBox - ящик с лутом.
type LootBox struct {
	ID types.EntityID `json:"id"`
	Body
	Kind   enums.LootKind `json:"kind"`
	Opened bool           `json:"opened"`
}

// NewLootBox создает закрытый ящик.
func NewLootBox(id types.EntityID, x, y, tile int, kind enums.LootKind) *LootBox {
	return &LootBox{
		ID:   id,
		Body: Body{X: x, Y: y, Size: tile},
		Kind: kind,
	}
}

// Spawner - точка появления врагов.
type Spawner struct {
	ID types.EntityID `json:"id"`
	Body
	Active   bool `json:"active"`
	Timer    int  `json:"timer"`
	Interval int  `json:"interval"`
}

// NewSpawner создает активный спавнер.
func NewSpawner(id types.EntityID, x, y, tile int) *Spawner {
	return &Spawner{
		ID:       id,
		Body:     Body{X: x, Y: y, Size: tile},
		Active:   true,
		Interval: SpawnInterval,
	}
}

// Ready продвигает таймер. true - пора спавнить (таймер сбрасывается).
func (s *Spawner) Ready() bool {
	if !s.Active {
		return false
	}
	s.Timer++
	if s.Timer >= s.Interval {
		s.Timer = 0
		return true
	}
	return false
}

package domain

import "dungeon-arena/internal/core/types"

// Facing - направление взгляда игрока. Рывок идёт по нему.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

var facingNames = [...]string{"down", "up", "left", "right"}

func (f Facing) String() string {
	if int(f) < len(facingNames) {
		return facingNames[f]
	}
	return "unknown"
}

// Delta возвращает единичный вектор направления.
func (f Facing) Delta() (int, int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	}
	return 0, 0
}

// AttackState - анимация удара. Пока Active, новый удар не начинается.
type AttackState struct {
	Active   bool `json:"active"`
	Counter  int  `json:"counter"`
	Duration int  `json:"duration"`
}

// DashState - рывок и его перезарядка.
type DashState struct {
	Active   bool `json:"active"`
	Counter  int  `json:"counter"`
	Cooldown int  `json:"cooldown"`
}

// Player - управляемый актёр.
type Player struct {
	ID types.EntityID `json:"id"`
	Body
	Mover
	Health
	Push Pushback `json:"push"`

	Damage int `json:"damage"`
	Armor  int `json:"armor"`

	BaseRange  int `json:"baseRange"`
	Range      int `json:"range"`
	RangeTimer int `json:"rangeTimer"`

	Attack     AttackState `json:"attack"`
	Dash       DashState   `json:"dash"`
	Invincible int         `json:"invincible"`
	Facing     Facing      `json:"facing"`
}

// NewPlayer создает игрока со стартовыми характеристиками.
func NewPlayer(id types.EntityID, tile int) *Player {
	p := &Player{ID: id}
	p.Reset(tile)
	return p
}

// Reset возвращает характеристики к стартовым (новый забег).
// Позиция не меняется: её выставляет размещение.
func (p *Player) Reset(tile int) {
	p.Size = tile
	p.Speed = PlayerSpeed
	p.Health = NewHealth(PlayerMaxHP)
	p.Push = Pushback{Speed: PushbackSpeed}
	p.Damage = PlayerDamage
	p.Armor = PlayerArmor
	p.BaseRange = PlayerBaseRangeTiles * tile
	p.Range = p.BaseRange
	p.RangeTimer = 0
	p.Attack = AttackState{Duration: PlayerAttackDuration}
	p.Dash = DashState{}
	p.Invincible = 0
	p.Facing = FacingDown
}

// IsInvincible - true, пока идёт окно неуязвимости.
func (p *Player) IsInvincible() bool {
	return p.Invincible > 0
}

// SetInvincible продлевает неуязвимость до n тиков (не укорачивает).
func (p *Player) SetInvincible(n int) {
	if n > p.Invincible {
		p.Invincible = n
	}
}

// StartPushback отбрасывает игрока и прерывает рывок.
func (p *Player) StartPushback(direction float64, ticks int) {
	p.Push.Start(direction, ticks)
	p.Dash.Active = false
	p.Dash.Counter = 0
}

// AttackArea - квадрат удара, центрированный на игроке.
func (p *Player) AttackArea() Rect {
	return Rect{
		X: p.X - p.Range/2,
		Y: p.Y - p.Range/2,
		W: p.Range + p.Size,
		H: p.Range + p.Size,
	}
}

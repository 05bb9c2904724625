package domain

import (
	"dungeon-arena/internal/core/types"
	"dungeon-arena/internal/core/types/enums"
)

// ShotMode - режим стрельбы дальнего врага.
type ShotMode uint8

const (
	ShotSingle ShotMode = iota
	ShotSpread
)

// Toggle переключает режим.
func (m ShotMode) Toggle() ShotMode {
	if m == ShotSingle {
		return ShotSpread
	}
	return ShotSingle
}

// BossBrain - явный конечный автомат босса.
type BossBrain struct {
	State       enums.BossState `json:"state"`
	ActionTimer int             `json:"actionTimer"`
	PhaseTimer  int             `json:"phaseTimer"`

	// JumpAttack
	Airborne bool `json:"airborne"`
	TargetX  int  `json:"targetX"`
	TargetY  int  `json:"targetY"`

	// Dash
	DashVX int `json:"dashVx"`
	DashVY int `json:"dashVy"`
}

// Enter переводит автомат в состояние и сбрасывает таймеры.
func (b *BossBrain) Enter(s enums.BossState) {
	b.State = s
	b.ActionTimer = 0
	b.PhaseTimer = 0
}

// Enemy - враг. Kind задаёт вариант поведения: Melee, Ranged или Boss.
type Enemy struct {
	ID   types.EntityID   `json:"id"`
	Kind enums.EntityKind `json:"kind"`
	Body
	Mover
	Health

	Damage   int `json:"damage"`
	Cooldown int `json:"cooldown"`

	Attacking    bool `json:"attacking"`
	AttackVisual int  `json:"-"`

	Push Pushback `json:"push"`

	ShotMode  ShotMode `json:"shotMode"`
	ShotCount int      `json:"-"`

	Brain *BossBrain `json:"brain,omitempty"`

	// Removed - враг убран без награды (зачистка перед боссом).
	// Физически удаляется из коллекции в конце тика.
	Removed bool `json:"-"`
}

// NewEnemy создает врага с характеристиками, масштабированными по сложности.
func NewEnemy(id types.EntityID, kind enums.EntityKind, x, y, tile, difficulty int, initialMode ShotMode) *Enemy {
	boss := kind == enums.KindBoss
	hp, dmg := ScaledStats(boss, difficulty)

	e := &Enemy{
		ID:     id,
		Kind:   kind,
		Body:   Body{X: x, Y: y, Size: tile},
		Mover:  Mover{Speed: EnemySpeed},
		Health: NewHealth(hp),
		Damage: dmg,
		Push:   Pushback{Speed: PushbackSpeed},
	}

	switch kind {
	case enums.KindBoss:
		e.Speed = BossSpeed
		e.Brain = &BossBrain{State: enums.BossIdle}
	case enums.KindRangedEnemy:
		e.ShotMode = initialMode
	}
	return e
}

// IsBoss - вариант босса.
func (e *Enemy) IsBoss() bool { return e.Kind == enums.KindBoss }

// Present - жив и не помечен на удаление.
func (e *Enemy) Present() bool { return e.Alive && !e.Removed }

// StartPushback отбрасывает врага. Босс иммунен: его телеграфы не прерываются.
func (e *Enemy) StartPushback(direction float64, ticks int) {
	if e.IsBoss() {
		return
	}
	e.Push.Start(direction, ticks)
}

// MarkAttacking включает визуальный флаг атаки.
func (e *Enemy) MarkAttacking() {
	e.Attacking = true
	e.AttackVisual = 0
}

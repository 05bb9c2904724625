package enums

// BossState - состояние конечного автомата босса.
// В каждый момент активно ровно одно действие.
type BossState uint8

const (
	BossIdle BossState = iota
	BossJumpAttack
	BossRapidFire
	BossShot360
	BossDash
)

// BossActionCount - количество атакующих действий (всё, кроме Idle).
const BossActionCount = 4

var bossStateNames = [...]string{
	BossIdle:       "IDLE",
	BossJumpAttack: "JUMP_ATTACK",
	BossRapidFire:  "RAPID_FIRE",
	BossShot360:    "SHOT_360",
	BossDash:       "DASH",
}

func (s BossState) String() string {
	if int(s) < len(bossStateNames) {
		return bossStateNames[s]
	}
	return "UNKNOWN"
}

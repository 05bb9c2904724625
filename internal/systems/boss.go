package systems

import (
	"math"

	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// UpdateBoss - один тик конечного автомата босса.
// Босс не подвержен отбрасыванию: телеграфы прерывает только смерть.
func UpdateBoss(w *domain.World, e *domain.Enemy) {
	b := e.Brain
	if b == nil {
		return
	}
	b.PhaseTimer++

	switch b.State {
	case enums.BossIdle:
		if b.PhaseTimer > domain.BossIdleTicks {
			next := enums.BossState(1 + w.Rng.Intn(enums.BossActionCount))
			b.Enter(next)
			logger.Log.WithFields(logrus.Fields{
				"component": "boss_system",
				"action":    next,
				"tick":      w.Tick,
			}).Debug("Boss picked action")
		}

	case enums.BossJumpAttack:
		b.ActionTimer++
		bossJump(w, e, b)

	case enums.BossRapidFire:
		b.ActionTimer++
		bossRapidFire(w, e, b)

	case enums.BossShot360:
		b.ActionTimer++
		bossShot360(w, e, b)

	case enums.BossDash:
		b.ActionTimer++
		bossDash(w, e, b)
	}
}

func bossJump(w *domain.World, e *domain.Enemy, b *domain.BossBrain) {
	p := w.Player

	switch t := b.ActionTimer; {
	case t == domain.JumpLiftTick:
		b.Airborne = true
		b.TargetX, b.TargetY = p.X, p.Y

	case t == domain.JumpLandTick:
		b.Airborne = false
		e.X, e.Y = b.TargetX, b.TargetY

		aoe := domain.Rect{
			X: e.X - w.Tile,
			Y: e.Y - w.Tile,
			W: domain.JumpAOETiles * w.Tile,
			H: domain.JumpAOETiles * w.Tile,
		}
		if p.Alive && aoe.Intersects(p.Bounds()) {
			HitPlayer(w, e.X, e.Y, e.Damage*domain.JumpDamageMul, domain.JumpPushbackTick)
		}
		w.Emit(domain.Shake(domain.LandShakeMagnitude, domain.LandShakeDuration))
		w.Emit(domain.Cue{Kind: domain.CueBossLand})

	case t > domain.JumpEndTick:
		b.Enter(enums.BossIdle)
	}
}

func bossRapidFire(w *domain.World, e *domain.Enemy, b *domain.BossBrain) {
	t := b.ActionTimer
	if t >= domain.RapidFireEnd {
		b.Enter(enums.BossIdle)
		return
	}
	if t < domain.RapidFireStart || t%domain.RapidFireEvery != 0 {
		return
	}

	p := w.Player
	jitter := (w.Rng.Float64() - 0.5) * 2 * domain.RapidFireJitter
	Fire(w, e, Angle(e.X, e.Y, p.X, p.Y)+jitter)
	w.Emit(domain.Cue{Kind: domain.CueShot})
}

func bossShot360(w *domain.World, e *domain.Enemy, b *domain.BossBrain) {
	switch t := b.ActionTimer; {
	case t == domain.Shot360FireTick:
		step := 2 * math.Pi / domain.Shot360Count
		for i := 0; i < domain.Shot360Count; i++ {
			Fire(w, e, float64(i)*step)
		}
		w.Emit(domain.Cue{Kind: domain.CueShot, Magnitude: domain.Shot360Count})
	case t > domain.Shot360EndTick:
		b.Enter(enums.BossIdle)
	}
}

// bossDash: на тике 40 скорость фиксируется по позиции игрока в этот момент
// и больше не пересчитывается; тики 40..59 - движение и проверка касания.
func bossDash(w *domain.World, e *domain.Enemy, b *domain.BossBrain) {
	t := b.ActionTimer
	if t >= domain.DashEndTick {
		b.DashVX, b.DashVY = 0, 0
		b.Enter(enums.BossIdle)
		return
	}
	if t < domain.DashAimTick {
		return
	}

	p := w.Player
	if t == domain.DashAimTick {
		angle := Angle(e.X, e.Y, p.X, p.Y)
		b.DashVX = int(math.Cos(angle) * domain.BossDashSpeed)
		b.DashVY = int(math.Sin(angle) * domain.BossDashSpeed)
	}

	TryMove(w.Grid, w.Tile, &e.Body, e.X+b.DashVX, e.Y+b.DashVY)

	if p.Alive && e.Bounds().Intersects(p.Bounds()) {
		HitPlayer(w, e.X, e.Y, e.Damage, domain.DashPushbackTick)
	}
}

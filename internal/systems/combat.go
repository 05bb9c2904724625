package systems

import (
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DamagePlayer наносит игроку урон с учётом брони и неуязвимости.
// Возвращает фактически снятые HP (0, если игрок неуязвим или уже мёртв).
func DamagePlayer(w *domain.World, incoming int) int {
	p := w.Player
	if !p.Alive || p.IsInvincible() {
		return 0
	}

	actual := domain.Mitigate(incoming, p.Armor)
	if actual <= 0 {
		return 0
	}

	lethal := p.TakeDamage(actual)
	SpawnDamageNumber(w, p.X, p.Y, actual)
	w.Emit(domain.Shake(domain.HurtShakeMagnitude, domain.HurtShakeDuration))
	w.Emit(domain.Cue{Kind: domain.CueHurt, Magnitude: actual})

	if lethal {
		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"incoming":  incoming,
			"armor":     p.Armor,
			"tick":      w.Tick,
		}).Info("Player died")
	}
	return actual
}

// HitPlayer - урон по игроку плюс отбрасывание от источника (sx, sy).
// Неуязвимость гасит урон, но не толчок.
func HitPlayer(w *domain.World, sx, sy, damage, pushTicks int) {
	p := w.Player
	if !p.Alive {
		return
	}
	DamagePlayer(w, damage)
	p.StartPushback(Angle(sx, sy, p.X, p.Y), pushTicks)
}

// PlayerAttack выполняет удар игрока: квадрат вокруг игрока проверяется
// один раз в момент начала удара против всех присутствующих врагов.
// Возвращает количество попаданий.
func PlayerAttack(w *domain.World, prog domain.Progress) int {
	p := w.Player
	area := p.AttackArea()
	hits := 0

	// Перечень фиксируем до начала: AddScore может запустить вызов босса,
	// который только помечает врагов, не меняя коллекцию.
	enemies := w.Enemies
	for _, e := range enemies {
		if !e.Present() || !area.Intersects(e.Bounds()) {
			continue
		}
		hits++
		hitEnemy(w, prog, e, p.Damage)
	}

	if hits > 0 {
		w.Emit(domain.Cue{Kind: domain.CueHit, Magnitude: hits})
	}
	return hits
}

func hitEnemy(w *domain.World, prog domain.Progress, e *domain.Enemy, damage int) {
	p := w.Player

	lethal := e.TakeDamage(damage)
	SpawnDamageNumber(w, e.X, e.Y, damage)
	e.StartPushback(Angle(p.X, p.Y, e.X, e.Y), domain.HitPushbackTicks)

	if e.IsBoss() {
		if lethal {
			logger.Log.WithFields(logrus.Fields{
				"component": "combat_system",
				"enemy_id":  e.ID,
				"tick":      w.Tick,
			}).Info("Boss slain")
			prog.OnBossKilled()
		}
		return
	}

	prog.AddScore(domain.ScorePerHit)
	if lethal {
		w.Emit(domain.Cue{Kind: domain.CueKill})
		prog.AddScore(domain.ScorePerKill)
		logger.Log.WithFields(logrus.Fields{
			"component": "combat_system",
			"enemy_id":  e.ID,
			"kind":      e.Kind,
		}).Debug("Enemy killed")
	}
}

package systems

import (
	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
)

// UpdateEnemies прогоняет поведение всех присутствующих врагов.
// Удаление мёртвых - отдельной фазой (PruneEnemies).
func UpdateEnemies(w *domain.World) {
	for _, e := range w.Enemies {
		if !e.Present() {
			continue
		}
		UpdateEnemy(w, e)
	}
}

// UpdateEnemy - один тик поведения врага, выбор по варианту.
func UpdateEnemy(w *domain.World, e *domain.Enemy) {
	switch e.Kind {
	case enums.KindBoss:
		UpdateBoss(w, e)
		return
	}

	// Отбрасывание заменяет весь тик: ни движения, ни атак, ни кулдауна.
	if StepPushback(w.Grid, w.Tile, &e.Body, &e.Push) {
		return
	}

	switch e.Kind {
	case enums.KindMeleeEnemy:
		updateMelee(w, e)
	case enums.KindRangedEnemy:
		updateRanged(w, e)
	}

	if e.Cooldown > 0 {
		e.Cooldown--
	}

	if e.Attacking {
		e.AttackVisual++
		if e.AttackVisual > domain.AttackVisualTicks {
			e.Attacking = false
			e.AttackVisual = 0
		}
	}
}

func updateMelee(w *domain.World, e *domain.Enemy) {
	p := w.Player
	moveTowards(w, e, p.X, p.Y)

	if e.Cooldown != 0 || !e.Bounds().Intersects(p.Bounds()) {
		return
	}

	e.MarkAttacking()
	HitPlayer(w, e.X, e.Y, e.Damage, domain.HitPushbackTicks)
	e.Cooldown = domain.MeleeCooldown
}

func updateRanged(w *domain.World, e *domain.Enemy) {
	p := w.Player
	dist := Distance(e.X, e.Y, p.X, p.Y)

	switch {
	case dist > domain.RangedAdvanceDistance:
		moveTowards(w, e, p.X, p.Y)
	case dist < domain.RangedRetreatDistance:
		moveAway(w, e, p.X, p.Y)
	}

	if e.Cooldown != 0 || dist >= domain.RangedFireDistance {
		return
	}

	angle := Angle(e.X, e.Y, p.X, p.Y)
	if e.ShotMode == domain.ShotSingle {
		Fire(w, e, angle)
	} else {
		Fire(w, e, angle)
		Fire(w, e, angle-domain.RangedSpreadAngle)
		Fire(w, e, angle+domain.RangedSpreadAngle)
	}

	e.MarkAttacking()
	e.Cooldown = domain.RangedCooldown
	w.Emit(domain.Cue{Kind: domain.CueShot})

	e.ShotCount++
	if e.ShotCount >= domain.RangedShotsPerMode {
		e.ShotMode = e.ShotMode.Toggle()
		e.ShotCount = 0
	}
}

// moveTowards - шаг к цели по каждой оси независимо. Весь шаг отклоняется,
// если итоговая позиция сталкивается со стеной.
func moveTowards(w *domain.World, e *domain.Enemy, tx, ty int) {
	nx := e.X + step(e.X, tx)*e.Speed
	ny := e.Y + step(e.Y, ty)*e.Speed
	TryMove(w.Grid, w.Tile, &e.Body, nx, ny)
}

func moveAway(w *domain.World, e *domain.Enemy, tx, ty int) {
	nx := e.X - step(e.X, tx)*e.Speed
	ny := e.Y - step(e.Y, ty)*e.Speed
	TryMove(w.Grid, w.Tile, &e.Body, nx, ny)
}

func step(from, to int) int {
	switch {
	case from < to:
		return 1
	case from > to:
		return -1
	}
	return 0
}

// Fire выпускает снаряд из центра врага.
func Fire(w *domain.World, e *domain.Enemy, angle float64) {
	cx, cy := e.Center()
	id := w.IDs.Next(enums.KindProjectile)
	w.Projectiles = append(w.Projectiles, domain.NewProjectile(id, cx, cy, angle, e.Damage))
}

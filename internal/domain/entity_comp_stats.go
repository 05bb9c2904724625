package domain

// TakeDamage наносит урон. Возвращает true, если удар оказался смертельным.
func (s *Health) TakeDamage(amount int) bool {
	if !s.Alive {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		s.Alive = false
		return true
	}
	return false
}

// Heal лечит, не превышая максимум. Мёртвых не лечим.
func (s *Health) Heal(amount int) {
	if !s.Alive {
		return
	}
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
}

// Mitigate считает урон по игроку с учётом брони:
// броня снимает не больше 95% удара, итог не меньше 1 при ненулевом ударе.
func Mitigate(incoming, armor int) int {
	if incoming <= 0 {
		return 0
	}
	reduction := armor
	if capped := int(float64(incoming) * 0.95); capped < reduction {
		reduction = capped
	}
	if reduction < 0 {
		reduction = 0
	}
	actual := incoming - reduction
	if actual < 1 {
		actual = 1
	}
	return actual
}

// ScaledStats возвращает HP и урон врага для уровня сложности.
func ScaledStats(boss bool, difficulty int) (hp, damage int) {
	hpMul := 1 + HPPerDifficulty*float64(difficulty)
	dmgMul := 1 + DamagePerDifficulty*float64(difficulty)

	if boss {
		hp = int(BossBaseHP * hpMul)
		damage = int(BossBaseDamage * dmgMul)
	} else {
		hp = int(EnemyBaseHP * hpMul)
		damage = int(EnemyBaseDamage * dmgMul)
	}
	if damage < 1 {
		damage = 1
	}
	return hp, damage
}

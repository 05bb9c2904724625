package systems

import "dungeon-arena/internal/domain"

// SpawnDamageNumber добавляет всплывающую цифру урона у точки (x, y).
func SpawnDamageNumber(w *domain.World, x, y, value int) {
	w.DamageNumbers = append(w.DamageNumbers, domain.NewDamageNumber(x, y, value, w.Rng))
}

// UpdateEffects старит цифры и надписи, затем удаляет истёкшие.
func UpdateEffects(w *domain.World) {
	for _, d := range w.DamageNumbers {
		if d.Active() {
			d.Update()
		}
	}
	for _, f := range w.Texts {
		if f.Active() {
			f.Update()
		}
	}

	w.DamageNumbers = filter(w.DamageNumbers, func(d *domain.DamageNumber) bool { return d.Active() })
	w.Texts = filter(w.Texts, func(f *domain.FloatingText) bool { return f.Active() })
}

// filter оставляет элементы, для которых keep вернул true. Переиспользует массив.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	// Обнуляем хвост, чтобы не держать ссылки на удалённое.
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}

// PruneEnemies убирает мёртвых и помеченных на удаление врагов.
func PruneEnemies(w *domain.World) {
	w.Enemies = filter(w.Enemies, func(e *domain.Enemy) bool { return e.Present() })
}

// PruneProjectiles убирает погасшие снаряды.
func PruneProjectiles(w *domain.World) {
	w.Projectiles = filter(w.Projectiles, func(p *domain.Projectile) bool { return p.Active })
}

package systems

import "dungeon-arena/internal/domain"

// UpdateProjectiles двигает снаряды и гасит их при вылете за мир,
// попадании в стену или в игрока.
func UpdateProjectiles(w *domain.World) {
	widthPx := float64(w.WidthPx())
	heightPx := float64(w.HeightPx())
	p := w.Player

	for _, pr := range w.Projectiles {
		if !pr.Active {
			continue
		}

		pr.X += pr.VX
		pr.Y += pr.VY

		if pr.X < 0 || pr.X > widthPx || pr.Y < 0 || pr.Y > heightPx {
			pr.Active = false
			continue
		}

		col := int(pr.X) / w.Tile
		row := int(pr.Y) / w.Tile
		if w.Grid.InBounds(col, row) && w.Grid.IsWall(col, row) {
			pr.Active = false
			continue
		}

		if p.Alive && pr.Bounds().Intersects(p.Bounds()) {
			DamagePlayer(w, pr.Damage)
			pr.Active = false
		}
	}
}

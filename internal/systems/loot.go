package systems

import (
	"fmt"

	"dungeon-arena/internal/core/types/enums"
	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/dungeon"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CheckLootPickup открывает закрытые ящики, пересекающиеся с игроком.
func CheckLootPickup(w *domain.World) {
	p := w.Player
	for _, box := range w.Loot {
		if box.Opened || !p.Bounds().Intersects(box.Bounds()) {
			continue
		}
		box.Opened = true
		ApplyLoot(w, box.Kind)
	}
}

// ApplyLoot применяет эффект содержимого ящика к игроку.
func ApplyLoot(w *domain.World, kind enums.LootKind) {
	p := w.Player

	switch kind {
	case enums.LootWeapon:
		p.Damage += domain.WeaponDamageBonus
		w.AddText(p.X, p.Y, "Damage Up!", domain.ColorOrange)

	case enums.LootArmor:
		p.Armor += domain.ArmorBonus
		w.AddText(p.X, p.Y, "Armor Up!", domain.ColorGray)

	case enums.LootPotion:
		p.Heal(domain.PotionHeal)
		w.AddText(p.X, p.Y, "HP Restored!", domain.ColorGreen)

	case enums.LootRangePotion:
		increase := domain.RangeBoostMin + w.Rng.Float64()*domain.RangeBoostSpread
		p.Range = p.BaseRange + int(float64(p.BaseRange)*increase)
		p.RangeTimer = domain.RangeTimerBase + w.Rng.Intn(domain.RangeTimerJitter)
		w.AddText(p.X, p.Y, fmt.Sprintf("Range Up! (%d%%)", int(increase*100)), domain.ColorCyan)
	}

	w.Emit(domain.Cue{Kind: domain.CuePickup})
	logger.Log.WithFields(logrus.Fields{
		"component": "loot_system",
		"kind":      kind,
		"tick":      w.Tick,
	}).Debug("Loot picked up")
}

// Offscreen - true, если тело за пределами окна просмотра (с запасом в 2 клетки).
// Окно центрировано на игроке.
func Offscreen(w *domain.World, b *domain.Body) bool {
	p := w.Player
	screenX := b.X - p.X + (w.ViewWidth/2 - w.Tile/2)
	screenY := b.Y - p.Y + (w.ViewHeight/2 - w.Tile/2)
	buf := domain.OffscreenBufferTiles * w.Tile

	return screenX < -buf || screenX > w.ViewWidth+buf ||
		screenY < -buf || screenY > w.ViewHeight+buf
}

// RespawnLoot убирает открытые ящики, ушедшие за экран, и ставит вместо
// каждого новый на случайной клетке пола.
func RespawnLoot(w *domain.World) error {
	removed := 0
	w.Loot = filter(w.Loot, func(b *domain.LootBox) bool {
		if b.Opened && Offscreen(w, &b.Body) {
			removed++
			return false
		}
		return true
	})

	for i := 0; i < removed; i++ {
		if err := PlaceLoot(w); err != nil {
			return err
		}
	}
	return nil
}

// PlaceLoot ставит новый ящик со случайным содержимым.
func PlaceLoot(w *domain.World) error {
	cell, err := dungeon.RandomFloorCell(w.Grid, w.Rng)
	if err != nil {
		return fmt.Errorf("place loot: %w", err)
	}
	kind := enums.LootKind(w.Rng.Intn(enums.LootKindCount))
	id := w.IDs.Next(enums.KindLootBox)
	w.Loot = append(w.Loot, domain.NewLootBox(id, cell.X*w.Tile, cell.Y*w.Tile, w.Tile, kind))
	return nil
}

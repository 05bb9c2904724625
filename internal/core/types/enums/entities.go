package enums

import "strings"

// EntityKind - тип сущности симуляции. Хранится в старших битах EntityID,
// по нему же рендеры выбирают спрайт/глиф.
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindMeleeEnemy
	KindRangedEnemy
	KindBoss
	KindProjectile
	KindLootBox
	KindSpawner
)

var entityKindToString = map[EntityKind]string{
	KindPlayer:      "PLAYER",
	KindMeleeEnemy:  "MELEE",
	KindRangedEnemy: "RANGED",
	KindBoss:        "BOSS",
	KindProjectile:  "PROJECTILE",
	KindLootBox:     "LOOT",
	KindSpawner:     "SPAWNER",
}

var entityKindStringToKind = map[string]EntityKind{
	"PLAYER":     KindPlayer,
	"MELEE":      KindMeleeEnemy,
	"RANGED":     KindRangedEnemy,
	"BOSS":       KindBoss,
	"PROJECTILE": KindProjectile,
	"LOOT":       KindLootBox,
	"SPAWNER":    KindSpawner,
}

// String возвращает строковое представление (для логов и снапшотов)
func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// IsEnemy - true для всех враждебных архетипов, включая босса.
func (e EntityKind) IsEnemy() bool {
	return e == KindMeleeEnemy || e == KindRangedEnemy || e == KindBoss
}

// ParseEntityKind конвертирует строку в Enum (нужно клиентам снапшотов)
func ParseEntityKind(s string) EntityKind {
	upper := strings.ToUpper(s)
	if val, ok := entityKindStringToKind[upper]; ok {
		return val
	}
	return KindUnknown
}

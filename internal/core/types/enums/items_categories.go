package enums

import "strings"

// LootKind - содержимое ящика. Выбирается равновероятно при создании ящика.
type LootKind uint8

const (
	LootWeapon LootKind = iota
	LootArmor
	LootPotion
	LootRangePotion

	lootKindCount
)

// LootKindCount - количество вариантов лута (для равновероятного выбора).
const LootKindCount = int(lootKindCount)

var lootKindToString = map[LootKind]string{
	LootWeapon:      "WEAPON",
	LootArmor:       "ARMOR",
	LootPotion:      "POTION",
	LootRangePotion: "RANGE_POTION",
}

var lootKindStringToKind = map[string]LootKind{
	"WEAPON":       LootWeapon,
	"ARMOR":        LootArmor,
	"POTION":       LootPotion,
	"RANGE_POTION": LootRangePotion,
}

func (c LootKind) String() string {
	if val, ok := lootKindToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseLootKind возвращает false для неизвестной строки.
func ParseLootKind(s string) (LootKind, bool) {
	val, ok := lootKindStringToKind[strings.ToUpper(s)]
	return val, ok
}

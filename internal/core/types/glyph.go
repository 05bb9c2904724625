package types

import (
	"fmt"

	"dungeon-arena/internal/core/types/enums"
)

// Glyph - упакованный цветной символ для рендеров (терминал, окно, зрители).
//
//	[0:8]  - ASCII символ (маска 0xFF)
//	[8:32] - RGB-цвет (маска 0xFFFFFF)
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph создает Glyph из RGB-цвета 0xRRGGBB и ASCII символа.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color извлекает 24-битный RGB-цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// RGB раскладывает цвет по каналам (ebiten и tcell принимают цвет покомпонентно).
func (g Glyph) RGB() (r, gr, b uint8) {
	c := g.Color()
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Char извлекает символ из Glyph.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Rune - символ в виде руны для терминала.
func (g Glyph) Rune() rune {
	return rune(g.Char())
}

// String реализует fmt.Stringer. Формат: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}
	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает строковое HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// Палитра арены. Цвета совпадают с оконным рендером, символы - с терминальным.
var (
	GlyphFloor      = MakeGlyph(0x3C3C3C, '.')
	GlyphWall       = MakeGlyph(0x8B5A2B, '#')
	GlyphPlayer     = MakeGlyph(0x00BFFF, '@')
	GlyphMelee      = MakeGlyph(0xDC143C, 'm')
	GlyphRanged     = MakeGlyph(0xFF8C00, 'r')
	GlyphBoss       = MakeGlyph(0x9400D3, 'B')
	GlyphProjectile = MakeGlyph(0xFFFF00, '*')
	GlyphLoot       = MakeGlyph(0xFFD700, '$')
	GlyphLootOpen   = MakeGlyph(0x6B5B00, '_')
	GlyphSpawner    = MakeGlyph(0x8B0000, 'O')
	GlyphUnknown    = MakeGlyph(0xFF00FF, '?')
)

var glyphByKind = map[enums.EntityKind]Glyph{
	enums.KindPlayer:      GlyphPlayer,
	enums.KindMeleeEnemy:  GlyphMelee,
	enums.KindRangedEnemy: GlyphRanged,
	enums.KindBoss:        GlyphBoss,
	enums.KindProjectile:  GlyphProjectile,
	enums.KindLootBox:     GlyphLoot,
	enums.KindSpawner:     GlyphSpawner,
}

// GlyphFor возвращает глиф архетипа.
func GlyphFor(kind enums.EntityKind) Glyph {
	if g, ok := glyphByKind[kind]; ok {
		return g
	}
	return GlyphUnknown
}

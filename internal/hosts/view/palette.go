package view

import (
	"image/color"
	"strconv"
	"strings"
)

var (
	ColorFloor      = color.RGBA{R: 40, G: 36, B: 44, A: 255}
	ColorWall       = color.RGBA{R: 90, G: 84, B: 96, A: 255}
	ColorPlayer     = color.RGBA{R: 70, G: 160, B: 255, A: 255}
	ColorInvincible = color.RGBA{R: 180, G: 220, B: 255, A: 255}
	ColorAttack     = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	ColorProjectile = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	ColorSpawner    = color.RGBA{R: 120, G: 40, B: 140, A: 255}
	ColorOpened     = color.RGBA{R: 70, G: 60, B: 50, A: 255}
	ColorHPBack     = color.RGBA{R: 45, G: 25, B: 25, A: 255}
	ColorHPFront    = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	ColorText       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	ColorDamage     = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	ColorTelegraph  = color.RGBA{R: 255, G: 60, B: 60, A: 90}
)

// EnemyColor - цвет врага по виду.
func EnemyColor(kind string) color.RGBA {
	switch kind {
	case "MELEE":
		return color.RGBA{R: 220, G: 70, B: 60, A: 255}
	case "RANGED":
		return color.RGBA{R: 230, G: 140, B: 40, A: 255}
	case "BOSS":
		return color.RGBA{R: 160, G: 20, B: 30, A: 255}
	}
	return ColorText
}

// LootColor - цвет ящика по содержимому.
func LootColor(kind string) color.RGBA {
	switch kind {
	case "WEAPON":
		return color.RGBA{R: 255, G: 165, B: 0, A: 255}
	case "ARMOR":
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	case "POTION":
		return color.RGBA{R: 0, G: 220, B: 0, A: 255}
	case "RANGE_POTION":
		return color.RGBA{R: 0, G: 220, B: 220, A: 255}
	}
	return ColorText
}

// ParseHex разбирает "#RRGGBB". Ошибка разбора - белый.
func ParseHex(s string, alpha float64) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(s) != 7 {
		v = 0xFFFFFF
	}
	return Fade(color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, alpha)
}

// Fade умножает цвет на alpha (premultiplied, как ждёт ebiten).
func Fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

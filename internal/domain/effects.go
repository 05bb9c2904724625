package domain

import (
	"math"
	"math/rand"
)

// Цвета всплывающих надписей (0xRRGGBB).
const (
	ColorWhite  uint32 = 0xFFFFFF
	ColorOrange uint32 = 0xFFA500
	ColorGray   uint32 = 0x808080
	ColorGreen  uint32 = 0x00FF00
	ColorCyan   uint32 = 0x00FFFF
	ColorRed    uint32 = 0xFF0000
	ColorYellow uint32 = 0xFFFF00
)

// DamageNumber - всплывающая цифра урона: "выстреливает" в случайную сторону
// и тормозит трением.
type DamageNumber struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"-"`
	VY    float64 `json:"-"`
	Value int     `json:"value"`
	Lifetime
}

// NewDamageNumber создает цифру с разбросом ±40 px и скоростью 6..12.
func NewDamageNumber(x, y, value int, rng *rand.Rand) *DamageNumber {
	jx := rng.Intn(2*DamageNumberJitter) - DamageNumberJitter
	jy := rng.Intn(2*DamageNumberJitter) - DamageNumberJitter
	speed := DamageNumberSpeed + rng.Float64()*DamageNumberSpeed
	angle := rng.Float64() * 2 * math.Pi

	return &DamageNumber{
		X:        float64(x + jx),
		Y:        float64(y + jy),
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Value:    value,
		Lifetime: NewLifetime(DamageNumberLife),
	}
}

// Update двигает цифру и старит её. Возвращает false, когда жизнь кончилась.
func (d *DamageNumber) Update() bool {
	d.X += d.VX
	d.Y += d.VY
	d.VX *= DamageNumberFriction
	d.VY *= DamageNumberFriction
	return d.Age()
}

// FloatingText - надпись, медленно всплывающая вверх.
type FloatingText struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Text  string `json:"text"`
	Color uint32 `json:"color"`
	Lifetime
}

// NewFloatingText создает надпись на 120 тиков.
func NewFloatingText(x, y int, text string, color uint32) *FloatingText {
	return &FloatingText{
		X:        x,
		Y:        y,
		Text:     text,
		Color:    color,
		Lifetime: NewLifetime(FloatingTextLife),
	}
}

// Update поднимает надпись на 1 px.
func (f *FloatingText) Update() bool {
	f.Y--
	return f.Age()
}

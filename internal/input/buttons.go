// Package input описывает состояние кнопок, которое хост опрашивает раз в тик.
package input

import "strings"

// Buttons - битовая маска нажатых кнопок (уровни, не фронты).
type Buttons uint8

const (
	Up Buttons = 1 << iota
	Down
	Left
	Right
	Attack
	Dash
	Confirm
	Cancel
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{Up, "UP"},
	{Down, "DOWN"},
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{Attack, "ATTACK"},
	{Dash, "DASH"},
	{Confirm, "CONFIRM"},
	{Cancel, "CANCEL"},
}

// Has - true, если все кнопки из mask нажаты.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// With возвращает маску с добавленными кнопками.
func (b Buttons) With(mask Buttons) Buttons {
	return b | mask
}

// Pressed возвращает кнопки, нажатые в этом тике (фронт 0 -> 1).
func Pressed(prev, cur Buttons) Buttons {
	return cur &^ prev
}

// String - "UP|ATTACK" и т.п., для логов и дебага.
func (b Buttons) String() string {
	if b == 0 {
		return "NONE"
	}
	var parts []string
	for _, bn := range buttonNames {
		if b.Has(bn.b) {
			parts = append(parts, bn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Parse разбирает строку вида "UP|ATTACK". Неизвестные имена пропускаются.
func Parse(s string) Buttons {
	var out Buttons
	for _, part := range strings.Split(strings.ToUpper(s), "|") {
		for _, bn := range buttonNames {
			if strings.TrimSpace(part) == bn.name {
				out |= bn.b
			}
		}
	}
	return out
}

// State помнит прошлый тик и выдаёт фронты.
type State struct {
	prev Buttons
	cur  Buttons
}

// Next фиксирует кнопки нового тика.
func (s *State) Next(b Buttons) {
	s.prev = s.cur
	s.cur = b
}

// Held - кнопки, зажатые сейчас.
func (s *State) Held() Buttons { return s.cur }

// JustPressed - true, если кнопка нажата именно в этом тике.
func (s *State) JustPressed(b Buttons) bool {
	return Pressed(s.prev, s.cur).Has(b)
}

// Reset забывает историю (после рестарта забега).
func (s *State) Reset() {
	s.prev, s.cur = 0, 0
}

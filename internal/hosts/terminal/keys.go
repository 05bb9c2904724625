package terminal

import (
	"time"

	"dungeon-arena/internal/input"

	"github.com/gdamore/tcell/v2"
)

// keyTimeout - сколько кнопка считается зажатой после последнего события.
// Терминал не сообщает об отпускании, поэтому удержание имитируется автоповтором.
const keyTimeout = 150 * time.Millisecond

// heldKeys переводит поток нажатий в уровни кнопок.
// Удар и Confirm - одиночные нажатия: отдаются ровно в одном тике,
// иначе автоповтор склеил бы серию ударов в одно удержание.
type heldKeys struct {
	last map[input.Buttons]time.Time
	taps input.Buttons
}

func newHeldKeys() *heldKeys {
	return &heldKeys{last: make(map[input.Buttons]time.Time)}
}

const tapButtons = input.Attack | input.Confirm | input.Cancel

// Press регистрирует нажатие.
func (k *heldKeys) Press(b input.Buttons, now time.Time) {
	if b&tapButtons != 0 {
		k.taps |= b & tapButtons
	}
	if held := b &^ tapButtons; held != 0 {
		k.last[held] = now
	}
}

// Buttons - кнопки на текущий тик. Одиночные нажатия сбрасываются.
func (k *heldKeys) Buttons(now time.Time) input.Buttons {
	out := k.taps
	k.taps = 0
	for b, at := range k.last {
		if now.Sub(at) < keyTimeout {
			out |= b
		} else {
			delete(k.last, b)
		}
	}
	return out
}

// Release забывает всё (после рестарта, чтобы не унести удержание в новый забег).
func (k *heldKeys) Release() {
	k.taps = 0
	clear(k.last)
}

// buttonFor переводит событие клавиатуры в кнопку. 0 - клавиша не назначена.
func buttonFor(ev *tcell.EventKey) input.Buttons {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEnter:
		return input.Confirm
	case tcell.KeyEscape:
		return input.Cancel
	case tcell.KeyTab:
		return input.Dash
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.Up
		case 's', 'S':
			return input.Down
		case 'a', 'A':
			return input.Left
		case 'd', 'D':
			return input.Right
		case ' ', 'j', 'J':
			return input.Attack
		case 'k', 'K':
			return input.Dash
		case 'q', 'Q':
			return input.Cancel
		}
	}
	return 0
}

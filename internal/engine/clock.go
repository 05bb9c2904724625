package engine

import (
	"time"

	"dungeon-arena/internal/domain"
)

// TickDuration - фиксированный шаг симуляции.
const TickDuration = time.Second / domain.TicksPerSecond

// MaxCatchUpTicks - сколько тиков разрешено догнать за один кадр.
// Остальное отставание отбрасывается, иначе медленный кадр тянет за собой следующий.
const MaxCatchUpTicks = 5

// Clock переводит прошедшее реальное время в целое число тиков.
type Clock struct {
	step     time.Duration
	maxTicks int
	acc      time.Duration
	last     time.Time
}

// NewClock создает аккумулятор с шагом step и потолком maxTicks за кадр.
func NewClock(step time.Duration, maxTicks int) *Clock {
	return &Clock{step: step, maxTicks: maxTicks}
}

// Advance добавляет elapsed и возвращает число целых тиков, которые пора выполнить.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	c.acc += elapsed

	n := int(c.acc / c.step)
	if n > c.maxTicks {
		n = c.maxTicks
		c.acc = 0
		return n
	}
	c.acc -= time.Duration(n) * c.step
	return n
}

// Since - Advance от момента прошлого вызова. Первый вызов только запоминает время.
func (c *Clock) Since(now time.Time) int {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return c.Advance(elapsed)
}

// Alpha - доля следующего тика, уже накопленная (для интерполяции рендера).
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// Package view - общие для хостов вычисления поверх снапшота: тряска камеры,
// HUD, палитра. Ни от какого рендерера не зависит.
package view

import (
	"math/rand"

	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/api"
)

// Shake - тряска камеры. Новая подсказка не ослабляет текущую.
type Shake struct {
	magnitude int
	duration  int
	left      int
	rng       *rand.Rand
}

// NewShake создает тряску. Сид фиксирован: тряска не влияет на симуляцию.
func NewShake(seed int64) *Shake {
	return &Shake{rng: rand.New(rand.NewSource(seed))}
}

// Apply подхватывает подсказки SHAKE из снапшота.
func (s *Shake) Apply(cues []api.CueView) {
	for _, c := range cues {
		if domain.ParseCue(c.Kind) != domain.CueShake || c.Duration <= 0 {
			continue
		}
		if c.Magnitude >= s.current() {
			s.magnitude = c.Magnitude
			s.duration = c.Duration
			s.left = c.Duration
		}
	}
}

// current - сила тряски в этом кадре, линейно затухает.
func (s *Shake) current() int {
	if s.left <= 0 || s.duration <= 0 {
		return 0
	}
	return s.magnitude * s.left / s.duration
}

// Active - true, пока тряска не кончилась.
func (s *Shake) Active() bool { return s.left > 0 }

// Offset возвращает смещение камеры на кадр и продвигает таймер.
func (s *Shake) Offset() (int, int) {
	m := s.current()
	if m <= 0 {
		s.left = 0
		return 0, 0
	}
	s.left--
	return s.rng.Intn(2*m+1) - m, s.rng.Intn(2*m+1) - m
}

package domain

import "dungeon-arena/internal/input"

// ReplayFrame - отрезок тиков с одинаковыми кнопками (RLE).
type ReplayFrame struct {
	Buttons input.Buttons `json:"buttons"`
	Count   uint32        `json:"count"`
}

// ReplaySession - запись забега: сид и поток кнопок.
// Состояние мира не сохраняется: оно воспроизводится детерминированно.
type ReplaySession struct {
	RunID      string        `json:"runId"`
	Seed       int64         `json:"seed"`
	Timestamp  int64         `json:"timestamp"`
	PlayerName string        `json:"playerName"`
	Frames     []ReplayFrame `json:"frames"`
}

// Record дописывает один тик.
func (s *ReplaySession) Record(b input.Buttons) {
	if n := len(s.Frames); n > 0 && s.Frames[n-1].Buttons == b {
		s.Frames[n-1].Count++
		return
	}
	s.Frames = append(s.Frames, ReplayFrame{Buttons: b, Count: 1})
}

// Ticks - общее число записанных тиков.
func (s *ReplaySession) Ticks() int {
	n := 0
	for _, f := range s.Frames {
		n += int(f.Count)
	}
	return n
}

// Each раскрывает RLE и вызывает fn для каждого тика.
// Останавливается, если fn вернула false.
func (s *ReplaySession) Each(fn func(tick int, b input.Buttons) bool) {
	tick := 0
	for _, f := range s.Frames {
		for i := uint32(0); i < f.Count; i++ {
			if !fn(tick, f.Buttons) {
				return
			}
			tick++
		}
	}
}

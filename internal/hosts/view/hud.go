package view

import (
	"fmt"

	"dungeon-arena/pkg/api"
)

// FinalScore - итог забега: очки прошлых этапов плюс текущие.
func FinalScore(p api.ProgressView) int {
	return p.TotalScore + p.Score
}

// HUDLines - строки статуса в левом верхнем углу.
func HUDLines(s *api.Snapshot) []string {
	p := s.Player
	pr := s.Progress

	lines := []string{
		fmt.Sprintf("HP %d/%d", p.HP, p.MaxHP),
		fmt.Sprintf("Score %d  Total %d", pr.Score, FinalScore(pr)),
		fmt.Sprintf("Stage %d  Difficulty %d", pr.Stage, pr.Difficulty),
		fmt.Sprintf("DMG %d  ARM %d  RNG %d", p.Damage, p.Armor, p.Range),
	}
	if !pr.BossActive && !pr.BossPending {
		lines = append(lines, fmt.Sprintf("Boss at %d", pr.NextBossScore))
	}
	if p.DashCooldown > 0 {
		lines = append(lines, fmt.Sprintf("Dash %d", p.DashCooldown))
	}
	return lines
}

// Banner - крупная надпись по центру или "".
func Banner(s *api.Snapshot) string {
	pr := s.Progress
	switch {
	case s.Over:
		return "GAME OVER"
	case pr.TransitionPending:
		return "STAGE CLEAR"
	case pr.BossPending:
		return "BOSS INCOMING"
	case pr.BannerTicks > 0:
		return fmt.Sprintf("STAGE %d", pr.Stage)
	}
	return ""
}

// GameOverLines - экран окончания забега.
func GameOverLines(s *api.Snapshot) []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", FinalScore(s.Progress)),
		fmt.Sprintf("Stage reached: %d", s.Progress.Stage),
		"",
		"Enter - restart    Esc - quit",
	}
}

// BossHealth - доля здоровья босса или -1, если босса нет.
func BossHealth(s *api.Snapshot) float64 {
	b := s.Boss()
	if b == nil || b.MaxHP <= 0 {
		return -1
	}
	return float64(b.HP) / float64(b.MaxHP)
}

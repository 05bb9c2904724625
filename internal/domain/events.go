package domain

import "strings"

// CueKind - тип подсказки для хоста (тряска экрана, звук).
type CueKind uint8

const (
	CueUnknown CueKind = iota
	CueShake
	CueHit
	CueHurt
	CueKill
	CueShot
	CueBossIncoming
	CueBossSpawn
	CueBossLand
	CueBossDefeated
	CuePickup
	CueStageClear
	CueGameOver
)

var cueToString = map[CueKind]string{
	CueShake:        "SHAKE",
	CueHit:          "HIT",
	CueHurt:         "HURT",
	CueKill:         "KILL",
	CueShot:         "SHOT",
	CueBossIncoming: "BOSS_INCOMING",
	CueBossSpawn:    "BOSS_SPAWN",
	CueBossLand:     "BOSS_LAND",
	CueBossDefeated: "BOSS_DEFEATED",
	CuePickup:       "PICKUP",
	CueStageClear:   "STAGE_CLEAR",
	CueGameOver:     "GAME_OVER",
}

var cueStringToKind = func() map[string]CueKind {
	m := make(map[string]CueKind, len(cueToString))
	for k, v := range cueToString {
		m[v] = k
	}
	return m
}()

// String реализует интерфейс Stringer
func (c CueKind) String() string {
	if val, ok := cueToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseCue конвертирует строку (из снапшота) в CueKind
func ParseCue(s string) CueKind {
	if val, ok := cueStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return CueUnknown
}

// Cue - fire-and-forget подсказка: сила и длительность в тиках.
// Ядро не знает, как хост её воплотит.
type Cue struct {
	Kind      CueKind `json:"kind"`
	Magnitude int     `json:"magnitude,omitempty"`
	Duration  int     `json:"duration,omitempty"`
}

// Shake - подсказка тряски экрана.
func Shake(magnitude, duration int) Cue {
	return Cue{Kind: CueShake, Magnitude: magnitude, Duration: duration}
}

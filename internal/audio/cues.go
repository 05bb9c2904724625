package audio

import (
	"time"

	"dungeon-arena/internal/domain"
)

const ms = time.Millisecond

// cueSounds - звуки подсказок. Тряска экрана звука не имеет.
var cueSounds = map[domain.CueKind][]Tone{
	domain.CueHit: {
		{Freq: 320, EndFreq: 180, Duration: 70 * ms, Attack: 5 * ms, Wave: WaveSquare, Volume: 0.25},
	},
	domain.CueHurt: {
		{Freq: 140, EndFreq: 90, Duration: 140 * ms, Attack: 5 * ms, Wave: WaveSquare, Volume: 0.35},
	},
	domain.CueKill: {
		{Freq: 520, EndFreq: 780, Duration: 90 * ms, Attack: 5 * ms, Wave: WaveSine, Volume: 0.3},
	},
	domain.CueShot: {
		{Freq: 900, EndFreq: 500, Duration: 60 * ms, Attack: 2 * ms, Wave: WaveSine, Volume: 0.15},
	},
	domain.CueBossIncoming: {
		{Freq: 220, Duration: 250 * ms, Attack: 20 * ms, Wave: WaveSquare, Volume: 0.3},
		{Freq: 165, Duration: 250 * ms, Attack: 20 * ms, Wave: WaveSquare, Volume: 0.3},
		{Freq: 220, Duration: 250 * ms, Attack: 20 * ms, Wave: WaveSquare, Volume: 0.3},
	},
	domain.CueBossSpawn: {
		{Freq: 60, EndFreq: 120, Duration: 500 * ms, Attack: 50 * ms, Wave: WaveSquare, Volume: 0.4},
	},
	domain.CueBossLand: {
		{Freq: 0, Duration: 200 * ms, Attack: 2 * ms, Wave: WaveNoise, Volume: 0.35},
		{Freq: 55, Duration: 200 * ms, Attack: 2 * ms, Wave: WaveSine, Volume: 0.4},
	},
	domain.CueBossDefeated: {
		{Freq: 523, Duration: 150 * ms, Attack: 5 * ms, Wave: WaveSine, Volume: 0.3},
		{Freq: 659, Duration: 150 * ms, Attack: 5 * ms, Wave: WaveSine, Volume: 0.3},
		{Freq: 784, Duration: 150 * ms, Attack: 5 * ms, Wave: WaveSine, Volume: 0.3},
		{Freq: 1046, Duration: 400 * ms, Attack: 5 * ms, Wave: WaveSine, Volume: 0.3},
	},
	domain.CuePickup: {
		{Freq: 880, Duration: 80 * ms, Attack: 3 * ms, Wave: WaveSine, Volume: 0.25},
		{Freq: 1320, Duration: 120 * ms, Attack: 3 * ms, Wave: WaveSine, Volume: 0.2},
	},
	domain.CueStageClear: {
		{Freq: 392, EndFreq: 784, Duration: 600 * ms, Attack: 20 * ms, Wave: WaveSine, Volume: 0.3},
	},
	domain.CueGameOver: {
		{Freq: 392, Duration: 300 * ms, Attack: 10 * ms, Wave: WaveSquare, Volume: 0.3},
		{Freq: 311, Duration: 300 * ms, Attack: 10 * ms, Wave: WaveSquare, Volume: 0.3},
		{Freq: 196, EndFreq: 98, Duration: 800 * ms, Attack: 10 * ms, Wave: WaveSquare, Volume: 0.3},
	},
}

// Sound возвращает тоны подсказки или nil, если у неё нет звука.
func Sound(kind domain.CueKind) []Tone {
	return cueSounds[kind]
}

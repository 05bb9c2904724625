package audio

import (
	"sync"
	"time"

	"dungeon-arena/internal/domain"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate = beep.SampleRate(44100)
	// maxVoices - сколько звуков звучит одновременно. Лишние подсказки
	// за тик отбрасываются, иначе залп снарядов превращается в шум.
	maxVoices = 8
)

// Player озвучивает подсказки из снапшотов. Без Init все вызовы - no-op,
// поэтому хосты работают и на машинах без звука.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	log *logrus.Entry
}

func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		log:   logger.Log.WithField("component", "audio"),
	}
}

// Init открывает устройство вывода.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug("Audio initialized")
	return nil
}

// SetMuted включает и выключает звук.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = m
}

// Play запускает звуки подсказок. Одинаковые подсказки одного снапшота
// звучат один раз.
func (p *Player) Play(cues []api.CueView) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	streams := Streams(cues)
	if len(streams) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, s := range streams {
		if p.mixer.Len() >= maxVoices {
			break
		}
		p.mixer.Add(s)
	}
}

// Streams переводит подсказки в стримеры без повторов.
func Streams(cues []api.CueView) []beep.Streamer {
	seen := make(map[domain.CueKind]bool, len(cues))
	var out []beep.Streamer
	for _, c := range cues {
		kind := domain.ParseCue(c.Kind)
		if seen[kind] {
			continue
		}
		seen[kind] = true

		tones := Sound(kind)
		if len(tones) == 0 {
			continue
		}
		out = append(out, Render(tones, sampleRate))
	}
	return out
}

// Close глушит все звуки.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

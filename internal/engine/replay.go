package engine

import (
	"errors"
	"fmt"

	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/input"

	"github.com/google/uuid"
)

// Replay заново прогоняет записанный забег: тот же сид и тот же поток кнопок
// дают тот же мир. Получателя счёта не передавайте: запись уже учтена.
func Replay(cfg Config, s *domain.ReplaySession, opts ...Option) (*Game, error) {
	if s == nil {
		return nil, errors.New("replay: no session")
	}
	cfg.Seed = s.Seed
	if s.PlayerName != "" {
		cfg.PlayerName = s.PlayerName
	}
	if id, err := uuid.Parse(s.RunID); err == nil {
		opts = append(opts, WithRunID(id))
	}

	g, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	var tickErr error
	s.Each(func(tick int, b input.Buttons) bool {
		if tickErr = g.Tick(b); tickErr != nil {
			tickErr = fmt.Errorf("replay tick %d: %w", tick, tickErr)
			return false
		}
		return true
	})
	if tickErr != nil {
		return g, tickErr
	}

	g.log.WithField("ticks", s.Ticks()).Info("Replay finished")
	return g, nil
}

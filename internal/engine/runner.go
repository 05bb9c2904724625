package engine

import (
	"context"
	"sync/atomic"
	"time"

	"dungeon-arena/internal/input"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/sirupsen/logrus"
)

// InputSource выдаёт кнопки на очередной тик по последнему снапшоту.
// Реализуется автопилотом.
type InputSource interface {
	Next(s *api.Snapshot) input.Buttons
}

// Publisher получает снапшот после каждой пачки тиков.
type Publisher interface {
	Publish(s *api.Snapshot)
}

// Runner - единственный владелец Game в headless-режиме. Горутина Run
// двигает мир по часам, остальные читают только опубликованные копии.
type Runner struct {
	game   *Game
	source InputSource
	pub    Publisher
	clock  *Clock

	view        *api.Snapshot
	gridVersion int

	latest     atomic.Pointer[api.Snapshot]
	latestGrid atomic.Pointer[api.GridView]

	log *logrus.Entry
}

// NewRunner связывает игру, источник ввода и получателя снапшотов.
// pub может быть nil.
func NewRunner(g *Game, src InputSource, pub Publisher) *Runner {
	r := &Runner{
		game:   g,
		source: src,
		pub:    pub,
		clock:  NewClock(TickDuration, MaxCatchUpTicks),
		log:    logger.Log.WithField("component", "runner"),
	}
	r.view = r.snapshot()
	r.latest.Store(r.view)
	return r
}

// Run крутит цикл до отмены ctx. Возвращает ошибку симуляции, если она случилась.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	r.log.WithField("run_id", r.game.RunID().String()).Info("Runner started")
	r.clock.Since(time.Now())

	for {
		select {
		case <-ctx.Done():
			r.log.Info("Runner stopped")
			return nil
		case now := <-ticker.C:
			if err := r.Step(r.clock.Since(now)); err != nil {
				r.log.WithError(err).Error("Simulation failed")
				return err
			}
		}
	}
}

// Step выполняет n тиков и публикует итоговый снапшот.
func (r *Runner) Step(n int) error {
	if n <= 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		b := r.source.Next(r.view)
		if err := r.game.Tick(b); err != nil {
			return err
		}
		r.view = r.snapshot()
	}

	r.latest.Store(r.view)
	if r.pub != nil {
		r.pub.Publish(r.view)
	}
	r.game.DrainCues()
	return nil
}

// snapshot включает сетку только после её перегенерации.
func (r *Runner) snapshot() *api.Snapshot {
	fresh := r.game.GridVersion() != r.gridVersion
	s := r.game.Snapshot(fresh)
	if fresh {
		r.gridVersion = s.GridVersion
		r.latestGrid.Store(s.Grid)
	}
	return s
}

// Latest - последний опубликованный снапшот. Безопасно из любой горутины.
func (r *Runner) Latest() *api.Snapshot {
	return r.latest.Load()
}

// LatestGrid - сетка текущего этапа для новых подписчиков.
func (r *Runner) LatestGrid() *api.GridView {
	return r.latestGrid.Load()
}

package engine

import (
	"context"
	"testing"
	"time"

	"dungeon-arena/internal/input"
	"dungeon-arena/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleSource struct{ seen int }

func (s *idleSource) Next(*api.Snapshot) input.Buttons {
	s.seen++
	return 0
}

type collectPublisher struct{ got []*api.Snapshot }

func (p *collectPublisher) Publish(s *api.Snapshot) { p.got = append(p.got, s) }

func TestRunner_Step(t *testing.T) {
	g := newTestGame(t)
	src := &idleSource{}
	pub := &collectPublisher{}
	r := NewRunner(g, src, pub)

	require.NotNil(t, r.LatestGrid())
	assert.NotNil(t, r.Latest().Grid, "first snapshot carries the grid")

	require.NoError(t, r.Step(3))
	assert.Equal(t, 3, src.seen)
	require.Len(t, pub.got, 1)
	assert.Equal(t, uint64(3), pub.got[0].Tick)
	assert.Nil(t, pub.got[0].Grid)
	assert.Same(t, pub.got[0], r.Latest())

	require.NoError(t, r.Step(0))
	assert.Len(t, pub.got, 1)
}

func TestRunner_GridResentAfterRestart(t *testing.T) {
	g := newTestGame(t)
	pub := &collectPublisher{}
	r := NewRunner(g, &idleSource{}, pub)
	first := r.LatestGrid()

	require.NoError(t, g.Restart())
	require.NoError(t, r.Step(1))

	require.NotNil(t, pub.got[0].Grid)
	assert.Equal(t, 2, pub.got[0].GridVersion)
	assert.NotSame(t, first, r.LatestGrid())
}

func TestRunner_RunStopsOnCancel(t *testing.T) {
	g := newTestGame(t)
	r := NewRunner(g, &idleSource{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, r.Run(ctx))
	assert.Greater(t, r.Latest().Tick, uint64(0))
}

package view

import (
	"image/color"
	"testing"

	"dungeon-arena/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShake(t *testing.T) {
	s := NewShake(1)
	dx, dy := s.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	s.Apply([]api.CueView{{Kind: "HIT"}, {Kind: "SHAKE", Magnitude: 10, Duration: 20}})
	require.True(t, s.Active())

	for i := 0; i < 20; i++ {
		dx, dy := s.Offset()
		assert.LessOrEqual(t, abs(dx), 10)
		assert.LessOrEqual(t, abs(dy), 10)
	}
	assert.False(t, s.Active())
}

func TestShake_WeakerCueDoesNotCut(t *testing.T) {
	s := NewShake(1)
	s.Apply([]api.CueView{{Kind: "SHAKE", Magnitude: 20, Duration: 20}})
	s.Offset()

	s.Apply([]api.CueView{{Kind: "SHAKE", Magnitude: 5, Duration: 2}})
	assert.Equal(t, 19, s.left)
	assert.Equal(t, 20, s.magnitude)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name string
		s    api.Snapshot
		want string
	}{
		{"quiet", api.Snapshot{}, ""},
		{"stage", api.Snapshot{Progress: api.ProgressView{Stage: 3, BannerTicks: 10}}, "STAGE 3"},
		{"boss", api.Snapshot{Progress: api.ProgressView{BossPending: true, BannerTicks: 10}}, "BOSS INCOMING"},
		{"clear", api.Snapshot{Progress: api.ProgressView{TransitionPending: true}}, "STAGE CLEAR"},
		{"over", api.Snapshot{Over: true, Progress: api.ProgressView{BossPending: true}}, "GAME OVER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Banner(&tt.s))
		})
	}
}

func TestHUDLines(t *testing.T) {
	s := &api.Snapshot{
		Player:   api.PlayerView{HP: 70, MaxHP: 100, DashCooldown: 12},
		Progress: api.ProgressView{Score: 50, TotalScore: 200, Stage: 2, NextBossScore: 600},
	}
	lines := HUDLines(s)
	assert.Equal(t, "HP 70/100", lines[0])
	assert.Equal(t, "Score 50  Total 250", lines[1])
	assert.Contains(t, lines, "Boss at 600")
	assert.Contains(t, lines, "Dash 12")

	s.Progress.BossActive = true
	assert.NotContains(t, HUDLines(s), "Boss at 600")
}

func TestGameOverLines(t *testing.T) {
	s := &api.Snapshot{Over: true, Progress: api.ProgressView{Score: 5, TotalScore: 100, Stage: 2}}
	lines := GameOverLines(s)
	assert.Equal(t, "GAME OVER", lines[0])
	assert.Equal(t, "Final score: 105", lines[1])
}

func TestBossHealth(t *testing.T) {
	s := &api.Snapshot{Enemies: []api.EnemyView{{Kind: "BOSS", HP: 250, MaxHP: 1000, Boss: &api.BossView{}}}}
	assert.Equal(t, -1.0, BossHealth(s), "босс не активен в прогрессии")

	s.Progress.BossActive = true
	assert.InDelta(t, 0.25, BossHealth(s), 1e-9)
}

func TestParseHex(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}, ParseHex("#FFA500", 1))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, ParseHex("junk", 1))
	assert.Equal(t, color.RGBA{}, ParseHex("#FFFFFF", 0))
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 127}, ParseHex("#FFFFFF", 0.5))
}

func TestCellRange(t *testing.T) {
	g := &api.GridView{Width: 100, Height: 100, Tile: 48}

	c0, r0, c1, r1 := CellRange(api.CameraView{X: 480, Y: 96, Width: 768, Height: 576}, g)
	assert.Equal(t, []int{10, 2, 27, 15}, []int{c0, r0, c1, r1})

	c0, r0, c1, r1 = CellRange(api.CameraView{X: -100, Y: -1, Width: 768, Height: 576}, g)
	assert.Equal(t, []int{0, 0, 14, 12}, []int{c0, r0, c1, r1})

	c0, _, c1, _ = CellRange(api.CameraView{}, nil)
	assert.Zero(t, c0)
	assert.Zero(t, c1)
}

package domain

import (
	"testing"

	"dungeon-arena/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(1, 1, Floor)

	assert.False(t, g.IsWall(1, 1))
	assert.True(t, g.IsWall(0, 0))
	assert.True(t, g.IsWall(-1, 1))
	assert.True(t, g.IsWall(4, 1))
	assert.True(t, g.IsWall(1, 3))

	// Set за пределами игнорируется
	g.Set(10, 10, Floor)
	assert.Equal(t, 1, g.Count(Floor))
}

func TestGrid_FloorCells(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 0, Floor)
	g.Set(0, 2, Floor)

	cells := g.FloorCells()
	require.Len(t, cells, 2)
	assert.Equal(t, Position{X: 2, Y: 0}, cells[0])
	assert.Equal(t, Position{X: 0, Y: 2}, cells[1])

	rows := g.Rows()
	assert.False(t, rows[0][2])
	assert.True(t, rows[1][1])
}

func TestRect_Intersects(t *testing.T) {
	r1 := Rect{0, 0, 10, 10}
	r2 := Rect{5, 5, 10, 10}
	r3 := Rect{20, 20, 5, 5}
	touching := Rect{10, 0, 10, 10}

	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))
	assert.False(t, r1.Intersects(r3))
	assert.False(t, r1.Intersects(touching), "shared edge is not an overlap")
}

func TestMitigate(t *testing.T) {
	tests := []struct {
		name            string
		incoming, armor int
		want            int
	}{
		{"no armor", 10, 0, 10},
		{"armor 3 vs 10", 10, 3, 7},
		{"armor capped at 95 percent", 10, 100, 1},
		{"floor at one", 1, 5, 1},
		{"big hit", 20, 100, 1},
		{"zero incoming", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mitigate(tt.incoming, tt.armor))
		})
	}
}

func TestMitigate_FloorProperty(t *testing.T) {
	for incoming := 1; incoming <= 60; incoming++ {
		for armor := 0; armor <= 80; armor++ {
			if got := Mitigate(incoming, armor); got < 1 {
				t.Fatalf("Mitigate(%d, %d) = %d, want >= 1", incoming, armor, got)
			}
		}
	}
}

func TestScaledStats(t *testing.T) {
	hp, dmg := ScaledStats(false, 0)
	assert.Equal(t, 10, hp)
	assert.Equal(t, 2, dmg)

	hp, dmg = ScaledStats(false, 4)
	assert.Equal(t, 30, hp)
	assert.Equal(t, 2, dmg) // int(2 * 1.4)

	hp, dmg = ScaledStats(true, 0)
	assert.Equal(t, 200, hp)
	assert.Equal(t, 10, dmg)

	hp, dmg = ScaledStats(true, 5)
	assert.Equal(t, 700, hp)
	assert.Equal(t, 15, dmg)
}

func TestHealth(t *testing.T) {
	h := NewHealth(10)

	assert.False(t, h.TakeDamage(5))
	assert.Equal(t, 5, h.HP)

	h.Heal(100)
	assert.Equal(t, 10, h.HP)

	assert.True(t, h.TakeDamage(10))
	assert.False(t, h.Alive)
	assert.False(t, h.TakeDamage(1), "dead cannot die twice")

	h.Heal(5)
	assert.Equal(t, 0, h.HP)
}

func TestLifetime(t *testing.T) {
	l := NewLifetime(2)
	assert.True(t, l.Active())
	assert.True(t, l.Age())
	assert.False(t, l.Age())
	assert.False(t, l.Active())
	assert.Zero(t, l.Fraction())
}

func TestPlayer_PushbackCancelsDash(t *testing.T) {
	p := NewPlayer(0, TileSize)
	p.Dash.Active = true
	p.Dash.Counter = 3

	p.StartPushback(0, HitPushbackTicks)

	assert.True(t, p.Push.Active)
	assert.Equal(t, PushbackSpeed, p.Push.Speed)
	assert.False(t, p.Dash.Active)
}

func TestPlayer_AttackArea(t *testing.T) {
	p := NewPlayer(0, TileSize)
	p.X, p.Y = 480, 480

	area := p.AttackArea()
	assert.Equal(t, Rect{X: 432, Y: 432, W: 144, H: 144}, area)
}

func TestReplaySession_RLE(t *testing.T) {
	var s ReplaySession
	for i := 0; i < 3; i++ {
		s.Record(input.Up)
	}
	s.Record(input.Attack)
	s.Record(input.Up)

	require.Len(t, s.Frames, 3)
	assert.Equal(t, uint32(3), s.Frames[0].Count)
	assert.Equal(t, 5, s.Ticks())

	var got []input.Buttons
	s.Each(func(_ int, b input.Buttons) bool {
		got = append(got, b)
		return true
	})
	assert.Equal(t, []input.Buttons{input.Up, input.Up, input.Up, input.Attack, input.Up}, got)
}

func TestCueKind_Parse(t *testing.T) {
	assert.Equal(t, CueBossLand, ParseCue("boss_land"))
	assert.Equal(t, "SHAKE", CueShake.String())
	assert.Equal(t, CueUnknown, ParseCue("nope"))
}

package systems

import (
	"testing"

	"dungeon-arena/internal/domain"
)

const tile = domain.TileSize

// newOpenGrid - сетка w x h с полом внутри и стенами по периметру.
func newOpenGrid(w, h int) *domain.Grid {
	g := domain.NewGrid(w, h)
	for r := 1; r < h-1; r++ {
		for c := 1; c < w-1; c++ {
			g.Set(c, r, domain.Floor)
		}
	}
	return g
}

func TestWouldCollide(t *testing.T) {
	g := newOpenGrid(10, 10)
	g.Set(5, 5, domain.Wall)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside single floor cell", tile, tile, false},
		{"spanning two floor cells", tile + 10, tile + 20, false},
		{"touching border wall", tile - 1, tile, true},
		{"negative x", -1, tile, true},
		{"negative y", tile, -20, true},
		{"far out of bounds", 20 * tile, tile, true},
		{"corner overlaps inner wall", 4*tile + 1, 4*tile + 1, true},
		{"flush against inner wall", 4 * tile, 4 * tile, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WouldCollide(g, tile, tt.x, tt.y, tile); got != tt.want {
				t.Errorf("WouldCollide(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestTryMove_RejectedMoveKeepsPosition(t *testing.T) {
	g := newOpenGrid(10, 10)
	b := &domain.Body{X: tile, Y: tile, Size: tile}

	if TryMove(g, tile, b, tile-4, tile) {
		t.Fatal("move into border wall accepted")
	}
	if b.X != tile || b.Y != tile {
		t.Errorf("position changed after rejected move: %d,%d", b.X, b.Y)
	}

	if !TryMove(g, tile, b, tile+4, tile+4) {
		t.Fatal("move across floor rejected")
	}
	if b.X != tile+4 || b.Y != tile+4 {
		t.Errorf("position = %d,%d, want %d,%d", b.X, b.Y, tile+4, tile+4)
	}
}

func TestStepPushback(t *testing.T) {
	g := newOpenGrid(10, 10)
	b := &domain.Body{X: 3 * tile, Y: 3 * tile, Size: tile}
	p := &domain.Pushback{Speed: domain.PushbackSpeed}
	p.Start(0, 2)

	if !StepPushback(g, tile, b, p) {
		t.Fatal("active pushback not stepped")
	}
	if b.X != 3*tile+5 {
		t.Errorf("X = %d, want %d", b.X, 3*tile+5)
	}
	StepPushback(g, tile, b, p)
	if p.Active {
		t.Error("pushback still active after its duration")
	}
	if StepPushback(g, tile, b, p) {
		t.Error("inactive pushback reported as stepped")
	}
}

func TestHasLineOfSight(t *testing.T) {
	// . . . . .
	// . . # . .
	// . # # # .
	// . . # . .
	// . . . . .
	g := domain.NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			g.Set(c, r, domain.Floor)
		}
	}
	g.Set(2, 1, domain.Wall)
	g.Set(1, 2, domain.Wall)
	g.Set(2, 2, domain.Wall)
	g.Set(3, 2, domain.Wall)
	g.Set(2, 3, domain.Wall)

	tests := []struct {
		name string
		p1   domain.Position
		p2   domain.Position
		want bool
	}{
		{"Clear horizontal", domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 0}, true},
		{"Blocked horizontal", domain.Position{X: 0, Y: 2}, domain.Position{X: 4, Y: 2}, false},
		{"Clear diagonal", domain.Position{X: 0, Y: 0}, domain.Position{X: 1, Y: 1}, true},
		{"Blocked diagonal", domain.Position{X: 0, Y: 0}, domain.Position{X: 4, Y: 4}, false},
		{"Adjacent wall", domain.Position{X: 2, Y: 1}, domain.Position{X: 2, Y: 2}, true},
		{"Behind wall", domain.Position{X: 2, Y: 1}, domain.Position{X: 2, Y: 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasLineOfSight(g, tt.p1, tt.p2); got != tt.want {
				t.Errorf("HasLineOfSight(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

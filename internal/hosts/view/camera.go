package view

import "dungeon-arena/pkg/api"

// CellRange - видимые камерой клетки [c0,c1)x[r0,r1), обрезанные по сетке.
func CellRange(cam api.CameraView, g *api.GridView) (c0, r0, c1, r1 int) {
	if g == nil || g.Tile <= 0 {
		return 0, 0, 0, 0
	}
	c0 = clamp(floorDiv(cam.X, g.Tile), 0, g.Width)
	r0 = clamp(floorDiv(cam.Y, g.Tile), 0, g.Height)
	c1 = clamp(floorDiv(cam.X+cam.Width, g.Tile)+1, 0, g.Width)
	r1 = clamp(floorDiv(cam.Y+cam.Height, g.Tile)+1, 0, g.Height)
	return c0, r0, c1, r1
}

// floorDiv - деление с округлением вниз (камера бывает левее нуля).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

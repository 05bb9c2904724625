package domain

// --- ТРЕЙТЫ ---
// Конкретные сущности собираются из них композицией.

// Rect - прямоугольник в пикселях.
type Rect struct {
	X, Y, W, H int
}

// Intersects - строгое пересечение AABB (касание краями не считается).
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Body - позиция (левый верхний угол, пиксели) и квадратный размер.
type Body struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Size int `json:"size"`
}

// Bounds возвращает прямоугольник тела.
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}

// Center возвращает центр тела.
func (b *Body) Center() (int, int) {
	return b.X + b.Size/2, b.Y + b.Size/2
}

// Cell возвращает клетку, в которой лежит левый верхний угол.
func (b *Body) Cell(tile int) Position {
	return Position{X: b.X / tile, Y: b.Y / tile}
}

// Mover - скорость в пикселях за тик.
type Mover struct {
	Speed int `json:"speed"`
}

// Health - очки здоровья.
type Health struct {
	HP    int  `json:"hp"`
	MaxHP int  `json:"maxHp"`
	Alive bool `json:"alive"`
}

// NewHealth создает полное здоровье.
func NewHealth(max int) Health {
	return Health{HP: max, MaxHP: max, Alive: true}
}

// Pushback - кинематическое отбрасывание вдоль фиксированного угла.
// Пока активно, обычная логика владельца не выполняется.
type Pushback struct {
	Active    bool    `json:"active"`
	Direction float64 `json:"direction"`
	Remaining int     `json:"remaining"`
	Speed     int     `json:"-"`
}

// Start запускает отбрасывание, перезаписывая текущее.
func (p *Pushback) Start(direction float64, ticks int) {
	p.Active = true
	p.Direction = direction
	p.Remaining = ticks
	if p.Speed == 0 {
		p.Speed = PushbackSpeed
	}
}

// Lifetime - счётчик жизни эфемерного эффекта.
type Lifetime struct {
	Remaining int `json:"remaining"`
	Max       int `json:"max"`
}

// NewLifetime создает счётчик на n тиков.
func NewLifetime(n int) Lifetime {
	return Lifetime{Remaining: n, Max: n}
}

// Age уменьшает счётчик. Возвращает false, когда жизнь кончилась.
func (l *Lifetime) Age() bool {
	l.Remaining--
	return l.Remaining > 0
}

// Active - true, пока счётчик не дошёл до нуля.
func (l *Lifetime) Active() bool {
	return l.Remaining > 0
}

// Fraction - доля оставшейся жизни (для прозрачности в рендере).
func (l *Lifetime) Fraction() float64 {
	if l.Max <= 0 {
		return 0
	}
	f := float64(l.Remaining) / float64(l.Max)
	if f < 0 {
		return 0
	}
	return f
}

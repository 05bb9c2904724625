package api

// --- СЕРВЕР -> КЛИЕНТ ---

// Snapshot это корневой объект, который движок отдаёт рендерерам.
// Он представляет собой копию мира на конец тика и ни на что в мире не ссылается,
// поэтому его можно передавать между горутинами.
type Snapshot struct {
	// Type тип сообщения: "SNAPSHOT" или "INIT" (первый кадр, всегда с сеткой).
	Type string `json:"type"`

	// RunID идентификатор забега (uuid).
	RunID string `json:"runId"`

	// Tick номер тика симуляции внутри забега.
	Tick uint64 `json:"tick"`

	// Over true, когда игрок погиб и забег ждёт рестарта.
	Over bool `json:"over"`

	// GridVersion растёт при каждой генерации сетки. Если он сменился,
	// а Grid пуст, клиент должен запросить RESYNC.
	GridVersion int `json:"gridVersion"`

	// Grid сетка этапа. Присылается только по запросу или при смене этапа,
	// клиент держит последнюю полученную.
	Grid *GridView `json:"grid,omitempty"`

	// Camera окно просмотра в пикселях, центрированное на игроке.
	Camera CameraView `json:"camera"`

	Player        PlayerView         `json:"player"`
	Enemies       []EnemyView        `json:"enemies"`
	Projectiles   []ProjectileView   `json:"projectiles"`
	Loot          []LootView         `json:"loot"`
	Spawners      []SpawnerView      `json:"spawners"`
	DamageNumbers []DamageNumberView `json:"damageNumbers,omitempty"`
	Texts         []TextView         `json:"texts,omitempty"`

	Progress ProgressView `json:"progress"`

	// Cues подсказки (тряска, звук), накопленные с прошлого снапшота.
	Cues []CueView `json:"cues,omitempty"`
}

// GridView - сетка этапа. Rows[r][c] == '#' - стена, '.' - пол.
type GridView struct {
	Width   int      `json:"w"`
	Height  int      `json:"h"`
	Tile    int      `json:"tile"`
	Stage   int      `json:"stage"`
	Version int      `json:"version"`
	Rows    []string `json:"rows"`
}

// IsWall - true для стены и для клеток вне сетки.
func (g *GridView) IsWall(col, row int) bool {
	if col < 0 || row < 0 || row >= len(g.Rows) || col >= len(g.Rows[row]) {
		return true
	}
	return g.Rows[row][col] == '#'
}

// CameraView - левый верхний угол и размер окна просмотра.
type CameraView struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PlayerView это DTO игрока.
type PlayerView struct {
	ID    uint64 `json:"id"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Size  int    `json:"size"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
	Alive bool   `json:"alive"`

	Damage     int `json:"damage"`
	Armor      int `json:"armor"`
	Range      int `json:"range"`
	BaseRange  int `json:"baseRange"`
	RangeTimer int `json:"rangeTimer,omitempty"`

	Attacking    bool   `json:"attacking"`
	AttackArea   Rect   `json:"attackArea"`
	Dashing      bool   `json:"dashing"`
	DashCooldown int    `json:"dashCooldown"`
	Invincible   int    `json:"invincible"`
	Pushed       bool   `json:"pushed"`
	Facing       string `json:"facing"`
}

// Rect - прямоугольник в пикселях.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// EnemyView это DTO врага. Boss заполнен только у босса.
type EnemyView struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"` // MELEE, RANGED, BOSS
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Size      int       `json:"size"`
	HP        int       `json:"hp"`
	MaxHP     int       `json:"maxHp"`
	Attacking bool      `json:"attacking"`
	Pushed    bool      `json:"pushed"`
	ShotMode  string    `json:"shotMode,omitempty"`
	Boss      *BossView `json:"boss,omitempty"`
}

// BossView - состояние автомата босса (для телеграфов на клиенте).
type BossView struct {
	State       string `json:"state"`
	ActionTimer int    `json:"actionTimer"`
	PhaseTimer  int    `json:"phaseTimer"`
	Airborne    bool   `json:"airborne"`
	TargetX     int    `json:"targetX,omitempty"`
	TargetY     int    `json:"targetY,omitempty"`
}

// ProjectileView это DTO снаряда.
type ProjectileView struct {
	ID   uint64  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size int     `json:"size"`
}

// LootView это DTO ящика с лутом.
type LootView struct {
	ID     uint64 `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Size   int    `json:"size"`
	Kind   string `json:"kind"`
	Opened bool   `json:"opened"`
}

// SpawnerView это DTO спавнера.
type SpawnerView struct {
	ID     uint64 `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Size   int    `json:"size"`
	Active bool   `json:"active"`
}

// DamageNumberView - всплывающая цифра урона. Alpha убывает от 1 к 0.
type DamageNumberView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value int     `json:"value"`
	Alpha float64 `json:"alpha"`
}

// TextView - всплывающая надпись. Color в виде "#RRGGBB".
type TextView struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Alpha float64 `json:"alpha"`
}

// ProgressView - состояние прогрессии забега.
type ProgressView struct {
	Score         int  `json:"score"`
	TotalScore    int  `json:"totalScore"`
	Stage         int  `json:"stage"`
	Difficulty    int  `json:"difficulty"`
	NextBossScore int  `json:"nextBossScore"`
	BossActive    bool `json:"bossActive"`

	BossPending         bool `json:"bossPending"`
	BossCountdown       int  `json:"bossCountdown,omitempty"`
	TransitionPending   bool `json:"transitionPending"`
	TransitionCountdown int  `json:"transitionCountdown,omitempty"`

	// BannerTicks - сколько ещё показывать баннер "STAGE N".
	BannerTicks int `json:"bannerTicks,omitempty"`
}

// CueView - подсказка хосту: тряска экрана или звук.
type CueView struct {
	Kind      string `json:"kind"`
	Magnitude int    `json:"magnitude,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// Boss возвращает босса из снапшота или nil. Клиенты читают полосу
// здоровья босса только через эту проверку.
func (s *Snapshot) Boss() *EnemyView {
	if !s.Progress.BossActive {
		return nil
	}
	for i := range s.Enemies {
		if s.Enemies[i].Boss != nil {
			return &s.Enemies[i]
		}
	}
	return nil
}

// --- КЛИЕНТ -> СЕРВЕР ---

// Действия зрителя. Игровой ввод зритель не отправляет.
const (
	ActionResync = "RESYNC" // прислать сетку в следующем кадре
	ActionPing   = "PING"
)

// ClientCommand это сообщение зрителя серверу.
type ClientCommand struct {
	Action string `json:"action"`
}

// StreamOptions - параметры подписки, разбираются из query-строки /ws.
type StreamOptions struct {
	// Format кодек кадров: "json" (по умолчанию) или "msgpack".
	Format string `json:"format"`
	// Every - слать каждый N-й снапшот (1 - все).
	Every int `json:"every"`
}

// Форматы кадров.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

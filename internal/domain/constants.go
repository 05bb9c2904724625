package domain

// Геометрия мира (пиксели и клетки)
const (
	TileSize        = 48
	TicksPerSecond  = 60
	ViewportCols    = 16
	ViewportRows    = 12
	DefaultGridSize = 100
	DefaultWalkSize = 1500

	// OffscreenBufferTiles - запас за краем экрана (в клетках), после которого
	// открытый ящик можно убрать.
	OffscreenBufferTiles = 2
)

// Игрок
const (
	PlayerSpeed          = 4
	PlayerMaxHP          = 100
	PlayerDamage         = 5
	PlayerArmor          = 0
	PlayerBaseRangeTiles = 2
	PlayerAttackDuration = 10

	DashSpeed    = 12
	DashDuration = 10
	DashCooldown = 60
)

// Отбрасывание
const (
	PushbackSpeed    = 5
	HitPushbackTicks = 10
	JumpPushbackTick = 30
	DashPushbackTick = 20
)

// Враги
const (
	EnemySpeed = 2
	BossSpeed  = 3

	EnemyBaseHP     = 10
	EnemyBaseDamage = 2
	BossBaseHP      = 200
	BossBaseDamage  = 10

	HPPerDifficulty     = 0.5
	DamagePerDifficulty = 0.1

	MeleeCooldown     = 60
	RangedCooldown    = 40
	AttackVisualTicks = 15

	RangedAdvanceDistance = 250
	RangedRetreatDistance = 150
	RangedFireDistance    = 400
	RangedSpreadAngle     = 0.3
	RangedShotsPerMode    = 6
)

// Снаряды
const (
	ProjectileSpeed = 6
	ProjectileSize  = 10
)

// Тайминги босса (тики внутри действия)
const (
	BossIdleTicks = 60

	JumpLiftTick  = 60
	JumpLandTick  = 120
	JumpEndTick   = 140
	JumpAOETiles  = 3
	JumpDamageMul = 2

	RapidFireStart  = 60
	RapidFireEnd    = 180
	RapidFireEvery  = 10
	RapidFireJitter = 0.25

	Shot360FireTick = 60
	Shot360EndTick  = 80
	Shot360Count    = 12

	DashAimTick   = 40
	DashEndTick   = 60
	BossDashSpeed = 15
)

// Прогрессия
const (
	ScorePerHit        = 10
	ScorePerKill       = 50
	BossKillBonus      = 1000
	BossDefeatBonusPct = 50
	DifficultyStep     = 1000
	FirstBossThreshold = 5000
	BossThresholdStep  = 1000

	BossSpawnDelay       = 300
	StageTransitionDelay = 150
	StageInvincibility   = 1800
	StageBannerTicks     = 180

	// BossPlacementWindow - смещение босса от игрока в клетках: [-5, +4].
	BossPlacementWindow = 10
)

// Население этапа
const (
	SpawnersPerStage = 5
	LootPerStage     = 10
	SpawnInterval    = 300
	EnemyCap         = 20
)

// Лут
const (
	WeaponDamageBonus = 2
	ArmorBonus        = 1
	PotionHeal        = 20
	RangeBoostMin     = 0.5
	RangeBoostSpread  = 2.0
	RangeTimerBase    = 300
	RangeTimerJitter  = 121
)

// Эффекты
const (
	DamageNumberLife     = 60
	DamageNumberJitter   = 40
	DamageNumberSpeed    = 6.0
	DamageNumberFriction = 0.98
	FloatingTextLife     = 120

	HurtShakeMagnitude = 10
	HurtShakeDuration  = 20
	LandShakeMagnitude = 20
	LandShakeDuration  = 20
)

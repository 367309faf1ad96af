// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06 // секунд; защита от скачков после потери фокуса

	// Нормализация времени: ядро считает в "кадрах" (1.0 = один кадр 60 Гц)
	// и переводит их в миллисекунды внутри таймеров.
	NominalFrameRate = 60.0
	FrameTimeMs      = 1000.0 / NominalFrameRate

	// Мир и широкая фаза.
	WorldWidth      = float64(ScreenWidth)
	WorldHeight     = float64(ScreenHeight)
	TileSize        = 40.0
	SpatialCellSize = 64.0
	PathLanes       = 4

	// Волны.
	InterWaveDelayMs     = 5000.0
	CountdownTickMs      = 1000.0
	MinSpawnDelayMs      = 200.0
	MinStartDelayMs      = 1000.0
	EndlessCycleScale    = 0.5  // прирост за полный цикл волн
	EndlessPositionScale = 0.05 // прирост за позицию внутри цикла
	EndlessDelayStepMs   = 50.0

	// База игрока.
	BaseHealth     = 100
	DamagePerEnemy = 10

	// Башни и снаряды.
	TowerRange          = 180.0
	TowerFireRate       = 1.2 // выстрелов в секунду
	TowerDamage         = 40.0
	TowerSize           = 26.0
	ProjectileSpeed     = 420.0 // пикселей в секунду
	ProjectileRadius    = 5.0
	ProjectileHitDist   = 8.0 // радиус засчитывания прибытия в точку
	ProjectilePoolSize  = 256
	ProjectilePrealloc  = 64
	SplashRadius        = 60.0
	EnemyBaseRadius     = 10.0
	MaxTowers           = 24
	StartingGold        = 100
	TowerCost           = 25

	// UI.
	ClickDebounceTime  = 100
	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	BaseColor       = color.RGBA{50, 205, 50, 255}
	TowerColor      = color.RGBA{70, 130, 180, 255}
	TowerStroke     = color.RGBA{240, 240, 240, 255}
	ProjectileColor = color.RGBA{255, 255, 160, 255}
	SplashColor     = color.RGBA{255, 120, 40, 180}
	HealthBarBack   = color.RGBA{60, 20, 20, 255}
	HealthBarFront  = color.RGBA{60, 200, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	CountdownColor  = color.RGBA{220, 200, 80, 255}
	PausedColor     = color.RGBA{220, 60, 60, 220}

	SpeedButtonColors = []color.RGBA{
		{100, 200, 100, 255}, // x1
		{220, 200, 80, 255},  // x2
		{220, 120, 60, 255},  // x4
	}
)

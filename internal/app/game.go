// internal/app/game.go
package app

import (
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/spatial"
	"go-wave-defense/pkg/tilemap"
)

// Game holds the main game state and logic.
type Game struct {
	TileMap           *tilemap.TileMap
	Grid              *spatial.Grid[types.EntityID]
	EventDispatcher   *event.Dispatcher
	WaveManager       *system.WaveManager
	CombatSystem      *system.CombatSystem
	TowerSystem       *system.TowerSystem
	EnemyManager      *EnemyManager
	ProjectileManager *ProjectileManager
	Rng               *utils.PRNGService

	BaseHealth      int
	Gold            int
	SpeedMultiplier float64

	towers     []*component.Tower
	towerIDGen *types.IDGenerator
	gameTime   float64
	gameOver   bool
}

// NewGame initializes a new game instance.
func NewGame(tileMap *tilemap.TileMap, seed int64) *Game {
	if tileMap == nil {
		panic("tileMap cannot be nil")
	}
	if tileMap.PathCount() == 0 {
		tileMap.AddPath(0, tileMap.BuildSerpentinePath(config.PathLanes))
	}

	grid := spatial.NewGrid[types.EntityID](tileMap.Width, tileMap.Height, config.SpatialCellSize)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	projectiles := NewProjectileManager()
	combat := system.NewCombatSystem(dispatcher, projectiles)
	enemies := NewEnemyManager(grid, tileMap, combat)
	for _, def := range defs.EnemyLibrary {
		enemies.RegisterEnemyType(def)
	}

	waves := system.NewWaveManager(dispatcher, rng)
	waves.SetEnemyManager(enemies)

	g := &Game{
		TileMap:           tileMap,
		Grid:              grid,
		EventDispatcher:   dispatcher,
		WaveManager:       waves,
		CombatSystem:      combat,
		TowerSystem:       system.NewTowerSystem(grid, projectiles),
		EnemyManager:      enemies,
		ProjectileManager: projectiles,
		Rng:               rng,
		BaseHealth:        config.BaseHealth,
		Gold:              config.StartingGold,
		SpeedMultiplier:   1.0,
		towerIDGen:        types.NewIDGenerator(),
	}

	enemies.Events().Subscribe(event.EnemyReachedEnd, func(event.Event) {
		g.BaseHealth -= config.DamagePerEnemy
		if g.BaseHealth <= 0 {
			g.BaseHealth = 0
			g.gameOver = true
			g.WaveManager.Stop()
			log.Printf("Game: база разрушена, игра окончена")
		}
	})
	enemies.Events().Subscribe(event.EnemyKilled, func(e event.Event) {
		if payload, ok := e.Data.(event.EnemyKilledPayload); ok {
			g.Gold += payload.Reward
		}
	})

	return g
}

// SetDifficultyPreset применяет уровень сложности и к волнам (количество),
// и к врагам (здоровье/скорость/награда в момент спавна).
func (g *Game) SetDifficultyPreset(preset defs.DifficultyPreset) {
	scaling := defs.ResolveDifficulty(preset)
	g.WaveManager.SetDifficulty(scaling)
	g.EnemyManager.SetDifficulty(scaling)
}

// StartWaves запускает последовательность волн.
func (g *Game) StartWaves() {
	g.WaveManager.Start()
}

// PlaceTower ставит атакующую башню, если хватает золота и лимита.
func (g *Game) PlaceTower(x, y float64) bool {
	if g.gameOver || len(g.towers) >= config.MaxTowers || g.Gold < config.TowerCost {
		return false
	}
	g.Gold -= config.TowerCost
	g.towers = append(g.towers, &component.Tower{
		ID:         g.towerIDGen.Next(),
		X:          x,
		Y:          y,
		Range:      config.TowerRange,
		FireRate:   config.TowerFireRate,
		Damage:     config.TowerDamage,
		DamageType: defs.DamagePhysical,
		Pierce:     1,
	})
	return true
}

// PlaceSplashTower ставит башню с area-снарядами (pierce 0 — сентинел).
func (g *Game) PlaceSplashTower(x, y float64) bool {
	if g.gameOver || len(g.towers) >= config.MaxTowers || g.Gold < config.TowerCost*2 {
		return false
	}
	g.Gold -= config.TowerCost * 2
	g.towers = append(g.towers, &component.Tower{
		ID:           g.towerIDGen.Next(),
		X:            x,
		Y:            y,
		Range:        config.TowerRange,
		FireRate:     config.TowerFireRate * 0.6,
		Damage:       config.TowerDamage * 1.5,
		DamageType:   defs.DamageMagical,
		Pierce:       0,
		SplashRadius: config.SplashRadius,
	})
	return true
}

// CycleSpeed переключает множитель скорости x1 -> x2 -> x4 -> x1.
func (g *Game) CycleSpeed() {
	switch g.SpeedMultiplier {
	case 1.0:
		g.SpeedMultiplier = 2.0
	case 2.0:
		g.SpeedMultiplier = 4.0
	default:
		g.SpeedMultiplier = 1.0
	}
}

// Update продвигает все системы на один кадр. deltaTime — в секундах;
// ядро волн и боя получает нормализованное время (1.0 = кадр 60 Гц).
func (g *Game) Update(deltaTime float64) {
	if g.gameOver {
		return
	}
	deltaTime *= g.SpeedMultiplier
	g.gameTime += deltaTime
	normalized := deltaTime * config.NominalFrameRate

	g.WaveManager.Update(normalized)
	g.EnemyManager.Update(deltaTime)
	g.TowerSystem.Update(deltaTime, g.towers, g.EnemyManager.Enemies())
	g.ProjectileManager.Update(deltaTime)
	g.CombatSystem.Update(normalized)
}

// Towers отдаёт башни для рендера.
func (g *Game) Towers() []*component.Tower {
	return g.towers
}

// GameTime возвращает прошедшее игровое время в секундах.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// IsGameOver сообщает, разрушена ли база.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

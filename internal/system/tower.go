// internal/system/tower.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
)

// ProjectileLauncher — то немногое, что системе башен нужно от менеджера
// снарядов. Помогает избежать циклических зависимостей.
type ProjectileLauncher interface {
	Fire(x, y float64, target interfaces.Target, info defs.DamageInfo, pierce int, splashRadius float64)
}

// TowerSystem управляет стрельбой башен: цель добирается из сетки широкой
// фазы квадратным запросом по радиусу, затем уточняется точной проверкой
// расстояния — запрос по квадрату даёт лишних кандидатов по углам.
type TowerSystem struct {
	grid     *spatial.Grid[types.EntityID]
	launcher ProjectileLauncher
}

func NewTowerSystem(grid *spatial.Grid[types.EntityID], launcher ProjectileLauncher) *TowerSystem {
	return &TowerSystem{grid: grid, launcher: launcher}
}

// Update обновляет перезарядку и стреляет по ближайшим целям.
// deltaTime — в секундах.
func (s *TowerSystem) Update(deltaTime float64, towers []*component.Tower, enemies map[types.EntityID]*component.Enemy) {
	for _, tower := range towers {
		if tower.FireCooldown > 0 {
			tower.FireCooldown -= deltaTime
			continue
		}

		target := s.findNearestEnemyInRange(tower, enemies)
		if target == nil {
			continue
		}

		info := defs.DamageInfo{
			Amount:   tower.Damage,
			Type:     tower.DamageType,
			SourceID: tower.ID,
		}
		s.launcher.Fire(tower.X, tower.Y, target, info, tower.Pierce, tower.SplashRadius)
		tower.FireCooldown = 1.0 / tower.FireRate
	}
}

func (s *TowerSystem) findNearestEnemyInRange(tower *component.Tower, enemies map[types.EntityID]*component.Enemy) *component.Enemy {
	var nearest *component.Enemy
	minDist := math.MaxFloat64

	for _, id := range s.grid.QueryRadius(tower.X, tower.Y, tower.Range) {
		enemy, ok := enemies[id]
		if !ok || !enemy.IsAlive() {
			continue
		}
		dist := math.Hypot(enemy.X-tower.X, enemy.Y-tower.Y)
		if dist <= tower.Range && dist < minDist {
			minDist = dist
			nearest = enemy
		}
	}
	return nearest
}

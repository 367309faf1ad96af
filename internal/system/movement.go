// internal/system/movement.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
)

// MovementSystem ведёт врагов по ломаной маршрута и поддерживает их
// индекс в сетке широкой фазы. Дошедший до конца маршрута враг помечается
// ReachedEnd; снятие с карты — забота менеджера врагов.
type MovementSystem struct {
	grid *spatial.Grid[types.EntityID]
}

func NewMovementSystem(grid *spatial.Grid[types.EntityID]) *MovementSystem {
	return &MovementSystem{grid: grid}
}

// Update продвигает всех живых врагов. deltaTime — в секундах.
func (s *MovementSystem) Update(deltaTime float64, enemies map[types.EntityID]*component.Enemy) {
	for id, enemy := range enemies {
		if !enemy.IsAlive() {
			continue
		}

		remaining := enemy.Speed * deltaTime
		for remaining > 0 {
			if enemy.WaypointIndex >= len(enemy.Path) {
				enemy.ReachedEnd = true
				break
			}
			target := enemy.Path[enemy.WaypointIndex]
			dx := target.X - enemy.X
			dy := target.Y - enemy.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist <= remaining {
				enemy.X = target.X
				enemy.Y = target.Y
				enemy.WaypointIndex++
				remaining -= dist
				continue
			}
			enemy.X += dx / dist * remaining
			enemy.Y += dy / dist * remaining
			remaining = 0
		}

		s.grid.Update(id, enemy.Bounds())
	}
}

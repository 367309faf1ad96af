// internal/app/enemy_manager.go
package app

import (
	"fmt"
	"log"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
	"go-wave-defense/pkg/tilemap"
)

// EnemyManager владеет жизненным циклом врагов: спавнит по команде
// менеджера волн, ведёт по маршруту, держит их в сетке широкой фазы и
// публикует kill/leak уведомления в собственный диспетчер.
type EnemyManager struct {
	dispatcher *event.Dispatcher
	idGen      *types.IDGenerator
	grid       *spatial.Grid[types.EntityID]
	tileMap    *tilemap.TileMap
	combat     *system.CombatSystem
	movement   *system.MovementSystem

	scaling   defs.DifficultyScaling
	factories map[string]defs.EnemyDefinition
	enemies   map[types.EntityID]*component.Enemy
}

// NewEnemyManager создаёт менеджер со своим диспетчером и генератором
// идентификаторов.
func NewEnemyManager(grid *spatial.Grid[types.EntityID], tileMap *tilemap.TileMap, combat *system.CombatSystem) *EnemyManager {
	return &EnemyManager{
		dispatcher: event.NewDispatcher(),
		idGen:      types.NewIDGenerator(),
		grid:       grid,
		tileMap:    tileMap,
		combat:     combat,
		movement:   system.NewMovementSystem(grid),
		scaling:    defs.ResolveDifficulty(defs.DifficultyNormal),
		factories:  make(map[string]defs.EnemyDefinition),
		enemies:    make(map[types.EntityID]*component.Enemy),
	}
}

// Events возвращает диспетчер kill/leak уведомлений.
func (m *EnemyManager) Events() *event.Dispatcher {
	return m.dispatcher
}

// RegisterEnemyType регистрирует фабрику для типа врага.
func (m *EnemyManager) RegisterEnemyType(def defs.EnemyDefinition) {
	m.factories[def.ID] = def
}

// SetDifficulty задаёт множители, применяемые к врагам в момент спавна.
func (m *EnemyManager) SetDifficulty(scaling defs.DifficultyScaling) {
	m.scaling = scaling
}

// SpawnEnemy выпускает врага на маршрут. Отсутствующая фабрика — баг
// конфигурации разработчика, а не условие рантайма, поэтому паника.
func (m *EnemyManager) SpawnEnemy(enemyType string, pathID int) types.EntityID {
	def, ok := m.factories[enemyType]
	if !ok {
		panic(fmt.Sprintf("EnemyManager: нет фабрики для типа врага %q", enemyType))
	}

	path, ok := m.tileMap.Path(pathID)
	if !ok {
		log.Printf("EnemyManager: маршрут %d не найден, используется маршрут 0", pathID)
		path, _ = m.tileMap.Path(0)
	}

	id := m.idGen.Next()
	enemy := component.NewEnemy(id, def, m.scaling, path, m.onEnemyDeath)
	m.enemies[id] = enemy
	m.grid.Insert(id, enemy.Bounds())
	if m.combat != nil {
		m.combat.RegisterTarget(enemy)
	}
	return id
}

// onEnemyDeath вызывается боевой системой ровно один раз на смерть.
func (m *EnemyManager) onEnemyDeath(e *component.Enemy) {
	m.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledPayload{
		EnemyID:   e.ID(),
		EnemyType: e.DefID,
		Reward:    e.Reward,
	}})
}

// Update двигает врагов и снимает с карты погибших и просочившихся.
// deltaTime — в секундах.
func (m *EnemyManager) Update(deltaTime float64) {
	m.movement.Update(deltaTime, m.enemies)

	for id, enemy := range m.enemies {
		if enemy.ReachedEnd {
			m.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: event.EnemyReachedEndPayload{
				EnemyID:   id,
				EnemyType: enemy.DefID,
			}})
			m.despawn(id)
			continue
		}
		if enemy.Health() <= 0 {
			m.despawn(id)
		}
	}
}

func (m *EnemyManager) despawn(id types.EntityID) {
	m.grid.Remove(id)
	if m.combat != nil {
		m.combat.UnregisterTarget(id)
	}
	delete(m.enemies, id)
}

// ActiveEnemyCount — сколько врагов сейчас на карте.
func (m *EnemyManager) ActiveEnemyCount() int {
	return len(m.enemies)
}

// Enemies отдаёт живую коллекцию врагов (для систем башен и рендера).
func (m *EnemyManager) Enemies() map[types.EntityID]*component.Enemy {
	return m.enemies
}

// Clear снимает всех врагов с карты без событий (рестарт игры).
func (m *EnemyManager) Clear() {
	for id := range m.enemies {
		m.despawn(id)
	}
}

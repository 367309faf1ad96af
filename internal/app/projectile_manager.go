// internal/app/projectile_manager.go
package app

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/pool"
)

// ProjectileManager владеет жизненным циклом снарядов поверх пула
// переиспользуемых экземпляров: без аллокаций на выстрел в горячем цикле.
// Боевая система видит снаряды только через GetAll и флаг активности.
type ProjectileManager struct {
	pool   *pool.Pool[*component.Projectile]
	idGen  *types.IDGenerator
	active []*component.Projectile
	view   []interfaces.Projectile
}

func NewProjectileManager() *ProjectileManager {
	return &ProjectileManager{
		pool: pool.New(func() *component.Projectile {
			return &component.Projectile{}
		}, config.ProjectilePrealloc, config.ProjectilePoolSize),
		idGen: types.NewIDGenerator(),
	}
}

// Fire выпускает снаряд из точки (x, y) в текущую позицию цели.
// pierce == 0 — сентинел area-снаряда: урон по площади splashRadius
// вокруг точки прибытия вместо прямых попаданий.
func (m *ProjectileManager) Fire(x, y float64, target interfaces.Target, info defs.DamageInfo, pierce int, splashRadius float64) {
	tx, ty := target.Position()
	p := m.pool.Acquire()
	p.Init(m.idGen.Next(), x, y, target.ID(), tx, ty, info, pierce, splashRadius, config.ProjectileSpeed)
	m.active = append(m.active, p)
}

// Update продвигает снаряды и возвращает отработавшие в пул.
// deltaTime — в секундах.
func (m *ProjectileManager) Update(deltaTime float64) {
	alive := m.active[:0]
	for _, p := range m.active {
		if p.IsActive() {
			p.Advance(deltaTime)
			// Обычный снаряд, долетевший до точки без столкновения,
			// промахнулся: цель успела уйти. Area-снаряд в точке
			// прибытия разрешает боевая система.
			if p.HasReachedTarget() && !p.HasAreaDamage() {
				p.Deactivate()
			}
		}
		if p.IsActive() {
			alive = append(alive, p)
			continue
		}
		m.pool.Release(p)
	}
	m.active = alive
}

// GetAll возвращает живую коллекцию снарядов для боевой системы.
func (m *ProjectileManager) GetAll() []interfaces.Projectile {
	m.view = m.view[:0]
	for _, p := range m.active {
		m.view = append(m.view, p)
	}
	return m.view
}

// Projectiles отдаёт активные снаряды для рендера.
func (m *ProjectileManager) Projectiles() []*component.Projectile {
	return m.active
}

// ActiveCount возвращает количество летящих снарядов.
func (m *ProjectileManager) ActiveCount() int {
	return len(m.active)
}

// Clear возвращает все снаряды в пул (рестарт игры).
func (m *ProjectileManager) Clear() {
	m.pool.ReleaseAll()
	m.active = m.active[:0]
}

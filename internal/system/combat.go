// internal/system/combat.go
package system

import (
	"math"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/types"
)

// CombatSystem разрешает столкновения снарядов с целями и применяет урон.
// Живая коллекция снарядов опрашивается каждый кадр у внешнего менеджера;
// цели регистрируются по идентификатору и принадлежат внешним системам.
// Независим от менеджера волн: общего изменяемого состояния нет.
type CombatSystem struct {
	dispatcher  *event.Dispatcher
	projectiles interfaces.ProjectileSource
	targets     map[types.EntityID]interfaces.Target
}

// NewCombatSystem создаёт боевую систему поверх источника снарядов.
func NewCombatSystem(dispatcher *event.Dispatcher, projectiles interfaces.ProjectileSource) *CombatSystem {
	return &CombatSystem{
		dispatcher:  dispatcher,
		projectiles: projectiles,
		targets:     make(map[types.EntityID]interfaces.Target),
	}
}

// On подписывает обработчик на боевые события.
func (s *CombatSystem) On(eventType event.EventType, handler event.Handler) event.Subscription {
	return s.dispatcher.Subscribe(eventType, handler)
}

// Off отписывает обработчик по дескриптору.
func (s *CombatSystem) Off(sub event.Subscription) {
	s.dispatcher.Unsubscribe(sub)
}

// RegisterTarget включает цель в разрешение урона.
func (s *CombatSystem) RegisterTarget(t interfaces.Target) {
	s.targets[t.ID()] = t
}

// UnregisterTarget исключает цель из разрешения урона.
func (s *CombatSystem) UnregisterTarget(id types.EntityID) {
	delete(s.targets, id)
}

// TargetCount возвращает количество зарегистрированных целей.
func (s *CombatSystem) TargetCount() int {
	return len(s.targets)
}

// Update разрешает все столкновения за кадр. Area-снаряд, достигший
// точки прицеливания, разрешается одним событием по площади и в прямых
// попаданиях не участвует; остальные проверяются AABB-пересечением
// против каждой живой цели, которую снаряд ещё может поразить.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, p := range s.projectiles.GetAll() {
		if !p.IsActive() {
			continue
		}

		if p.HasAreaDamage() {
			if p.HasReachedTarget() {
				s.resolveAreaDamage(p)
			}
			continue
		}

		bounds := p.Bounds()
		for id, t := range s.targets {
			if !t.IsAlive() || !p.CanHitTarget(id) {
				continue
			}
			if !bounds.Intersects(t.Bounds()) {
				continue
			}
			if !s.resolveDirectHit(p, t) {
				break // снаряд исчерпан, дальше цели не сканируем
			}
		}
	}
}

// resolveDirectHit применяет прямое попадание. Возвращает false, если
// снаряд больше не может лететь (пробитие исчерпано) — он деактивирован.
func (s *CombatSystem) resolveDirectHit(p interfaces.Projectile, t interfaces.Target) bool {
	info := p.DamageInfo()
	damage := CalculateDamage(info.Amount, t.Armor(), info.Type)

	s.applyDamage(t, damage, info)
	canContinue := p.RegisterHit(t.ID())

	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileHitPayload{
		ProjectileID: p.ID(),
		TargetID:     t.ID(),
		Damage:       damage,
	}})

	if !canContinue {
		p.Deactivate()
		return false
	}
	return true
}

// resolveAreaDamage применяет одноразовый урон по площади вокруг точки
// прицеливания. Затухание линейное: 100% в центре, 50% на краю радиуса,
// до формулы брони. Area-снаряд деактивируется всегда.
func (s *CombatSystem) resolveAreaDamage(p interfaces.Projectile) {
	cx, cy := p.Position()
	radius := p.AreaRadius()
	info := p.DamageInfo()
	totalDamage := 0

	for id, t := range s.targets {
		if !t.IsAlive() || !p.CanHitTarget(id) {
			continue
		}
		tx, ty := t.Position()
		dist := math.Hypot(tx-cx, ty-cy)
		if dist > radius {
			continue
		}

		falloff := 1 - (dist/radius)*0.5
		damage := CalculateDamage(info.Amount*falloff, t.Armor(), info.Type)
		p.RegisterHit(id)
		s.applyDamage(t, damage, info)
		totalDamage += damage
	}

	s.dispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileHitPayload{
		ProjectileID: p.ID(),
		Damage:       totalDamage,
		IsArea:       true,
	}})
	p.Deactivate()
}

// applyDamage доносит рассчитанный урон до цели и публикует события.
func (s *CombatSystem) applyDamage(t interfaces.Target, damage int, info defs.DamageInfo) {
	t.TakeDamage(defs.DamageInfo{
		Amount:     float64(damage),
		Type:       info.Type,
		SourceID:   info.SourceID,
		IsCritical: info.IsCritical,
	})

	s.dispatcher.Dispatch(event.Event{Type: event.TargetDamaged, Data: event.TargetDamagedPayload{
		TargetID:        t.ID(),
		Damage:          damage,
		RemainingHealth: t.Health(),
		DamageType:      string(info.Type),
	}})

	if t.Health() <= 0 {
		s.dispatcher.Dispatch(event.Event{Type: event.TargetKilled, Data: event.TargetKilledPayload{
			TargetID: t.ID(),
		}})
		t.OnDeath()
	}
}

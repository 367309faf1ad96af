// internal/interfaces/combat.go
package interfaces

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
)

// Target — способность получать урон. Владелец конкретной сущности —
// внешняя система; боевая система держит цель только по регистрации
// и никогда не управляет её временем жизни.
type Target interface {
	ID() types.EntityID
	Position() (x, y float64)
	Health() int
	MaxHealth() int
	Armor() float64
	IsAlive() bool
	Bounds() spatial.Rect
	TakeDamage(info defs.DamageInfo)
	// OnDeath вызывается один раз, когда здоровье дошло до нуля.
	OnDeath()
}

// Projectile — контракт летящего снаряда для боевой системы.
// Жизненным циклом владеет менеджер снарядов; боевая система только
// деактивирует снаряд, но не создаёт и не уничтожает его.
type Projectile interface {
	ID() types.EntityID
	Position() (x, y float64)
	Bounds() spatial.Rect
	IsActive() bool
	Deactivate()

	// CanHitTarget — ещё не поражал эту цель и запас пробития не исчерпан.
	CanHitTarget(id types.EntityID) bool
	// RegisterHit фиксирует попадание; true — снаряд продолжает полёт.
	RegisterHit(id types.EntityID) bool
	DamageInfo() defs.DamageInfo

	HasAreaDamage() bool
	AreaRadius() float64
	HasReachedTarget() bool
}

// ProjectileSource — живая коллекция снарядов, опрашиваемая каждый кадр.
type ProjectileSource interface {
	GetAll() []Projectile
}

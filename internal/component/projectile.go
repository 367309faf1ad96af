// internal/component/projectile.go
package component

import (
	"math"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
)

// Projectile представляет летящий снаряд. Экземпляры переиспользуются
// через pkg/pool, поэтому всё состояние сбрасывается в Reset.
// Реализует interfaces.Projectile и pool.Resettable.
type Projectile struct {
	X, Y             float64
	Speed            float64
	TargetID         types.EntityID
	TargetX, TargetY float64 // точка прицеливания, зафиксированная при выстреле
	Active           bool

	id         types.EntityID
	damage     defs.DamageInfo
	pierceLeft int
	splash     float64
	reached    bool
	hitTargets map[types.EntityID]struct{}
}

// Init заряжает переиспользуемый снаряд перед выстрелом.
// pierce — сколько целей снаряд может поразить; 0 — сентинел
// "снаряд area-типа", прямые попадания для него не разрешаются.
func (p *Projectile) Init(id types.EntityID, x, y float64, target types.EntityID, tx, ty float64,
	info defs.DamageInfo, pierce int, splashRadius float64, speed float64) {
	p.id = id
	p.X, p.Y = x, y
	p.TargetID = target
	p.TargetX, p.TargetY = tx, ty
	p.damage = info
	p.pierceLeft = pierce
	p.splash = splashRadius
	p.Speed = speed
	p.Active = true
	p.reached = false
	if p.hitTargets == nil {
		p.hitTargets = make(map[types.EntityID]struct{})
	}
}

// Advance продвигает снаряд к точке прицеливания.
func (p *Projectile) Advance(deltaTime float64) {
	if !p.Active || p.reached {
		return
	}
	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	step := p.Speed * deltaTime
	if dist <= step || dist < config.ProjectileHitDist {
		p.X, p.Y = p.TargetX, p.TargetY
		p.reached = true
		return
	}
	p.X += dx / dist * step
	p.Y += dy / dist * step
}

func (p *Projectile) ID() types.EntityID           { return p.id }
func (p *Projectile) Position() (float64, float64) { return p.X, p.Y }
func (p *Projectile) IsActive() bool               { return p.Active }
func (p *Projectile) Deactivate()                  { p.Active = false }
func (p *Projectile) DamageInfo() defs.DamageInfo  { return p.damage }
func (p *Projectile) HasAreaDamage() bool          { return p.splash > 0 }
func (p *Projectile) AreaRadius() float64          { return p.splash }
func (p *Projectile) HasReachedTarget() bool       { return p.reached }

func (p *Projectile) Bounds() spatial.Rect {
	return spatial.CenteredRect(p.X, p.Y, config.ProjectileRadius, config.ProjectileRadius)
}

// CanHitTarget — цель ещё не поражалась этим снарядом, и запас пробития
// не исчерпан. Для area-снарядов (pierce == 0) прямые попадания запрещены,
// но сам фильтр по уже поражённым целям действует и для area-разрешения.
func (p *Projectile) CanHitTarget(id types.EntityID) bool {
	if _, hit := p.hitTargets[id]; hit {
		return false
	}
	if p.splash > 0 {
		return true
	}
	return p.pierceLeft > 0
}

// RegisterHit фиксирует попадание. Возвращает true, если снаряд может
// продолжать полёт (остался запас пробития).
func (p *Projectile) RegisterHit(id types.EntityID) bool {
	p.hitTargets[id] = struct{}{}
	if p.splash > 0 {
		return false
	}
	p.pierceLeft--
	return p.pierceLeft > 0
}

// Reset возвращает снаряд в исходное состояние перед возвратом в пул.
func (p *Projectile) Reset() {
	p.id = 0
	p.X, p.Y = 0, 0
	p.TargetID = 0
	p.TargetX, p.TargetY = 0, 0
	p.Speed = 0
	p.Active = false
	p.reached = false
	p.pierceLeft = 0
	p.splash = 0
	p.damage = defs.DamageInfo{}
	clear(p.hitTargets)
}

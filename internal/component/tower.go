// internal/component/tower.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

// Tower — атакующая башня. Презентационная часть (панели постройки,
// подсветка) живёт снаружи; здесь только боевые параметры.
type Tower struct {
	ID           types.EntityID
	X, Y         float64
	Range        float64
	FireRate     float64 // выстрелов в секунду
	FireCooldown float64 // секунд до следующего выстрела
	Damage       float64
	DamageType   defs.DamageType
	Pierce       int     // количество целей на один снаряд; 0 — area-снаряд
	SplashRadius float64 // > 0 — снаряд наносит урон по площади
}

// internal/system/damage.go
package system

import (
	"math"

	"go-wave-defense/internal/defs"
)

// Коэффициент пробития брони магическим уроном.
const magicArmorPenetration = 0.7

// CalculateDamage рассчитывает итоговый урон с учётом брони цели.
//
//	TRUE     — игнорирует броню полностью.
//	PHYSICAL — reduction = armor / (armor + 100).
//	MAGICAL  — та же формула, но против armor * 0.7 (30% пробития).
//
// Результат всегда не меньше 1: броня не должна превращать врага
// в неуязвимого из-за числовых краевых случаев.
func CalculateDamage(amount float64, armor float64, damageType defs.DamageType) int {
	var damage float64
	switch damageType {
	case defs.DamageTrue:
		damage = amount
	case defs.DamageMagical:
		effectiveArmor := armor * magicArmorPenetration
		damage = amount * (1 - effectiveArmor/(effectiveArmor+100))
	default: // PHYSICAL
		damage = amount * (1 - armor/(armor+100))
	}

	result := int(math.Round(damage))
	if result < 1 {
		result = 1
	}
	return result
}

// internal/defs/types.go
package defs

import "go-wave-defense/internal/types"

// DamageType defines the type of damage dealt.
type DamageType string

const (
	DamagePhysical DamageType = "PHYSICAL"
	DamageMagical  DamageType = "MAGICAL"
	DamageTrue     DamageType = "TRUE"
)

// DamageInfo describes a single damage application.
type DamageInfo struct {
	Amount     float64
	Type       DamageType
	SourceID   types.EntityID // 0, если источник неизвестен
	IsCritical bool
}

// SpawnMode выбирает алгоритм построения очереди спавна волны.
type SpawnMode string

const (
	SpawnSequential  SpawnMode = "SEQUENTIAL"
	SpawnInterleaved SpawnMode = "INTERLEAVED"
	SpawnRandom      SpawnMode = "RANDOM"
)

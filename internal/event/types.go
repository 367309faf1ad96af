// internal/event/types.go
package event

import "go-wave-defense/internal/types"

const (
	// События жизненного цикла волн.
	CountdownStarted  EventType = "CountdownStarted"  // Начался отсчёт до волны
	CountdownTick     EventType = "CountdownTick"     // Тик отсчёта
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	EnemySpawned      EventType = "EnemySpawned"      // Враг выпущен на карту
	WaveCompleted     EventType = "WaveCompleted"     // Волна зачищена
	AllWavesCompleted EventType = "AllWavesCompleted" // Все волны пройдены

	// События боевой системы.
	ProjectileHit EventType = "ProjectileHit"
	TargetDamaged EventType = "TargetDamaged"
	TargetKilled  EventType = "TargetKilled"

	// События менеджера врагов.
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	EnemyReachedEnd EventType = "EnemyReachedEnd" // Враг дошёл до базы
)

// CountdownStartedPayload — длительность отсчёта перед волной.
type CountdownStartedPayload struct {
	WaveNumber int
	DurationMs float64
}

// CountdownTickPayload — очередной пройденный интервал отсчёта.
type CountdownTickPayload struct {
	WaveNumber  int
	Tick        int
	RemainingMs float64
}

// WaveStartedPayload — волна перешла в фазу спавна.
type WaveStartedPayload struct {
	WaveNumber   int
	TotalEnemies int
}

// EnemySpawnedPayload — один враг поставлен на карту.
type EnemySpawnedPayload struct {
	WaveNumber int
	EnemyType  string
	EnemyID    types.EntityID
	Spawned    int // сколько уже выпущено в этой волне
}

// WaveCompletedPayload — итоги зачищенной волны.
type WaveCompletedPayload struct {
	WaveNumber int
	Spawned    int
	Killed     int
	Leaked     int
}

// AllWavesCompletedPayload — итого по всей игре.
type AllWavesCompletedPayload struct {
	TotalWaves   int
	TotalSpawned int
	TotalKilled  int
	TotalLeaked  int
}

// ProjectileHitPayload — снаряд поразил цель (или точку для area-снаряда).
type ProjectileHitPayload struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID // 0 для area-попадания по точке
	Damage       int
	IsArea       bool
}

// TargetDamagedPayload — цель получила урон.
type TargetDamagedPayload struct {
	TargetID        types.EntityID
	Damage          int
	RemainingHealth int
	DamageType      string
}

// TargetKilledPayload — здоровье цели дошло до нуля.
type TargetKilledPayload struct {
	TargetID types.EntityID
}

// EnemyKilledPayload — враг уничтожен, начислена награда.
type EnemyKilledPayload struct {
	EnemyID   types.EntityID
	EnemyType string
	Reward    int
}

// EnemyReachedEndPayload — враг просочился до базы.
type EnemyReachedEndPayload struct {
	EnemyID   types.EntityID
	EnemyType string
}

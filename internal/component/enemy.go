// internal/component/enemy.go
package component

import (
	"image/color"
	"math"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
	"go-wave-defense/pkg/tilemap"
)

// Enemy — вражеская сущность, движущаяся по маршруту к базе.
// Реализует interfaces.Target для боевой системы.
type Enemy struct {
	DefID         string
	X, Y          float64
	Speed         float64 // пикселей в секунду
	Radius        float64
	Reward        int
	Color         color.RGBA
	Path          []tilemap.Point
	WaypointIndex int
	ReachedEnd    bool

	id        types.EntityID
	health    int
	maxHealth int
	armor     float64
	onDeath   func(*Enemy)
}

// NewEnemy создаёт врага из определения с учётом множителей сложности.
// onDeath вызывается ровно один раз при смерти (может быть nil).
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, scaling defs.DifficultyScaling, path []tilemap.Point, onDeath func(*Enemy)) *Enemy {
	health := int(math.Round(float64(def.Health) * scaling.HealthMultiplier))
	if health < 1 {
		health = 1
	}
	reward := int(math.Round(float64(def.Reward) * scaling.RewardMultiplier))

	e := &Enemy{
		DefID:  def.ID,
		Speed:  def.Speed * scaling.SpeedMultiplier,
		Radius: def.Visuals.RadiusFactor * 10.0,
		Reward: reward,
		Color: color.RGBA{
			R: def.Visuals.Color[0],
			G: def.Visuals.Color[1],
			B: def.Visuals.Color[2],
			A: def.Visuals.Color[3],
		},
		Path:      path,
		id:        id,
		health:    health,
		maxHealth: health,
		armor:     def.Armor,
		onDeath:   onDeath,
	}
	if len(path) > 0 {
		e.X = path[0].X
		e.Y = path[0].Y
		e.WaypointIndex = 1
	}
	return e
}

func (e *Enemy) ID() types.EntityID          { return e.id }
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }
func (e *Enemy) Health() int                 { return e.health }
func (e *Enemy) MaxHealth() int              { return e.maxHealth }
func (e *Enemy) Armor() float64              { return e.armor }

// IsAlive — враг жив и ещё не дошёл до базы.
func (e *Enemy) IsAlive() bool {
	return e.health > 0 && !e.ReachedEnd
}

func (e *Enemy) Bounds() spatial.Rect {
	return spatial.CenteredRect(e.X, e.Y, e.Radius, e.Radius)
}

// TakeDamage применяет уже рассчитанный боевой системой урон.
func (e *Enemy) TakeDamage(info defs.DamageInfo) {
	e.health -= int(math.Round(info.Amount))
	if e.health < 0 {
		e.health = 0
	}
}

// OnDeath вызывается боевой системой, когда здоровье дошло до нуля.
func (e *Enemy) OnDeath() {
	if e.onDeath != nil {
		cb := e.onDeath
		e.onDeath = nil
		cb(e)
	}
}

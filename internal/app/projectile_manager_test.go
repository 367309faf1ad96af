// internal/app/projectile_manager_test.go
package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/spatial"
)

// stubTarget — неподвижная цель для выстрелов.
type stubTarget struct {
	id   types.EntityID
	x, y float64
}

func (t *stubTarget) ID() types.EntityID              { return t.id }
func (t *stubTarget) Position() (float64, float64)    { return t.x, t.y }
func (t *stubTarget) Health() int                     { return 100 }
func (t *stubTarget) MaxHealth() int                  { return 100 }
func (t *stubTarget) Armor() float64                  { return 0 }
func (t *stubTarget) IsAlive() bool                   { return true }
func (t *stubTarget) Bounds() spatial.Rect            { return spatial.CenteredRect(t.x, t.y, 10, 10) }
func (t *stubTarget) TakeDamage(defs.DamageInfo)      {}
func (t *stubTarget) OnDeath()                        {}

var _ interfaces.Target = (*stubTarget)(nil)

func TestProjectileManager_FireAimsAtCurrentPosition(t *testing.T) {
	m := NewProjectileManager()
	target := &stubTarget{id: 1, x: 300, y: 100}

	m.Fire(100, 100, target, defs.DamageInfo{Amount: 40, Type: defs.DamagePhysical}, 1, 0)
	require.Equal(t, 1, m.ActiveCount())

	p := m.Projectiles()[0]
	assert.Equal(t, 300.0, p.TargetX)
	assert.Equal(t, 100.0, p.TargetY)
	assert.Equal(t, types.EntityID(1), p.TargetID)
}

func TestProjectileManager_MissedProjectileReturnsToPool(t *testing.T) {
	m := NewProjectileManager()
	target := &stubTarget{id: 1, x: 300, y: 100}
	m.Fire(100, 100, target, defs.DamageInfo{Amount: 40, Type: defs.DamagePhysical}, 1, 0)

	// 200 пк до цели при скорости из конфига: секунды с запасом.
	m.Update(1.0)
	assert.Equal(t, 0, m.ActiveCount(), "долетевший без столкновения снаряд — промах")

	// Следующий выстрел переиспользует тот же экземпляр.
	m.Fire(100, 100, target, defs.DamageInfo{Amount: 40, Type: defs.DamagePhysical}, 1, 0)
	assert.Equal(t, 1, m.ActiveCount())
}

func TestProjectileManager_AreaProjectileSurvivesArrival(t *testing.T) {
	m := NewProjectileManager()
	target := &stubTarget{id: 1, x: 300, y: 100}
	m.Fire(100, 100, target, defs.DamageInfo{Amount: 40, Type: defs.DamageMagical}, 0, 60)

	m.Update(1.0)

	// Area-снаряд в точке прибытия остаётся активным: его разрешает и
	// деактивирует боевая система, а не менеджер.
	require.Equal(t, 1, m.ActiveCount())
	p := m.Projectiles()[0]
	assert.True(t, p.HasReachedTarget())
	assert.True(t, p.IsActive())

	// После деактивации боевой системой снаряд возвращается в пул.
	p.Deactivate()
	m.Update(0.016)
	assert.Equal(t, 0, m.ActiveCount())
}

func TestProjectileManager_Clear(t *testing.T) {
	m := NewProjectileManager()
	target := &stubTarget{id: 1, x: 300, y: 100}
	for i := 0; i < 3; i++ {
		m.Fire(100, 100, target, defs.DamageInfo{Amount: 40, Type: defs.DamagePhysical}, 1, 0)
	}
	require.Equal(t, 3, m.ActiveCount())

	m.Clear()
	assert.Equal(t, 0, m.ActiveCount())
	assert.Empty(t, m.GetAll())
}

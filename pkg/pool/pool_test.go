// pkg/pool/pool_test.go
package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBullet struct {
	hits int
}

func (b *testBullet) Reset() { b.hits = 0 }

func newBulletPool(initial, max int) *Pool[*testBullet] {
	return New[*testBullet](func() *testBullet { return &testBullet{} }, initial, max)
}

func TestPool_AcquireReusesReleased(t *testing.T) {
	p := newBulletPool(1, 5)

	a := p.Acquire()
	a.hits = 3
	p.Release(a)

	b := p.Acquire()
	assert.Same(t, a, b, "освобождённый объект выдаётся повторно")
	assert.Equal(t, 0, b.hits, "объект сброшен при возврате в пул")
}

func TestPool_AcquireBeyondAvailableCreatesNew(t *testing.T) {
	p := newBulletPool(2, 5)
	require.Equal(t, 2, p.AvailableCount())

	seen := map[*testBullet]struct{}{}
	for i := 0; i < 4; i++ {
		seen[p.Acquire()] = struct{}{}
	}
	assert.Len(t, seen, 4, "активных объектов больше maxSize быть может")
	assert.Equal(t, 0, p.AvailableCount())
	assert.Equal(t, 4, p.ActiveCount())
}

func TestPool_AvailableListIsCapped(t *testing.T) {
	p := newBulletPool(0, 3)

	var objs []*testBullet
	for i := 0; i < 5; i++ {
		objs = append(objs, p.Acquire())
	}
	for _, o := range objs {
		p.Release(o)
	}

	// Свободный список ограничен maxSize, лишние объекты отброшены.
	assert.Equal(t, 3, p.AvailableCount())
	assert.Equal(t, 0, p.ActiveCount())
}

func TestPool_ForeignObjectRejected(t *testing.T) {
	p := newBulletPool(0, 5)
	_ = p.Acquire()

	p.Release(&testBullet{}) // этот объект пул не выдавал

	assert.Equal(t, 0, p.AvailableCount())
	assert.Equal(t, 1, p.ActiveCount())
}

func TestPool_DoubleReleaseIgnored(t *testing.T) {
	p := newBulletPool(0, 5)
	a := p.Acquire()

	p.Release(a)
	p.Release(a) // объект уже не активен

	assert.Equal(t, 1, p.AvailableCount())
}

func TestPool_ReleaseAll(t *testing.T) {
	p := newBulletPool(0, 5)
	for i := 0; i < 3; i++ {
		b := p.Acquire()
		b.hits = i
	}

	p.ReleaseAll()

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 3, p.AvailableCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, p.Acquire().hits)
	}
}

func TestPool_Prewarm(t *testing.T) {
	p := newBulletPool(0, 5)

	p.Prewarm(3)
	assert.Equal(t, 3, p.AvailableCount())

	// Цель выше maxSize усечётся.
	p.Prewarm(100)
	assert.Equal(t, 5, p.AvailableCount())

	// Активные объекты засчитываются в цель.
	_ = p.Acquire()
	_ = p.Acquire()
	p.Prewarm(5)
	assert.Equal(t, 3, p.AvailableCount())
	assert.Equal(t, 2, p.ActiveCount())
}

func TestPool_InitialSizeCappedByMaxSize(t *testing.T) {
	p := newBulletPool(10, 4)
	assert.Equal(t, 4, p.AvailableCount())
}

func TestPool_CustomResetHook(t *testing.T) {
	resets := 0
	p := NewWithReset[*testBullet](func() *testBullet { return &testBullet{} }, 0, 5, func(b *testBullet) {
		b.hits = -1
		resets++
	})

	a := p.Acquire()
	a.hits = 9
	p.Release(a)

	assert.Equal(t, 1, resets)
	assert.Equal(t, -1, p.Acquire().hits)
}

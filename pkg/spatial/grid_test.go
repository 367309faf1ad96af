// pkg/spatial/grid_test.go
package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}))
	assert.False(t, a.Intersects(Rect{X: 20, Y: 20, Width: 10, Height: 10}))
	// Касание рёбрами пересечением не считается.
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}))
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(100, 50, 10, 5)
	assert.Equal(t, Rect{X: 90, Y: 45, Width: 20, Height: 10}, r)
}

func TestGrid_InsertSpanningMultipleCells(t *testing.T) {
	g := NewGrid[int](640, 640, 64)

	// AABB прямо на стыке четырёх ячеек.
	g.Insert(1, CenteredRect(64, 64, 5, 5))
	assert.Equal(t, 4, g.CellCount())
	assert.Equal(t, 1, g.EntityCount())

	// Запрос, накрывающий все четыре ячейки, возвращает сущность один раз.
	result := g.Query(Rect{X: 0, Y: 0, Width: 128, Height: 128})
	assert.Equal(t, []int{1}, result)
}

func TestGrid_QueryExclude(t *testing.T) {
	g := NewGrid[int](640, 640, 64)
	g.Insert(1, CenteredRect(100, 100, 5, 5))
	g.Insert(2, CenteredRect(110, 100, 5, 5))

	result := g.Query(Rect{X: 64, Y: 64, Width: 64, Height: 64}, 1)
	assert.Equal(t, []int{2}, result)
}

func TestGrid_UpdateMovesEntity(t *testing.T) {
	g := NewGrid[int](640, 640, 64)
	g.Insert(1, CenteredRect(32, 32, 5, 5))
	require.Equal(t, 1, g.CellCount())

	t.Run("движение внутри ячейки не трогает индексы", func(t *testing.T) {
		g.Update(1, CenteredRect(40, 40, 5, 5))
		assert.Equal(t, 1, g.CellCount())
		assert.Equal(t, []int{1}, g.Query(Rect{X: 0, Y: 0, Width: 64, Height: 64}))
	})

	t.Run("переход в другую ячейку переиндексирует", func(t *testing.T) {
		g.Update(1, CenteredRect(300, 300, 5, 5))
		assert.Equal(t, 1, g.CellCount())
		assert.Empty(t, g.Query(Rect{X: 0, Y: 0, Width: 64, Height: 64}))
		assert.Equal(t, []int{1}, g.Query(CenteredRect(300, 300, 32, 32)))
	})

	t.Run("Update незнакомого ключа работает как Insert", func(t *testing.T) {
		g.Update(7, CenteredRect(500, 500, 5, 5))
		assert.Equal(t, 2, g.EntityCount())
	})
}

func TestGrid_RemovePrunesEmptyCells(t *testing.T) {
	g := NewGrid[int](640, 640, 64)
	g.Insert(1, CenteredRect(64, 64, 5, 5))
	g.Remove(1)

	assert.Equal(t, 0, g.CellCount())
	assert.Equal(t, 0, g.EntityCount())

	// Удаление незнакомого ключа — no-op.
	g.Remove(42)
	assert.Equal(t, 0, g.EntityCount())
}

func TestGrid_OutOfBoundsClampsToBorder(t *testing.T) {
	g := NewGrid[int](640, 640, 64)

	g.Insert(1, CenteredRect(-100, -100, 5, 5))
	g.Insert(2, CenteredRect(10000, 10000, 5, 5))

	assert.Equal(t, []int{1}, g.Query(Rect{X: 0, Y: 0, Width: 10, Height: 10}))
	assert.Equal(t, []int{2}, g.Query(Rect{X: 630, Y: 630, Width: 10, Height: 10}))
}

func TestGrid_ReinsertActsAsUpdate(t *testing.T) {
	g := NewGrid[int](640, 640, 64)
	g.Insert(1, CenteredRect(32, 32, 5, 5))
	g.Insert(1, CenteredRect(300, 300, 5, 5))

	assert.Equal(t, 1, g.EntityCount())
	assert.Empty(t, g.Query(Rect{X: 0, Y: 0, Width: 64, Height: 64}))
}

func TestGrid_QueryRadiusIsSquareApproximation(t *testing.T) {
	g := NewGrid[int](640, 640, 64)
	g.Insert(1, CenteredRect(100, 100, 5, 5))
	// Угол описанного квадрата: евклидово расстояние больше радиуса,
	// но кандидат всё равно возвращается — точную проверку делает вызывающий.
	g.Insert(2, CenteredRect(140, 140, 5, 5))

	result := g.QueryRadius(100, 100, 50)
	assert.ElementsMatch(t, []int{1, 2}, result)
}

func TestGrid_Clear(t *testing.T) {
	g := NewGrid[int](640, 640, 64)
	g.Insert(1, CenteredRect(100, 100, 5, 5))
	g.Insert(2, CenteredRect(200, 200, 5, 5))

	g.Clear()
	assert.Equal(t, 0, g.EntityCount())
	assert.Equal(t, 0, g.CellCount())
	assert.Empty(t, g.Query(Rect{X: 0, Y: 0, Width: 640, Height: 640}))
}

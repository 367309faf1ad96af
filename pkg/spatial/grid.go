// pkg/spatial/grid.go
package spatial

import "math"

// Rect — прямоугольник, выровненный по осям (AABB).
type Rect struct {
	X, Y          float64 // левый верхний угол
	Width, Height float64
}

// Intersects сообщает, пересекаются ли два прямоугольника.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// CenteredRect строит прямоугольник по центру и половинным размерам.
func CenteredRect(cx, cy, halfW, halfH float64) Rect {
	return Rect{X: cx - halfW, Y: cy - halfH, Width: halfW * 2, Height: halfH * 2}
}

// Grid — равномерная сетка для широкой фазы поиска соседей.
// Держит два согласованных индекса: сущность -> занятые ячейки и
// ячейка -> сущности. Сущность числится в ячейке C тогда и только тогда,
// когда C есть в её наборе ячеек.
//
// Координаты за пределами мира прижимаются к границе, а не отклоняются:
// сущность в любой точке пространства занимает хотя бы одну ячейку.
type Grid[K comparable] struct {
	cellSize   float64
	cols, rows int

	cellEntities map[int]map[K]struct{}
	entityCells  map[K]map[int]struct{}
}

// NewGrid создаёт сетку над миром worldWidth x worldHeight.
func NewGrid[K comparable](worldWidth, worldHeight, cellSize float64) *Grid[K] {
	return &Grid[K]{
		cellSize:     cellSize,
		cols:         int(math.Ceil(worldWidth / cellSize)),
		rows:         int(math.Ceil(worldHeight / cellSize)),
		cellEntities: make(map[int]map[K]struct{}),
		entityCells:  make(map[K]map[int]struct{}),
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// cellsFor возвращает индексы всех ячеек, которые пересекает прямоугольник.
func (g *Grid[K]) cellsFor(bounds Rect) map[int]struct{} {
	minCol := clampInt(int(math.Floor(bounds.X/g.cellSize)), 0, g.cols-1)
	maxCol := clampInt(int(math.Floor((bounds.X+bounds.Width)/g.cellSize)), 0, g.cols-1)
	minRow := clampInt(int(math.Floor(bounds.Y/g.cellSize)), 0, g.rows-1)
	maxRow := clampInt(int(math.Floor((bounds.Y+bounds.Height)/g.cellSize)), 0, g.rows-1)

	cells := make(map[int]struct{}, (maxCol-minCol+1)*(maxRow-minRow+1))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cells[row*g.cols+col] = struct{}{}
		}
	}
	return cells
}

// Insert добавляет сущность во все ячейки, которые пересекает её AABB.
// Повторная вставка эквивалентна Update.
func (g *Grid[K]) Insert(key K, bounds Rect) {
	if _, exists := g.entityCells[key]; exists {
		g.Update(key, bounds)
		return
	}
	cells := g.cellsFor(bounds)
	g.entityCells[key] = cells
	for idx := range cells {
		g.addToCell(idx, key)
	}
}

// Remove удаляет сущность из всех её ячеек; опустевшие ячейки вычищаются.
func (g *Grid[K]) Remove(key K) {
	cells, exists := g.entityCells[key]
	if !exists {
		return
	}
	for idx := range cells {
		g.removeFromCell(idx, key)
	}
	delete(g.entityCells, key)
}

// Update пересчитывает набор ячеек и применяет только дельту к старому
// набору. Для почти неподвижных сущностей это дешёвый no-op.
func (g *Grid[K]) Update(key K, bounds Rect) {
	oldCells, exists := g.entityCells[key]
	if !exists {
		g.Insert(key, bounds)
		return
	}

	newCells := g.cellsFor(bounds)
	for idx := range oldCells {
		if _, still := newCells[idx]; !still {
			g.removeFromCell(idx, key)
		}
	}
	for idx := range newCells {
		if _, had := oldCells[idx]; !had {
			g.addToCell(idx, key)
		}
	}
	g.entityCells[key] = newCells
}

// Query возвращает дедуплицированное объединение сущностей по всем
// ячейкам, пересекаемым прямоугольником запроса. exclude — необязательный
// ключ, который исключается из результата (обычно сам запрашивающий).
func (g *Grid[K]) Query(bounds Rect, exclude ...K) []K {
	seen := make(map[K]struct{})
	var result []K
	for idx := range g.cellsFor(bounds) {
		for key := range g.cellEntities[idx] {
			if _, dup := seen[key]; dup {
				continue
			}
			if isExcluded(key, exclude) {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, key)
		}
	}
	return result
}

// QueryRadius — сахар поверх Query: круг заменяется описанным квадратом.
// Это заведомо квадратная аппроксимация круга; вызывающий обязан сам
// отфильтровать кандидатов точной проверкой расстояния.
func (g *Grid[K]) QueryRadius(cx, cy, radius float64, exclude ...K) []K {
	return g.Query(CenteredRect(cx, cy, radius, radius), exclude...)
}

func isExcluded[K comparable](key K, exclude []K) bool {
	for _, e := range exclude {
		if key == e {
			return true
		}
	}
	return false
}

// CellCount возвращает количество непустых ячеек.
func (g *Grid[K]) CellCount() int {
	return len(g.cellEntities)
}

// EntityCount возвращает количество проиндексированных сущностей.
func (g *Grid[K]) EntityCount() int {
	return len(g.entityCells)
}

// Clear полностью очищает оба индекса.
func (g *Grid[K]) Clear() {
	g.cellEntities = make(map[int]map[K]struct{})
	g.entityCells = make(map[K]map[int]struct{})
}

func (g *Grid[K]) addToCell(idx int, key K) {
	cell, ok := g.cellEntities[idx]
	if !ok {
		cell = make(map[K]struct{})
		g.cellEntities[idx] = cell
	}
	cell[key] = struct{}{}
}

func (g *Grid[K]) removeFromCell(idx int, key K) {
	cell, ok := g.cellEntities[idx]
	if !ok {
		return
	}
	delete(cell, key)
	if len(cell) == 0 {
		delete(g.cellEntities, idx)
	}
}

// pkg/tilemap/tilemap.go
package tilemap

import "math"

// Point — точка в мировых координатах (пиксели).
type Point struct {
	X, Y float64
}

// Dist возвращает евклидово расстояние до другой точки.
func (p Point) Dist(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TileMap — прямоугольный мир с одним или несколькими маршрутами врагов.
// Геометрия маршрутов строится снаружи (редактор карт вне зоны
// ответственности движка); здесь только хранение и выдача по идентификатору.
type TileMap struct {
	Width, Height float64
	TileSize      float64

	paths map[int][]Point
}

// New создаёт карту указанного размера без маршрутов.
func New(width, height, tileSize float64) *TileMap {
	return &TileMap{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		paths:    make(map[int][]Point),
	}
}

// AddPath регистрирует маршрут под идентификатором. Маршрут копируется.
func (m *TileMap) AddPath(id int, waypoints []Point) {
	pts := make([]Point, len(waypoints))
	copy(pts, waypoints)
	m.paths[id] = pts
}

// Path возвращает маршрут по идентификатору.
func (m *TileMap) Path(id int) ([]Point, bool) {
	p, ok := m.paths[id]
	return p, ok
}

// PathCount возвращает количество зарегистрированных маршрутов.
func (m *TileMap) PathCount() int {
	return len(m.paths)
}

// BuildSerpentinePath строит змеевидный маршрут слева направо через весь
// мир — маршрут по умолчанию, когда карта не задаёт собственный.
func (m *TileMap) BuildSerpentinePath(lanes int) []Point {
	if lanes < 1 {
		lanes = 1
	}
	margin := m.TileSize * 2
	usableH := m.Height - margin*2
	step := usableH / float64(lanes)

	var pts []Point
	for lane := 0; lane < lanes; lane++ {
		y := margin + step*float64(lane) + step/2
		if lane%2 == 0 {
			pts = append(pts, Point{X: 0, Y: y}, Point{X: m.Width - margin, Y: y})
		} else {
			pts = append(pts, Point{X: m.Width - margin, Y: y}, Point{X: margin, Y: y})
		}
	}
	// Финальный отрезок уводит маршрут за правую границу — точка "базы".
	last := pts[len(pts)-1]
	pts = append(pts, Point{X: m.Width + m.TileSize, Y: last.Y})
	return pts
}

// PathLength возвращает суммарную длину ломаной маршрута.
func PathLength(waypoints []Point) float64 {
	total := 0.0
	for i := 1; i < len(waypoints); i++ {
		total += waypoints[i-1].Dist(waypoints[i])
	}
	return total
}

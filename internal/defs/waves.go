// internal/defs/waves.go
package defs

// WaveEnemySpawn описывает одну группу врагов внутри волны.
type WaveEnemySpawn struct {
	Type       string  `yaml:"type"`       // Идентификатор врага из enemies.json
	Count      int     `yaml:"count"`      // Количество врагов в группе
	SpawnDelay float64 `yaml:"spawnDelay"` // Задержка между появлениями, мс
}

// WaveDefinition описывает параметры для одной волны врагов.
// Шаблон неизменяемый: масштабирование сложности всегда возвращает копию.
type WaveDefinition struct {
	WaveNumber int              `yaml:"waveNumber"`
	StartDelay float64          `yaml:"startDelay"` // Задержка перед первым спавном, мс
	Enemies    []WaveEnemySpawn `yaml:"enemies"`
}

// Clone возвращает глубокую копию определения волны.
func (w WaveDefinition) Clone() WaveDefinition {
	c := w
	c.Enemies = make([]WaveEnemySpawn, len(w.Enemies))
	copy(c.Enemies, w.Enemies)
	return c
}

// TotalCount возвращает суммарное количество врагов в волне.
func (w WaveDefinition) TotalCount() int {
	total := 0
	for _, g := range w.Enemies {
		if g.Count > 0 {
			total += g.Count
		}
	}
	return total
}

// DefaultWaves определяет последовательность волн, используемую,
// когда файл waves.yaml отсутствует.
var DefaultWaves = []WaveDefinition{
	{WaveNumber: 1, StartDelay: 2000, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_NORMAL", Count: 5, SpawnDelay: 800},
	}},
	{WaveNumber: 2, StartDelay: 2000, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_NORMAL", Count: 7, SpawnDelay: 800},
	}},
	{WaveNumber: 3, StartDelay: 2000, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_NORMAL", Count: 6, SpawnDelay: 800},
		{Type: "ENEMY_FAST", Count: 4, SpawnDelay: 500},
	}},
	{WaveNumber: 4, StartDelay: 2000, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_TANK", Count: 4, SpawnDelay: 1200},
	}},
	{WaveNumber: 5, StartDelay: 2500, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_FAST", Count: 10, SpawnDelay: 400},
		{Type: "ENEMY_NORMAL", Count: 8, SpawnDelay: 600},
	}},
	{WaveNumber: 6, StartDelay: 2500, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_TANK", Count: 6, SpawnDelay: 1000},
		{Type: "ENEMY_FAST", Count: 8, SpawnDelay: 400},
	}},
	{WaveNumber: 7, StartDelay: 3000, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_BOSS", Count: 1, SpawnDelay: 1000},
		{Type: "ENEMY_NORMAL", Count: 10, SpawnDelay: 500},
	}},
}

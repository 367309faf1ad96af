// internal/defs/enemies.go
package defs

// Visuals holds rendering hints for an enemy type.
type Visuals struct {
	Color        [4]uint8 `json:"color"`
	RadiusFactor float64  `json:"radius_factor"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"` // пикселей в секунду
	Armor   float64 `json:"armor"`
	Reward  int     `json:"reward"`
	Visuals Visuals `json:"visuals"`
}

// DefaultEnemies используется, когда enemies.json отсутствует.
var DefaultEnemies = []EnemyDefinition{
	{ID: "ENEMY_NORMAL", Name: "Normal", Health: 100, Speed: 80, Armor: 10, Reward: 10,
		Visuals: Visuals{Color: [4]uint8{200, 60, 60, 255}, RadiusFactor: 1.0}},
	{ID: "ENEMY_FAST", Name: "Fast", Health: 60, Speed: 140, Armor: 0, Reward: 8,
		Visuals: Visuals{Color: [4]uint8{230, 180, 40, 255}, RadiusFactor: 0.8}},
	{ID: "ENEMY_TANK", Name: "Tank", Health: 320, Speed: 50, Armor: 60, Reward: 25,
		Visuals: Visuals{Color: [4]uint8{120, 120, 160, 255}, RadiusFactor: 1.3}},
	{ID: "ENEMY_BOSS", Name: "Boss", Health: 1500, Speed: 40, Armor: 100, Reward: 150,
		Visuals: Visuals{Color: [4]uint8{160, 40, 160, 255}, RadiusFactor: 1.8}},
}

// internal/system/spawn_queue_test.go
package system

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"
)

func testWave() defs.WaveDefinition {
	return defs.WaveDefinition{
		WaveNumber: 1,
		StartDelay: 2000,
		Enemies: []defs.WaveEnemySpawn{
			{Type: "ENEMY_NORMAL", Count: 3, SpawnDelay: 100},
			{Type: "ENEMY_FAST", Count: 2, SpawnDelay: 50},
		},
	}
}

func TestBuildSpawnQueue_Sequential(t *testing.T) {
	queue := BuildSpawnQueue(testWave(), defs.SpawnSequential, utils.NewPRNGService(1))
	require.Len(t, queue, 5)

	// Общий таймер идёт через границы групп: вторая группа начинается
	// сразу после задержки последнего врага первой.
	expected := []SpawnQueueEntry{
		{Type: "ENEMY_NORMAL", SpawnTime: 0},
		{Type: "ENEMY_NORMAL", SpawnTime: 100},
		{Type: "ENEMY_NORMAL", SpawnTime: 200},
		{Type: "ENEMY_FAST", SpawnTime: 300},
		{Type: "ENEMY_FAST", SpawnTime: 350},
	}
	assert.Equal(t, expected, queue)
}

func TestBuildSpawnQueue_Interleaved(t *testing.T) {
	queue := BuildSpawnQueue(testWave(), defs.SpawnInterleaved, utils.NewPRNGService(1))
	require.Len(t, queue, 5)

	// У каждой группы свой таймер; после сортировки по времени группы
	// перемежаются вместо того, чтобы идти блоками.
	expected := []SpawnQueueEntry{
		{Type: "ENEMY_NORMAL", SpawnTime: 0},
		{Type: "ENEMY_FAST", SpawnTime: 0},
		{Type: "ENEMY_FAST", SpawnTime: 50},
		{Type: "ENEMY_NORMAL", SpawnTime: 100},
		{Type: "ENEMY_NORMAL", SpawnTime: 200},
	}
	assert.Equal(t, expected, queue)
}

func TestBuildSpawnQueue_InterleavedAlternates(t *testing.T) {
	// При равных задержках группы строго чередуются, пока меньшая
	// не исчерпана.
	def := defs.WaveDefinition{Enemies: []defs.WaveEnemySpawn{
		{Type: "A", Count: 3, SpawnDelay: 100},
		{Type: "B", Count: 2, SpawnDelay: 100},
	}}
	queue := BuildSpawnQueue(def, defs.SpawnInterleaved, utils.NewPRNGService(1))
	require.Len(t, queue, 5)

	types := make([]string, len(queue))
	for i, e := range queue {
		types[i] = e.Type
	}
	assert.Equal(t, []string{"A", "B", "A", "B", "A"}, types)
}

func TestBuildSpawnQueue_Random(t *testing.T) {
	queue := BuildSpawnQueue(testWave(), defs.SpawnRandom, utils.NewPRNGService(42))
	require.Len(t, queue, 5)

	// Перемешивается порядок, но не состав.
	counts := map[string]int{}
	for _, e := range queue {
		counts[e.Type]++
	}
	assert.Equal(t, map[string]int{"ENEMY_NORMAL": 3, "ENEMY_FAST": 2}, counts)

	assert.Equal(t, 0.0, queue[0].SpawnTime, "первый спавн всегда в нулевой момент")
	assert.True(t, sort.SliceIsSorted(queue, func(i, j int) bool {
		return queue[i].SpawnTime < queue[j].SpawnTime
	}))
}

func TestBuildSpawnQueue_RandomDeterministicPerSeed(t *testing.T) {
	a := BuildSpawnQueue(testWave(), defs.SpawnRandom, utils.NewPRNGService(7))
	b := BuildSpawnQueue(testWave(), defs.SpawnRandom, utils.NewPRNGService(7))
	assert.Equal(t, a, b)
}

func TestBuildSpawnQueue_SkipsEmptyGroups(t *testing.T) {
	def := defs.WaveDefinition{Enemies: []defs.WaveEnemySpawn{
		{Type: "ENEMY_NORMAL", Count: 0, SpawnDelay: 100},
		{Type: "ENEMY_FAST", Count: 2, SpawnDelay: 50},
	}}
	queue := BuildSpawnQueue(def, defs.SpawnInterleaved, utils.NewPRNGService(1))
	require.Len(t, queue, 2)
	for _, e := range queue {
		assert.Equal(t, "ENEMY_FAST", e.Type)
	}
}

func TestScaleWaveDefinition(t *testing.T) {
	def := defs.WaveDefinition{Enemies: []defs.WaveEnemySpawn{
		{Type: "ENEMY_NORMAL", Count: 5, SpawnDelay: 800},
		{Type: "ENEMY_FAST", Count: 1, SpawnDelay: 400},
	}}

	t.Run("умножает количество с округлением", func(t *testing.T) {
		scaled := ScaleWaveDefinition(def, defs.DifficultyScaling{CountMultiplier: 1.5})
		assert.Equal(t, 8, scaled.Enemies[0].Count)
		assert.Equal(t, 2, scaled.Enemies[1].Count)
	})

	t.Run("непустая группа не схлопывается в ноль", func(t *testing.T) {
		scaled := ScaleWaveDefinition(def, defs.DifficultyScaling{CountMultiplier: 0.3})
		assert.Equal(t, 2, scaled.Enemies[0].Count)
		assert.Equal(t, 1, scaled.Enemies[1].Count)
	})

	t.Run("не мутирует шаблон", func(t *testing.T) {
		_ = ScaleWaveDefinition(def, defs.DifficultyScaling{CountMultiplier: 3})
		assert.Equal(t, 5, def.Enemies[0].Count)
	})

	t.Run("нулевой множитель оставляет количество как есть", func(t *testing.T) {
		scaled := ScaleWaveDefinition(def, defs.DifficultyScaling{})
		assert.Equal(t, 5, scaled.Enemies[0].Count)
	})
}

func TestSynthesizeEndlessWave(t *testing.T) {
	base := []defs.WaveDefinition{
		{WaveNumber: 1, StartDelay: 2000, Enemies: []defs.WaveEnemySpawn{
			{Type: "ENEMY_NORMAL", Count: 5, SpawnDelay: 800},
		}},
		{WaveNumber: 2, StartDelay: 2000, Enemies: []defs.WaveEnemySpawn{
			{Type: "ENEMY_FAST", Count: 4, SpawnDelay: 500},
		}},
	}

	t.Run("первая волна второго цикла", func(t *testing.T) {
		// index 2: cycleNumber=1, cyclePosition=0, scale = 1 + 0.5 = 1.5
		def := SynthesizeEndlessWave(base, 2)
		assert.Equal(t, 3, def.WaveNumber)
		assert.Equal(t, "ENEMY_NORMAL", def.Enemies[0].Type)
		assert.Equal(t, 8, def.Enemies[0].Count)
		assert.Equal(t, 750.0, def.Enemies[0].SpawnDelay)
		assert.Equal(t, 1950.0, def.StartDelay)
	})

	t.Run("позиция внутри цикла даёт малый прирост", func(t *testing.T) {
		// index 3: cycleNumber=1, cyclePosition=1, scale = 1.55
		def := SynthesizeEndlessWave(base, 3)
		assert.Equal(t, 6, def.Enemies[0].Count) // round(4 * 1.55)
	})

	t.Run("задержки упираются в пол", func(t *testing.T) {
		// index 40: cycleNumber=20, сжатие 1000 мс
		def := SynthesizeEndlessWave(base, 40)
		assert.Equal(t, config.MinSpawnDelayMs, def.Enemies[0].SpawnDelay)
		assert.Equal(t, config.MinStartDelayMs, def.StartDelay)
	})
}

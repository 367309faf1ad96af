// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWaveDefinitions(t *testing.T) {
	t.Run("валидный файл", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", `
waves:
  - waveNumber: 1
    startDelay: 2000
    enemies:
      - { type: ENEMY_NORMAL, count: 5, spawnDelay: 800 }
  - waveNumber: 2
    enemies:
      - { type: ENEMY_FAST, count: 3, spawnDelay: 400 }
      - { type: ENEMY_TANK, count: 1, spawnDelay: 0 }
`)
		waves, err := LoadWaveDefinitions(path)
		require.NoError(t, err)
		require.Len(t, waves, 2)
		assert.Equal(t, 2000.0, waves[0].StartDelay)
		assert.Equal(t, "ENEMY_NORMAL", waves[0].Enemies[0].Type)
		assert.Equal(t, 5, waves[0].Enemies[0].Count)
		assert.Len(t, waves[1].Enemies, 2)
	})

	t.Run("пустой список волн отклоняется", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", "waves: []\n")
		_, err := LoadWaveDefinitions(path)
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("отрицательная задержка — ошибка конфигурации", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", `
waves:
  - waveNumber: 1
    enemies:
      - { type: ENEMY_NORMAL, count: 5, spawnDelay: -100 }
`)
		_, err := LoadWaveDefinitions(path)
		assert.ErrorContains(t, err, "spawnDelay")
	})

	t.Run("группа без типа отклоняется", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", `
waves:
  - waveNumber: 1
    enemies:
      - { count: 5, spawnDelay: 100 }
`)
		_, err := LoadWaveDefinitions(path)
		assert.ErrorContains(t, err, "type is required")
	})

	t.Run("вырожденная волна без групп допустима", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", `
waves:
  - waveNumber: 1
    enemies: []
`)
		waves, err := LoadWaveDefinitions(path)
		require.NoError(t, err)
		assert.Empty(t, waves[0].Enemies)
	})

	t.Run("битый YAML", func(t *testing.T) {
		path := writeTempFile(t, "waves.yaml", "waves: [неожиданный: : скаляр")
		_, err := LoadWaveDefinitions(path)
		assert.Error(t, err)
	})

	t.Run("отсутствующий файл", func(t *testing.T) {
		_, err := LoadWaveDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadEnemyDefinitions(t *testing.T) {
	// EnemyLibrary — глобальное состояние; возвращаем встроенные
	// определения после каждого подтеста.
	restore := func() {
		EnemyLibrary = make(map[string]EnemyDefinition)
		for _, def := range DefaultEnemies {
			EnemyLibrary[def.ID] = def
		}
	}
	t.Cleanup(restore)

	t.Run("валидный файл заменяет библиотеку", func(t *testing.T) {
		defer restore()
		path := writeTempFile(t, "enemies.json", `[
  {"id": "ENEMY_TEST", "name": "Test", "health": 50, "speed": 90, "armor": 5, "reward": 3,
   "visuals": {"color": [255, 0, 0, 255], "radius_factor": 1.0}}
]`)
		require.NoError(t, LoadEnemyDefinitions(path))
		require.Len(t, EnemyLibrary, 1)
		def := EnemyLibrary["ENEMY_TEST"]
		assert.Equal(t, 50, def.Health)
		assert.Equal(t, 90.0, def.Speed)
		assert.Equal(t, [4]uint8{255, 0, 0, 255}, def.Visuals.Color)
	})

	t.Run("битый JSON не трогает библиотеку", func(t *testing.T) {
		defer restore()
		before := len(EnemyLibrary)
		path := writeTempFile(t, "enemies.json", "{not json")
		assert.Error(t, LoadEnemyDefinitions(path))
		assert.Len(t, EnemyLibrary, before)
	})
}

func TestResolveDifficulty(t *testing.T) {
	t.Run("известные уровни", func(t *testing.T) {
		normal := ResolveDifficulty(DifficultyNormal)
		assert.Equal(t, 1.0, normal.HealthMultiplier)

		hard := ResolveDifficulty(DifficultyHard)
		assert.Greater(t, hard.HealthMultiplier, normal.HealthMultiplier)
	})

	t.Run("неизвестный уровень деградирует до normal", func(t *testing.T) {
		got := ResolveDifficulty(DifficultyPreset("impossible"))
		assert.Equal(t, ResolveDifficulty(DifficultyNormal), got)
	})
}

func TestWaveDefinitionClone(t *testing.T) {
	original := WaveDefinition{WaveNumber: 1, Enemies: []WaveEnemySpawn{
		{Type: "ENEMY_NORMAL", Count: 5, SpawnDelay: 800},
	}}

	clone := original.Clone()
	clone.Enemies[0].Count = 99

	assert.Equal(t, 5, original.Enemies[0].Count, "клон не делит срез с оригиналом")
	assert.Equal(t, 5, original.TotalCount())
}

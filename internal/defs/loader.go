// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnemyLibrary is a map to hold all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

func init() {
	// Встроенные определения доступны и без файлов конфигурации.
	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range DefaultEnemies {
		EnemyLibrary[def.ID] = def
	}
}

// LoadEnemyDefinitions reads the enemy configuration file and populates the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}

	fmt.Printf("Loaded %d enemy definitions\n", len(EnemyLibrary))
	return nil
}

// WaveFile — структура файла waves.yaml.
type WaveFile struct {
	Waves []WaveDefinition `yaml:"waves"`
}

// LoadWaveDefinitions загружает список волн из YAML-файла.
func LoadWaveDefinitions(path string) ([]WaveDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var file WaveFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse wave definitions YAML: %w", err)
	}

	if err := validateWaves(file.Waves); err != nil {
		return nil, fmt.Errorf("invalid wave definitions: %w", err)
	}

	return file.Waves, nil
}

// validateWaves отклоняет конфигурации, которые нельзя исправить деградацией.
// Пустые волны и неположительные count допустимы (деградируют в no-op волну),
// но отрицательные задержки и неизвестная структура — ошибка конфигурации.
func validateWaves(waves []WaveDefinition) error {
	if len(waves) == 0 {
		return fmt.Errorf("wave list cannot be empty")
	}
	for i, w := range waves {
		if w.StartDelay < 0 {
			return fmt.Errorf("wave %d: startDelay cannot be negative", i+1)
		}
		for j, g := range w.Enemies {
			if g.Type == "" {
				return fmt.Errorf("wave %d, group %d: enemy type is required", i+1, j+1)
			}
			if g.SpawnDelay < 0 {
				return fmt.Errorf("wave %d, group %d: spawnDelay cannot be negative", i+1, j+1)
			}
		}
	}
	return nil
}

// internal/defs/difficulty.go
package defs

import "log"

// DifficultyScaling — набор множителей, применяемых к шаблону волны.
// Исходный шаблон никогда не мутируется: Apply возвращает копию.
type DifficultyScaling struct {
	HealthMultiplier float64 `yaml:"healthMultiplier"`
	SpeedMultiplier  float64 `yaml:"speedMultiplier"`
	RewardMultiplier float64 `yaml:"rewardMultiplier"`
	CountMultiplier  float64 `yaml:"countMultiplier"`
}

// DifficultyPreset — именованный уровень сложности.
type DifficultyPreset string

const (
	DifficultyEasy      DifficultyPreset = "easy"
	DifficultyNormal    DifficultyPreset = "normal"
	DifficultyHard      DifficultyPreset = "hard"
	DifficultyNightmare DifficultyPreset = "nightmare"
)

var difficultyPresets = map[DifficultyPreset]DifficultyScaling{
	DifficultyEasy:      {HealthMultiplier: 0.8, SpeedMultiplier: 0.9, RewardMultiplier: 1.2, CountMultiplier: 0.8},
	DifficultyNormal:    {HealthMultiplier: 1.0, SpeedMultiplier: 1.0, RewardMultiplier: 1.0, CountMultiplier: 1.0},
	DifficultyHard:      {HealthMultiplier: 1.3, SpeedMultiplier: 1.1, RewardMultiplier: 1.1, CountMultiplier: 1.2},
	DifficultyNightmare: {HealthMultiplier: 1.7, SpeedMultiplier: 1.25, RewardMultiplier: 1.25, CountMultiplier: 1.5},
}

// ResolveDifficulty возвращает множители для именованного уровня сложности.
// Неизвестное имя — деградация до normal с предупреждением, не ошибка.
func ResolveDifficulty(preset DifficultyPreset) DifficultyScaling {
	if s, ok := difficultyPresets[preset]; ok {
		return s
	}
	log.Printf("ResolveDifficulty: неизвестный уровень сложности %q, используется normal", preset)
	return difficultyPresets[DifficultyNormal]
}

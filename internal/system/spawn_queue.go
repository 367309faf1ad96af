// internal/system/spawn_queue.go
package system

import (
	"math"
	"sort"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/utils"
)

// SpawnQueueEntry — одна инструкция спавна, производная от шаблона волны.
// Очередь всегда отсортирована по возрастанию SpawnTime.
type SpawnQueueEntry struct {
	Type      string
	SpawnTime float64 // мс от начала волны
}

// BuildSpawnQueue строит очередь спавна из (возможно, уже отмасштабированного)
// шаблона волны выбранным алгоритмом. Группы с неположительным count
// пропускаются: такая волна деградирует до no-op и сразу завершается.
func BuildSpawnQueue(def defs.WaveDefinition, mode defs.SpawnMode, rng *utils.PRNGService) []SpawnQueueEntry {
	var queue []SpawnQueueEntry
	switch mode {
	case defs.SpawnInterleaved:
		queue = buildInterleaved(def)
	case defs.SpawnRandom:
		queue = buildRandom(def, rng)
	default:
		queue = buildSequential(def)
	}

	// Страховочная нормализация: sequential и interleaved отсортированы
	// по построению, random — нет.
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].SpawnTime < queue[j].SpawnTime
	})
	return queue
}

// buildSequential выпускает группы подряд: общий таймер продолжает идти
// через границы групп, группа B начинается сразу после задержки последнего
// врага группы A.
func buildSequential(def defs.WaveDefinition) []SpawnQueueEntry {
	var queue []SpawnQueueEntry
	clock := 0.0
	for _, group := range def.Enemies {
		for i := 0; i < group.Count; i++ {
			queue = append(queue, SpawnQueueEntry{Type: group.Type, SpawnTime: clock})
			clock += group.SpawnDelay
		}
	}
	return queue
}

// buildInterleaved чередует группы по кругу: у каждой группы свой таймер
// и свой остаток; за один проход круга каждая живая группа выпускает
// одного врага по собственному таймеру.
func buildInterleaved(def defs.WaveDefinition) []SpawnQueueEntry {
	type groupState struct {
		spawn     defs.WaveEnemySpawn
		remaining int
		clock     float64
	}

	groups := make([]*groupState, 0, len(def.Enemies))
	total := 0
	for _, g := range def.Enemies {
		if g.Count > 0 {
			groups = append(groups, &groupState{spawn: g, remaining: g.Count})
			total += g.Count
		}
	}

	var queue []SpawnQueueEntry
	idx := 0
	for len(queue) < total {
		g := groups[idx%len(groups)]
		idx++
		if g.remaining == 0 {
			continue
		}
		queue = append(queue, SpawnQueueEntry{Type: g.spawn.Type, SpawnTime: g.clock})
		g.clock += g.spawn.SpawnDelay
		g.remaining--
	}
	return queue
}

// buildRandom собирает плоский мультимножественный список (тип, задержка),
// перемешивает его Фишером—Йетсом и раскладывает времена, накапливая
// задержку каждой записи.
func buildRandom(def defs.WaveDefinition, rng *utils.PRNGService) []SpawnQueueEntry {
	type flatEntry struct {
		enemyType string
		delay     float64
	}

	var flat []flatEntry
	for _, g := range def.Enemies {
		for i := 0; i < g.Count; i++ {
			flat = append(flat, flatEntry{enemyType: g.Type, delay: g.SpawnDelay})
		}
	}

	rng.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})

	queue := make([]SpawnQueueEntry, 0, len(flat))
	clock := 0.0
	for _, e := range flat {
		queue = append(queue, SpawnQueueEntry{Type: e.enemyType, SpawnTime: clock})
		clock += e.delay
	}
	return queue
}

// ScaleWaveDefinition применяет множители сложности к шаблону волны
// и возвращает копию; исходный шаблон не мутируется. Масштабируется
// только количество врагов: health/speed/reward применяет менеджер
// врагов в момент спавна.
func ScaleWaveDefinition(def defs.WaveDefinition, scaling defs.DifficultyScaling) defs.WaveDefinition {
	scaled := def.Clone()
	if scaling.CountMultiplier == 1.0 || scaling.CountMultiplier == 0 {
		return scaled
	}
	for i := range scaled.Enemies {
		count := int(math.Round(float64(scaled.Enemies[i].Count) * scaling.CountMultiplier))
		if count < 1 && scaled.Enemies[i].Count > 0 {
			count = 1
		}
		scaled.Enemies[i].Count = count
	}
	return scaled
}

// SynthesizeEndlessWave синтезирует волну за пределами определённых:
// базовые волны повторяются по циклу с нарастающим масштабом, задержки
// сжимаются с жёстким полом, чтобы волна не вырождалась в мгновенный залп.
func SynthesizeEndlessWave(base []defs.WaveDefinition, index int) defs.WaveDefinition {
	baseCount := len(base)
	cyclePosition := index % baseCount
	cycleNumber := index / baseCount
	scaleFactor := 1 + float64(cycleNumber)*config.EndlessCycleScale + float64(cyclePosition)*config.EndlessPositionScale

	def := base[cyclePosition].Clone()
	def.WaveNumber = index + 1

	delayShrink := float64(cycleNumber) * config.EndlessDelayStepMs
	for i := range def.Enemies {
		count := int(math.Round(float64(def.Enemies[i].Count) * scaleFactor))
		if count < 1 && def.Enemies[i].Count > 0 {
			count = 1
		}
		def.Enemies[i].Count = count

		delay := def.Enemies[i].SpawnDelay - delayShrink
		if delay < config.MinSpawnDelayMs {
			delay = config.MinSpawnDelayMs
		}
		def.Enemies[i].SpawnDelay = delay
	}

	startDelay := def.StartDelay - delayShrink
	if startDelay < config.MinStartDelayMs {
		startDelay = config.MinStartDelayMs
	}
	def.StartDelay = startDelay
	return def
}

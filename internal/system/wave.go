// internal/system/wave.go
package system

import (
	"log"

	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/utils"
)

// WaveState — состояние машины волн.
type WaveState int

const (
	StateIdle WaveState = iota
	StateCountdown
	StateSpawning
	StateWaitingForClear
	StateComplete
)

func (s WaveState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateCountdown:
		return "COUNTDOWN"
	case StateSpawning:
		return "SPAWNING"
	case StateWaitingForClear:
		return "WAITING_FOR_CLEAR"
	case StateComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// validTransitions — таблица допустимых переходов. Недопустимый переход
// логируется и игнорируется, состояние не меняется.
var validTransitions = map[WaveState][]WaveState{
	StateIdle:            {StateCountdown},
	StateCountdown:       {StateSpawning, StateIdle},
	StateSpawning:        {StateWaitingForClear, StateIdle},
	StateWaitingForClear: {StateCountdown, StateComplete, StateIdle},
	StateComplete:        {StateIdle},
}

// WaveStatus — снимок состояния для UI и тестов.
type WaveStatus struct {
	State                WaveState
	CurrentWave          int // номер волны, 1-based; 0 — волны не начинались
	Spawned              int
	Killed               int
	Leaked               int
	QueuedSpawns         int
	CountdownRemainingMs float64
}

// TotalStats — накопленные итоги по всем завершённым волнам.
type TotalStats struct {
	WavesCompleted int
	TotalSpawned   int
	TotalKilled    int
	TotalLeaked    int
}

// WaveManager владеет определениями волн, таймером отсчёта и очередью
// спавна; командует внешним менеджером врагов и судит о завершении волны
// по трём независимым признакам: очередь пуста, killed+leaked >= spawned
// и менеджер врагов сообщает ноль активных врагов. Все три обязательны:
// счётчики могут расходиться на кадр, пока враг "в полёте" между
// спавном и смертью.
type WaveManager struct {
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService

	enemyMgr   interfaces.EnemyManager
	killSub    event.Subscription
	leakSub    event.Subscription
	subscribed bool

	waves     []defs.WaveDefinition
	scaling   defs.DifficultyScaling
	spawnMode defs.SpawnMode
	pathID    int
	endless   bool
	paused    bool

	state            WaveState
	currentWaveIndex int // 0-based индекс текущей волны
	spawnQueue       []SpawnQueueEntry
	waveElapsedMs    float64

	countdownDurationMs float64
	countdownElapsedMs  float64
	lastTick            int

	waveSpawned int
	waveKilled  int
	waveLeaked  int
	totals      TotalStats
}

// NewWaveManager создаёт менеджер в состоянии IDLE с волнами по умолчанию
// и нормальной сложностью.
func NewWaveManager(dispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveManager {
	return &WaveManager{
		dispatcher: dispatcher,
		rng:        rng,
		waves:      defs.DefaultWaves,
		scaling:    defs.ResolveDifficulty(defs.DifficultyNormal),
		spawnMode:  defs.SpawnSequential,
		state:      StateIdle,
	}
}

// On подписывает обработчик на события жизненного цикла волн.
func (m *WaveManager) On(eventType event.EventType, handler event.Handler) event.Subscription {
	return m.dispatcher.Subscribe(eventType, handler)
}

// Off отписывает обработчик по дескриптору.
func (m *WaveManager) Off(sub event.Subscription) {
	m.dispatcher.Unsubscribe(sub)
}

// SetWaves задаёт список волн. Пустой список — ошибка конфигурации,
// которую вызывающий обязан исправить до старта, поэтому паника.
// Вырожденные волны (без групп, с неположительными count) принимаются
// с предупреждением и деградируют до мгновенно завершающихся.
func (m *WaveManager) SetWaves(waves []defs.WaveDefinition) {
	if len(waves) == 0 {
		panic("WaveManager.SetWaves: пустой список волн")
	}
	for i, w := range waves {
		if len(w.Enemies) == 0 {
			log.Printf("WaveManager: волна %d не содержит групп врагов, будет no-op", i+1)
			continue
		}
		for j, g := range w.Enemies {
			if g.Count <= 0 {
				log.Printf("WaveManager: волна %d, группа %d: count=%d, группа будет пропущена", i+1, j+1, g.Count)
			}
		}
	}
	m.waves = make([]defs.WaveDefinition, len(waves))
	copy(m.waves, waves)
}

// SetDifficulty задаёт произвольные множители сложности как есть.
func (m *WaveManager) SetDifficulty(scaling defs.DifficultyScaling) {
	m.scaling = scaling
}

// SetDifficultyPreset задаёт именованный уровень сложности
// (неизвестный деградирует до normal с предупреждением).
func (m *WaveManager) SetDifficultyPreset(preset defs.DifficultyPreset) {
	m.scaling = defs.ResolveDifficulty(preset)
}

// SetSpawnMode выбирает алгоритм построения очереди спавна.
func (m *WaveManager) SetSpawnMode(mode defs.SpawnMode) {
	m.spawnMode = mode
}

// SetPathID задаёт маршрут, на который выпускаются враги.
func (m *WaveManager) SetPathID(pathID int) {
	m.pathID = pathID
}

// SetEndless включает бесконечный режим: после последней определённой
// волны синтезируются всё более тяжёлые копии базовых.
func (m *WaveManager) SetEndless(endless bool) {
	m.endless = endless
}

// SetEnemyManager подключает менеджер врагов и переподписывается на его
// уведомления об убийствах и утечках.
func (m *WaveManager) SetEnemyManager(mgr interfaces.EnemyManager) {
	if m.subscribed && m.enemyMgr != nil {
		m.enemyMgr.Events().Unsubscribe(m.killSub)
		m.enemyMgr.Events().Unsubscribe(m.leakSub)
		m.subscribed = false
	}
	m.enemyMgr = mgr
	if mgr == nil {
		return
	}
	m.killSub = mgr.Events().Subscribe(event.EnemyKilled, func(event.Event) {
		m.waveKilled++
	})
	m.leakSub = mgr.Events().Subscribe(event.EnemyReachedEnd, func(event.Event) {
		m.waveLeaked++
	})
	m.subscribed = true
}

// Start запускает последовательность волн. Допустим только из
// неактивного состояния (IDLE или COMPLETE); иначе предупреждение и no-op.
func (m *WaveManager) Start() {
	if m.state != StateIdle && m.state != StateComplete {
		log.Printf("WaveManager: Start из активного состояния %s игнорируется", m.state)
		return
	}
	if m.enemyMgr == nil {
		log.Printf("WaveManager: Start без менеджера врагов игнорируется")
		return
	}
	if m.state == StateComplete {
		m.transition(StateIdle)
	}
	m.totals = TotalStats{}
	m.currentWaveIndex = 0
	m.waveSpawned, m.waveKilled, m.waveLeaked = 0, 0, 0
	m.spawnQueue = nil
	m.beginCountdown(config.InterWaveDelayMs)
}

// Stop принудительно возвращает машину в IDLE и выбрасывает очередь
// неспавненных врагов. Отмена синхронная: ничего "в полёте" нет.
func (m *WaveManager) Stop() {
	if m.state == StateIdle {
		return
	}
	m.spawnQueue = nil
	m.transition(StateIdle)
}

// Pause ставит менеджер на паузу: Update становится no-op без потери
// состояния. Боевую систему пауза не затрагивает — хост решает,
// какие системы замораживать вместе.
func (m *WaveManager) Pause() {
	m.paused = true
}

// Resume снимает паузу.
func (m *WaveManager) Resume() {
	m.paused = false
}

// IsPaused сообщает, стоит ли менеджер на паузе.
func (m *WaveManager) IsPaused() bool {
	return m.paused
}

// Update продвигает машину волн. deltaTime нормализован: 1.0 — один
// номинальный кадр 60 Гц; внутри таймеры считают в миллисекундах.
func (m *WaveManager) Update(deltaTime float64) {
	if m.paused {
		return
	}
	deltaMs := deltaTime * config.FrameTimeMs

	switch m.state {
	case StateCountdown:
		m.updateCountdown(deltaMs)
	case StateSpawning:
		m.updateSpawning(deltaMs)
	case StateWaitingForClear:
		m.checkWaveComplete()
	}
}

// UpdateCallback возвращает замыкание для регистрации в цикле хоста.
func (m *WaveManager) UpdateCallback() func(deltaTime float64) {
	return m.Update
}

// State возвращает снимок текущего состояния.
func (m *WaveManager) State() WaveStatus {
	status := WaveStatus{
		State:        m.state,
		Spawned:      m.waveSpawned,
		Killed:       m.waveKilled,
		Leaked:       m.waveLeaked,
		QueuedSpawns: len(m.spawnQueue),
	}
	if m.state != StateIdle {
		status.CurrentWave = m.currentWaveIndex + 1
	}
	if m.state == StateCountdown {
		remaining := m.countdownDurationMs - m.countdownElapsedMs
		if remaining < 0 {
			remaining = 0
		}
		status.CountdownRemainingMs = remaining
	}
	return status
}

// TotalStats возвращает накопленные итоги завершённых волн.
func (m *WaveManager) TotalStats() TotalStats {
	return m.totals
}

// transition выполняет переход состояния по таблице; недопустимый
// переход логируется и игнорируется.
func (m *WaveManager) transition(to WaveState) bool {
	for _, allowed := range validTransitions[m.state] {
		if allowed == to {
			m.state = to
			return true
		}
	}
	log.Printf("WaveManager: недопустимый переход %s -> %s игнорируется", m.state, to)
	return false
}

// beginCountdown запускает отсчёт перед волной currentWaveIndex.
func (m *WaveManager) beginCountdown(durationMs float64) {
	if !m.transition(StateCountdown) {
		return
	}
	m.countdownDurationMs = durationMs
	m.countdownElapsedMs = 0
	m.lastTick = 0
	m.dispatcher.Dispatch(event.Event{Type: event.CountdownStarted, Data: event.CountdownStartedPayload{
		WaveNumber: m.currentWaveIndex + 1,
		DurationMs: durationMs,
	}})
}

// updateCountdown тикает отсчётом. Тики фронтовые: событие уходит на
// каждое пересечение целой границы floor(elapsed/tick) — ровно одно на
// интервал даже при больших скачках deltaTime.
func (m *WaveManager) updateCountdown(deltaMs float64) {
	m.countdownElapsedMs += deltaMs

	tickIndex := int(m.countdownElapsedMs / config.CountdownTickMs)
	maxTicks := int(m.countdownDurationMs / config.CountdownTickMs)
	if tickIndex > maxTicks {
		tickIndex = maxTicks
	}
	for t := m.lastTick + 1; t <= tickIndex; t++ {
		remaining := m.countdownDurationMs - float64(t)*config.CountdownTickMs
		if remaining < 0 {
			remaining = 0
		}
		m.dispatcher.Dispatch(event.Event{Type: event.CountdownTick, Data: event.CountdownTickPayload{
			WaveNumber:  m.currentWaveIndex + 1,
			Tick:        t,
			RemainingMs: remaining,
		}})
	}
	m.lastTick = tickIndex

	if m.countdownElapsedMs >= m.countdownDurationMs {
		if m.transition(StateSpawning) {
			m.beginWave()
		}
	}
}

// beginWave строит очередь спавна текущей волны и начинает её выпуск.
// Ненулевой startDelay кодируется отрицательным стартовым временем волны,
// так что спавн естественно подавлен, пока часы не перейдут через ноль.
func (m *WaveManager) beginWave() {
	def := m.resolveWaveDefinition(m.currentWaveIndex)
	scaled := ScaleWaveDefinition(def, m.scaling)
	m.spawnQueue = BuildSpawnQueue(scaled, m.spawnMode, m.rng)
	m.waveElapsedMs = -scaled.StartDelay
	m.waveSpawned, m.waveKilled, m.waveLeaked = 0, 0, 0

	m.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStartedPayload{
		WaveNumber:   m.currentWaveIndex + 1,
		TotalEnemies: len(m.spawnQueue),
	}})
}

// resolveWaveDefinition возвращает определённую волну или синтезирует
// бесконечную за пределами списка.
func (m *WaveManager) resolveWaveDefinition(index int) defs.WaveDefinition {
	if index < len(m.waves) {
		return m.waves[index]
	}
	return SynthesizeEndlessWave(m.waves, index)
}

// updateSpawning выпускает всех врагов, чьё время подошло. Цикл, а не
// одиночный выстрел: после большого провала кадра нужно догнать очередь.
func (m *WaveManager) updateSpawning(deltaMs float64) {
	m.waveElapsedMs += deltaMs

	for len(m.spawnQueue) > 0 && m.spawnQueue[0].SpawnTime <= m.waveElapsedMs {
		entry := m.spawnQueue[0]
		m.spawnQueue = m.spawnQueue[1:]

		id := m.enemyMgr.SpawnEnemy(entry.Type, m.pathID)
		m.waveSpawned++
		m.dispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedPayload{
			WaveNumber: m.currentWaveIndex + 1,
			EnemyType:  entry.Type,
			EnemyID:    id,
			Spawned:    m.waveSpawned,
		}})
	}

	if len(m.spawnQueue) == 0 {
		if m.transition(StateWaitingForClear) {
			m.checkWaveComplete()
		}
	}
}

// checkWaveComplete применяет трёхчастный предикат завершения волны.
func (m *WaveManager) checkWaveComplete() {
	if len(m.spawnQueue) != 0 {
		return
	}
	if m.waveKilled+m.waveLeaked < m.waveSpawned {
		return
	}
	if m.enemyMgr.ActiveEnemyCount() > 0 {
		return
	}
	m.completeWave()
}

// completeWave фиксирует итоги волны и либо запускает отсчёт следующей,
// либо завершает всю последовательность.
func (m *WaveManager) completeWave() {
	m.totals.WavesCompleted++
	m.totals.TotalSpawned += m.waveSpawned
	m.totals.TotalKilled += m.waveKilled
	m.totals.TotalLeaked += m.waveLeaked

	m.dispatcher.Dispatch(event.Event{Type: event.WaveCompleted, Data: event.WaveCompletedPayload{
		WaveNumber: m.currentWaveIndex + 1,
		Spawned:    m.waveSpawned,
		Killed:     m.waveKilled,
		Leaked:     m.waveLeaked,
	}})

	lastDefined := m.currentWaveIndex >= len(m.waves)-1
	if lastDefined && !m.endless {
		if m.transition(StateComplete) {
			m.dispatcher.Dispatch(event.Event{Type: event.AllWavesCompleted, Data: event.AllWavesCompletedPayload{
				TotalWaves:   m.totals.WavesCompleted,
				TotalSpawned: m.totals.TotalSpawned,
				TotalKilled:  m.totals.TotalKilled,
				TotalLeaked:  m.totals.TotalLeaked,
			}})
		}
		return
	}

	m.currentWaveIndex++
	m.beginCountdown(config.InterWaveDelayMs)
}

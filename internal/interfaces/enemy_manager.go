// internal/interfaces/enemy_manager.go
package interfaces

import (
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
)

// EnemyManager — внешний владелец врагов, которым командует менеджер волн.
// Уведомления об убийствах и утечках приходят через его диспетчер событий
// (event.EnemyKilled / event.EnemyReachedEnd); менеджер волн переподписывается
// при каждой смене менеджера врагов.
type EnemyManager interface {
	// SpawnEnemy выпускает врага указанного типа на маршрут pathID и
	// возвращает его идентификатор. Неизвестный тип врага — ошибка
	// конфигурации разработчика, реализация обязана паниковать.
	SpawnEnemy(enemyType string, pathID int) types.EntityID

	// ActiveEnemyCount — сколько врагов сейчас живо на карте.
	ActiveEnemyCount() int

	// Events — диспетчер, в который менеджер публикует kill/leak события.
	Events() *event.Dispatcher
}

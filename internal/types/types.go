// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в рамках одного запуска игры.
type EntityID uint64

// IDGenerator выдаёт монотонно возрастающие идентификаторы.
// Каждый менеджер, создающий сущности, владеет собственным экземпляром —
// никаких глобальных счётчиков, чтобы тесты были детерминированными.
type IDGenerator struct {
	next EntityID
}

// NewIDGenerator создаёт генератор, начинающий с 1 (0 — зарезервировано как "нет сущности").
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next возвращает следующий свободный идентификатор.
func (g *IDGenerator) Next() EntityID {
	id := g.next
	g.next++
	return id
}

// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Handler — функция-подписчик на события.
type Handler func(Event)

// Subscription — непрозрачный дескриптор подписки. Отписка выполняется
// по дескриптору, а не по сравнению подписчиков: замыкания в Go несравнимы.
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Dispatcher — диспетчер событий. Хранит упорядоченные списки подписчиков
// по каждому типу события; порядок вызова совпадает с порядком подписки.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
		nextID:    1,
	}
}

// Subscribe — подписка на событие. Возвращает дескриптор для отписки.
func (d *Dispatcher) Subscribe(eventType EventType, handler Handler) Subscription {
	id := d.nextID
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: id, handler: handler})
	return Subscription{eventType: eventType, id: id}
}

// Unsubscribe — отписка по дескриптору. Неизвестный дескриптор игнорируется.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	listeners, exists := d.listeners[sub.eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l.id == sub.id {
			d.listeners[sub.eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, l := range d.listeners[event.Type] {
		l.handler(event)
	}
}

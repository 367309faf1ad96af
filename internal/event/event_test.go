// internal/event/event_test.go
package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcher_OrderedDelivery(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe("test", func(Event) { order = append(order, 1) })
	d.Subscribe("test", func(Event) { order = append(order, 2) })
	d.Subscribe("test", func(Event) { order = append(order, 3) })

	d.Dispatch(Event{Type: "test"})

	assert.Equal(t, []int{1, 2, 3}, order, "порядок вызова совпадает с порядком подписки")
}

func TestDispatcher_PayloadDelivered(t *testing.T) {
	d := NewDispatcher()
	var got interface{}
	d.Subscribe(EnemyKilled, func(e Event) { got = e.Data })

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledPayload{Reward: 25}})

	assert.Equal(t, EnemyKilledPayload{Reward: 25}, got)
}

func TestDispatcher_UnsubscribeByHandle(t *testing.T) {
	d := NewDispatcher()
	calls := map[string]int{}
	subA := d.Subscribe("test", func(Event) { calls["a"]++ })
	d.Subscribe("test", func(Event) { calls["b"]++ })

	d.Dispatch(Event{Type: "test"})
	d.Unsubscribe(subA)
	d.Dispatch(Event{Type: "test"})

	assert.Equal(t, 1, calls["a"])
	assert.Equal(t, 2, calls["b"])
}

func TestDispatcher_ClosuresGetDistinctHandles(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	handler := func(Event) { calls++ }

	// Один и тот же обработчик подписан дважды — отписывается только
	// тот экземпляр, чей дескриптор передан.
	subA := d.Subscribe("test", handler)
	_ = d.Subscribe("test", handler)
	d.Unsubscribe(subA)

	d.Dispatch(Event{Type: "test"})
	assert.Equal(t, 1, calls)
}

func TestDispatcher_UnknownHandleIgnored(t *testing.T) {
	d := NewDispatcher()
	d.Unsubscribe(Subscription{eventType: "nope", id: 99})

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: "nobody-listens"})
	})
}

func TestDispatcher_TypesAreIsolated(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(WaveStarted, func(Event) { calls++ })

	d.Dispatch(Event{Type: WaveCompleted})
	assert.Equal(t, 0, calls)

	d.Dispatch(Event{Type: WaveStarted})
	assert.Equal(t, 1, calls)
}

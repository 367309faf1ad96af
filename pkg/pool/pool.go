// pkg/pool/pool.go
package pool

import "log"

// Resettable — пулируемый тип, который умеет возвращать себя в исходное
// состояние. Проверяется на этапе компиляции, а не поиском метода в рантайме.
type Resettable interface {
	Reset()
}

// Poolable — ограничение для New: тип должен быть сравнимым (для учёта
// активных объектов) и сбрасываемым.
type Poolable interface {
	comparable
	Resettable
}

// Pool — универсальный пул переиспользуемых объектов. Цель — убрать
// аллокации в горячем цикле кадра: Acquire берёт готовый объект из списка
// свободных или создаёт новый через фабрику, Release сбрасывает объект и
// возвращает его в список.
//
// Ограничен только список свободных (maxSize); количество одновременно
// активных объектов не лимитируется.
type Pool[T comparable] struct {
	factory   func() T
	reset     func(T)
	available []T
	active    map[T]struct{}
	maxSize   int
}

// New создаёт пул для типов, реализующих Resettable.
func New[T Poolable](factory func() T, initialSize, maxSize int) *Pool[T] {
	return NewWithReset[T](factory, initialSize, maxSize, func(obj T) { obj.Reset() })
}

// NewWithReset создаёт пул с явным хуком сброса — для типов, которые
// нельзя научить Reset (например, чужие структуры).
func NewWithReset[T comparable](factory func() T, initialSize, maxSize int, reset func(T)) *Pool[T] {
	if initialSize > maxSize {
		initialSize = maxSize
	}
	p := &Pool[T]{
		factory:   factory,
		reset:     reset,
		available: make([]T, 0, maxSize),
		active:    make(map[T]struct{}),
		maxSize:   maxSize,
	}
	for i := 0; i < initialSize; i++ {
		p.available = append(p.available, factory())
	}
	return p
}

// Acquire возвращает объект из списка свободных или создаёт новый.
func (p *Pool[T]) Acquire() T {
	var obj T
	if n := len(p.available); n > 0 {
		obj = p.available[n-1]
		p.available = p.available[:n-1]
	} else {
		obj = p.factory()
	}
	p.active[obj] = struct{}{}
	return obj
}

// Release сбрасывает объект и возвращает его в список свободных.
// Объект, который не выдавался этим пулом, отклоняется с предупреждением.
// Если список свободных уже полон, объект просто отбрасывается.
func (p *Pool[T]) Release(obj T) {
	if _, ok := p.active[obj]; !ok {
		log.Printf("pool: попытка вернуть чужой объект, игнорируется")
		return
	}
	delete(p.active, obj)
	if p.reset != nil {
		p.reset(obj)
	}
	if len(p.available) < p.maxSize {
		p.available = append(p.available, obj)
	}
}

// ReleaseAll возвращает в пул все активные объекты.
func (p *Pool[T]) ReleaseAll() {
	for obj := range p.active {
		delete(p.active, obj)
		if p.reset != nil {
			p.reset(obj)
		}
		if len(p.available) < p.maxSize {
			p.available = append(p.available, obj)
		}
	}
}

// Prewarm доводит суммарное количество объектов пула до min(target, maxSize),
// создавая недостающие в списке свободных.
func (p *Pool[T]) Prewarm(target int) {
	if target > p.maxSize {
		target = p.maxSize
	}
	for len(p.available)+len(p.active) < target && len(p.available) < p.maxSize {
		p.available = append(p.available, p.factory())
	}
}

// AvailableCount возвращает количество свободных объектов.
func (p *Pool[T]) AvailableCount() int {
	return len(p.available)
}

// ActiveCount возвращает количество выданных объектов.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

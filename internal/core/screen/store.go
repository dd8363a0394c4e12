package screen

import (
	"slices"
	"sync"
)

// store владеет одним состоянием экрана и применяет к нему редьюсер.
// Замена состояния атомарна: читатели видят только целые снимки,
// подписчики получают снимки в том же порядке, в котором они были применены.
type store[S any, E any, F any] struct {
	dispatchMu sync.Mutex // сериализует reduce + уведомление подписчиков

	mu        sync.RWMutex
	state     S
	listeners []func(S)

	reduce func(S, E) (S, []F)
}

func newStore[S any, E any, F any](initial S, reduce func(S, E) (S, []F)) *store[S, E, F] {
	return &store[S, E, F]{state: initial, reduce: reduce}
}

func (s *store[S, E, F]) snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// subscribe: подписчик не должен синхронно отправлять события в этот же store
func (s *store[S, E, F]) subscribe(fn func(S)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *store[S, E, F]) dispatch(event E) []F {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	next, effects := s.reduce(s.state, event)
	s.state = next
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return effects
}

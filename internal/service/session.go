package service

import "sync"

// sessions keeps one workflow session per operator
type sessions[T any] struct {
	mu    sync.Mutex
	items map[string]*T
	newFn func() *T
}

func newSessions[T any](newFn func() *T) *sessions[T] {
	return &sessions[T]{
		items: make(map[string]*T),
		newFn: newFn,
	}
}

// get returns session of operator, creating it on first use
func (s *sessions[T]) get(operator string) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[operator]
	if !ok {
		sess = s.newFn()
		s.items[operator] = sess
	}
	return sess
}

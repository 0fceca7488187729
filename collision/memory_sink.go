package collision

import (
	"sync"
)

type MemorySink struct {
	mu     sync.Mutex
	ids    map[uint64]struct{}
	closed bool
}

func NewMemorySink() *MemorySink {
	return &MemorySink{ids: make(map[uint64]struct{})}
}

func (s *MemorySink) Record(id uint64) (bool, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrSinkClosed
	}

	if _, ok := s.ids[id]; ok {
		return false, nil
	}

	s.ids[id] = struct{}{}
	return true, nil
}

func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *MemorySink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.ids = nil
	return nil
}

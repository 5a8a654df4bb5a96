package checkout

import "sync"

// Sessions maps session ids to wizard machines, created on first use.
type Sessions struct {
	mu       sync.Mutex
	machines map[string]*Machine
}

func NewSessions() *Sessions {
	return &Sessions{machines: make(map[string]*Machine)}
}

func (s *Sessions) With(sessionID string, fn func(m *Machine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[sessionID]
	if !ok {
		m = New()
		s.machines[sessionID] = m
	}
	fn(m)
}

func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.machines, sessionID)
}

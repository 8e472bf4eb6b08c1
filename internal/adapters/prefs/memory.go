package prefs

import (
	"context"
	"sync"
)

// Memory is a process local KV, used when persistence is off and in tests
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory returns an empty store
func NewMemory() *Memory { return &Memory{m: map[string]string{}} }

// Get implements KV
func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Set implements KV
func (s *Memory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = map[string]string{}
	}
	s.m[key] = value
	return nil
}

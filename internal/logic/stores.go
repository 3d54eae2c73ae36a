package logic

import (
	"sort"
	"sync"

	"pastelines/internal/domain"
)

// MemorySelectionStore is an in-memory implementation of SelectionStore
type MemorySelectionStore struct {
	mu         sync.RWMutex
	selections map[int]domain.Selection
}

// NewMemorySelectionStore creates an empty selection store
func NewMemorySelectionStore() *MemorySelectionStore {
	return &MemorySelectionStore{
		selections: make(map[int]domain.Selection),
	}
}

func (s *MemorySelectionStore) Get(fileIndex int) (domain.Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel, ok := s.selections[fileIndex]
	return sel, ok
}

// Set overwrites any prior range for the selection's file
func (s *MemorySelectionStore) Set(sel domain.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[sel.FileIndex] = sel
}

// All returns a snapshot ordered by file index, so encoding it is stable
func (s *MemorySelectionStore) All() []domain.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Selection, 0, len(s.selections))
	for _, sel := range s.selections {
		result = append(result, sel)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].FileIndex < result[j].FileIndex
	})
	return result
}

func (s *MemorySelectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selections)
}

func (s *MemorySelectionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = make(map[int]domain.Selection)
}

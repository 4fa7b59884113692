package repositories

import (
	"sync"
	"time"

	"shopapi/internal/models"
)

// MockHistoryRepository is an in-memory implementation of HistoryRepository.
type MockHistoryRepository struct {
	entries []models.HistoryAction
	nextID  uint
	mu      sync.RWMutex
}

// NewMockHistoryRepository creates a new instance of MockHistoryRepository.
func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{
		nextID: 1,
	}
}

// Create appends one audit record.
func (r *MockHistoryRepository) Create(entry *models.HistoryAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == 0 {
		entry.ID = r.nextID
		r.nextID++
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

// GetAll returns the audit trail, newest first.
func (r *MockHistoryRepository) GetAll() ([]models.HistoryAction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.HistoryAction, len(r.entries))
	for i, entry := range r.entries {
		list[len(r.entries)-1-i] = entry
	}
	return list, nil
}

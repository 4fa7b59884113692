package repositories

import "shopapi/internal/models"

// HistoryRepository defines the interface for the append-only audit trail.
type HistoryRepository interface {
	Create(entry *models.HistoryAction) error
	// GetAll returns every audit record, newest first.
	GetAll() ([]models.HistoryAction, error)
}

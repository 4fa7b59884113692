package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"shopapi/internal/models"
)

// GORMHistoryRepository is a GORM implementation of HistoryRepository.
type GORMHistoryRepository struct {
	db *gorm.DB
}

// NewGORMHistoryRepository creates a new instance of GORMHistoryRepository.
func NewGORMHistoryRepository(db *gorm.DB) *GORMHistoryRepository {
	return &GORMHistoryRepository{
		db: db,
	}
}

// Create appends one audit record.
func (r *GORMHistoryRepository) Create(entry *models.HistoryAction) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}
	return nil
}

// GetAll retrieves the audit trail, newest first.
func (r *GORMHistoryRepository) GetAll() ([]models.HistoryAction, error) {
	var entries []models.HistoryAction
	if err := r.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return entries, nil
}

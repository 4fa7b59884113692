package services_test

import (
	"errors"
	"testing"

	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/services"

	"github.com/stretchr/testify/assert"
)

// failingHistoryRepo rejects every write, to prove failures stay on the
// logger's side.
type failingHistoryRepo struct{}

func (failingHistoryRepo) Create(*models.HistoryAction) error {
	return errors.New("audit store unavailable")
}

func (failingHistoryRepo) GetAll() ([]models.HistoryAction, error) {
	return nil, nil
}

func TestHistoryLogger_DrainsOnClose(t *testing.T) {
	historyRepo := repositories.NewMockHistoryRepository()
	logger := services.NewHistoryLogger(historyRepo)

	for i := 0; i < 10; i++ {
		logger.Log("user-1", uint(i+1), models.ActionUpdate, map[string]interface{}{"i": i})
	}
	logger.Close()

	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 10)
	// Newest first.
	assert.Equal(t, uint(10), entries[0].ProductID)
}

func TestHistoryLogger_SwallowsWriteFailures(t *testing.T) {
	logger := services.NewHistoryLogger(failingHistoryRepo{})

	// Log never surfaces the repository failure to the caller.
	logger.Log("user-1", 1, models.ActionDelete, nil)
	logger.Close()
}

func TestHistoryLogger_RecordsMarshaledDetails(t *testing.T) {
	historyRepo := repositories.NewMockHistoryRepository()
	logger := services.NewHistoryLogger(historyRepo)

	logger.Log("user-1", 7, models.ActionStatusChange, map[string]interface{}{"status": "hidden"})
	logger.Close()

	entries, err := historyRepo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "user-1", entries[0].UserID)
	assert.Equal(t, uint(7), entries[0].ProductID)
	assert.JSONEq(t, `{"status": "hidden"}`, entries[0].Details)
}

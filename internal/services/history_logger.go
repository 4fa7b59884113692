package services

import (
	"encoding/json"
	"log"
	"time"

	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// HistoryLogger appends audit records for product mutations as a best-effort
// side channel. Log never fails the caller: entries go through a buffered
// channel to a single worker goroutine, and any failure only reaches the
// operational log.
type HistoryLogger struct {
	repo    repositories.HistoryRepository
	entries chan models.HistoryAction
	done    chan struct{}
}

// NewHistoryLogger creates a HistoryLogger and starts its worker.
func NewHistoryLogger(repo repositories.HistoryRepository) *HistoryLogger {
	h := &HistoryLogger{
		repo:    repo,
		entries: make(chan models.HistoryAction, 64),
		done:    make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *HistoryLogger) run() {
	for entry := range h.entries {
		if err := h.repo.Create(&entry); err != nil {
			log.Printf("history: failed to record %s for product %d: %v", entry.Action, entry.ProductID, err)
		}
	}
	close(h.done)
}

// Log enqueues one audit record. Details is marshaled to JSON; a marshal
// failure or a full buffer drops the record with an operational log line.
func (h *HistoryLogger) Log(userID string, productID uint, action string, details interface{}) {
	body, err := json.Marshal(details)
	if err != nil {
		log.Printf("history: failed to marshal details for %s on product %d: %v", action, productID, err)
		body = nil
	}

	entry := models.HistoryAction{
		UserID:    userID,
		ProductID: productID,
		Action:    action,
		Details:   string(body),
		CreatedAt: time.Now(),
	}

	select {
	case h.entries <- entry:
	default:
		log.Printf("history: buffer full, dropping %s for product %d", action, productID)
	}
}

// GetHistory returns the audit trail, newest first.
func (h *HistoryLogger) GetHistory() ([]models.HistoryAction, error) {
	return h.repo.GetAll()
}

// Close stops the worker after draining pending entries.
func (h *HistoryLogger) Close() {
	close(h.entries)
	<-h.done
}

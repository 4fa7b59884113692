package models

import "time"

// Actions recorded in the product audit trail.
const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionStatusChange = "status_change"
)

// HistoryAction is one append-only audit record of a product mutation.
// Details holds a free-form JSON blob describing the mutation.
type HistoryAction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36)"`
	ProductID uint      `json:"product_id"`
	Action    string    `json:"action" gorm:"type:varchar(20)"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

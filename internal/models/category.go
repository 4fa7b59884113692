package models

// Category is immutable reference data for grouping products.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(100)"`
	Description string `json:"description" gorm:"type:varchar(500)"`
	Image       string `json:"image"`
}

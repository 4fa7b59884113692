package models

import "time"

// Product represents a product in the store. The category and added-at
// columns keep their historical camelCase spelling.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100)"`
	Price       float64   `json:"price"`
	CategoryID  *uint     `json:"categoryId" gorm:"column:categoryId"`
	AddedAt     time.Time `json:"addedAt" gorm:"column:addedAt"`
	Image       string    `json:"image"`
	Description string    `json:"description" gorm:"type:varchar(500)"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status" gorm:"type:varchar(20)"`
}

// ProductSummary is the reduced projection returned by product search.
type ProductSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

package models

// CartItem is one row of a user's cart. The (UserID, ProductID) pair is the
// primary key; adding the same product again accumulates Quantity instead of
// inserting a second row.
type CartItem struct {
	UserID    string  `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID uint    `json:"product_id" gorm:"primaryKey"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"products" gorm:"foreignKey:ProductID"`
}

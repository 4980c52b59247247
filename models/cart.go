package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a denormalized snapshot of a product at add-to-cart time.
// One line per (product, size) pair within a cart.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index:idx_cart_product_size,unique" json:"cart_id"`
	ProductID    uint      `gorm:"index:idx_cart_product_size,unique" json:"productId"`
	Size         string    `gorm:"index:idx_cart_product_size,unique" json:"size"`
	ProductName  string    `json:"productName"`
	ProductImage string    `json:"productImage"`
	UnitPrice    float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

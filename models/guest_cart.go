package models

import "time"

// GuestCart holds the anonymous cart until the guest signs in, at which
// point its lines are merged into the user cart and the guest cart deleted.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"` // Enforces ONE cart per guest
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type GuestCartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index:idx_guest_cart_product_size,unique" json:"cart_id"`
	ProductID    uint      `gorm:"index:idx_guest_cart_product_size,unique" json:"productId"`
	Size         string    `gorm:"index:idx_guest_cart_product_size,unique" json:"size"`
	ProductName  string    `json:"productName"`
	ProductImage string    `json:"productImage"`
	UnitPrice    float64   `json:"price"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

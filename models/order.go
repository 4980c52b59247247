package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending     OrderStatus = "pending"       // Order placed, awaiting confirmation
	OrderStatusConfirmed   OrderStatus = "confirmed"     // Confirmed by seller
	OrderStatusReadyToShip OrderStatus = "ready_to_ship" // Packed and ready for dispatch
	OrderStatusShipped     OrderStatus = "shipped"       // Out for delivery
	OrderStatusDelivered   OrderStatus = "delivered"     // Customer received the item
	OrderStatusReturned    OrderStatus = "returned"      // Customer returned the item
	OrderStatusCancelled   OrderStatus = "cancelled"     // Cancelled before shipping

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

const (
	PaymentMethodCashOnDelivery = "cash_on_delivery"
	PaymentMethodBankTransfer   = "bank_transfer"
)

type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrderRef       string        `gorm:"uniqueIndex" json:"order_ref"`
	IdempotencyKey string        `gorm:"uniqueIndex" json:"-"`
	UserID         string        `gorm:"not null" json:"user_id"`
	User           User          `gorm:"foreignKey:UserID" json:"user"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	AddressLine1   string        `json:"addressLine1"`
	AddressLine2   string        `json:"addressLine2"`
	City           string        `json:"city"`
	State          string        `json:"state"`
	PostalCode     string        `json:"postalCode"`
	Country        string        `json:"country"`
	ShippingMethod string        `json:"shippingMethod"`
	ShippingCost   float64       `json:"shippingCost"`
	PaymentMethod  string        `json:"paymentMethod"`
	Notes          string        `json:"notes"`
	TotalAmount    float64       `json:"total_amount"`
	Status         OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt      time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"productId"`
	Size         string  `json:"size"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	UnitPrice    float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

package models

import "time"

type CheckoutStep string

const (
	CheckoutStepShipping CheckoutStep = "shipping"
	CheckoutStepPayment  CheckoutStep = "payment"
	CheckoutStepReview   CheckoutStep = "review"
)

// CheckoutSession is the server-held state of the shipping → payment →
// review wizard. One active session per user; the idempotency key is minted
// when the session starts so a confirm retry cannot create a second order.
type CheckoutSession struct {
	ID             string       `gorm:"primaryKey" json:"id"`
	UserID         string       `gorm:"uniqueIndex;not null" json:"user_id"`
	Step           CheckoutStep `gorm:"type:VARCHAR(20);default:'shipping'" json:"step"`
	IdempotencyKey string       `gorm:"uniqueIndex" json:"-"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	PostalCode     string       `json:"postalCode"`
	Notes          string       `json:"notes"`
	PaymentMethod  string       `json:"paymentMethod"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

package checkoutControllers

import (
	"errors"
	"strings"

	"github.com/thushan99/glemora/models"
)

var (
	ErrNotReviewStep = errors.New("order can only be placed from the review step")
	ErrEmptyCart     = errors.New("cart is empty")
)

// ShippingInput carries the shipping form. Every field except notes must be
// non-blank; format is not checked beyond presence.
type ShippingInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Notes      string `json:"notes"`
}

// MissingFields lists the required shipping fields that are blank.
func (s ShippingInput) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", s.FirstName},
		{"lastName", s.LastName},
		{"email", s.Email},
		{"phone", s.Phone},
		{"address", s.Address},
		{"city", s.City},
		{"postalCode", s.PostalCode},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// ValidPaymentMethod reports whether m is one of the supported offline
// payment methods.
func ValidPaymentMethod(m string) bool {
	return m == models.PaymentMethodCashOnDelivery || m == models.PaymentMethodBankTransfer
}

// CanConfirm checks the preconditions for placing the order.
func CanConfirm(step models.CheckoutStep, itemCount int) error {
	if step != models.CheckoutStepReview {
		return ErrNotReviewStep
	}
	if itemCount == 0 {
		return ErrEmptyCart
	}
	return nil
}

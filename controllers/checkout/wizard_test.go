package checkoutControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thushan99/glemora/models"
)

func validShipping() ShippingInput {
	return ShippingInput{
		FirstName:  "Nimali",
		LastName:   "Perera",
		Email:      "nimali@example.com",
		Phone:      "0771234567",
		Address:    "12 Galle Road",
		City:       "Colombo",
		PostalCode: "00300",
	}
}

func TestMissingFields_AllPresent(t *testing.T) {
	assert.Empty(t, validShipping().MissingFields())
}

func TestMissingFields_NotesIsOptional(t *testing.T) {
	s := validShipping()
	s.Notes = ""
	assert.Empty(t, s.MissingFields())
}

func TestMissingFields_EachRequiredField(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*ShippingInput)
	}{
		{"firstName", func(s *ShippingInput) { s.FirstName = "" }},
		{"lastName", func(s *ShippingInput) { s.LastName = "" }},
		{"email", func(s *ShippingInput) { s.Email = "" }},
		{"phone", func(s *ShippingInput) { s.Phone = "" }},
		{"address", func(s *ShippingInput) { s.Address = "" }},
		{"city", func(s *ShippingInput) { s.City = "" }},
		{"postalCode", func(s *ShippingInput) { s.PostalCode = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			s := validShipping()
			tc.mutate(&s)
			assert.Equal(t, []string{tc.field}, s.MissingFields())
		})
	}
}

func TestMissingFields_BlankMeansMissing(t *testing.T) {
	s := validShipping()
	s.PostalCode = "   "
	assert.Equal(t, []string{"postalCode"}, s.MissingFields())
}

func TestMissingFields_NoFormatValidation(t *testing.T) {
	// Presence is the only check: a nonsense email or phone still advances.
	s := validShipping()
	s.Email = "not-an-email"
	s.Phone = "call me"
	assert.Empty(t, s.MissingFields())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, ValidPaymentMethod(models.PaymentMethodCashOnDelivery))
	assert.True(t, ValidPaymentMethod(models.PaymentMethodBankTransfer))
	assert.False(t, ValidPaymentMethod("card"))
	assert.False(t, ValidPaymentMethod(""))
}

func TestCanConfirm(t *testing.T) {
	assert.NoError(t, CanConfirm(models.CheckoutStepReview, 2))

	assert.ErrorIs(t, CanConfirm(models.CheckoutStepShipping, 2), ErrNotReviewStep)
	assert.ErrorIs(t, CanConfirm(models.CheckoutStepPayment, 2), ErrNotReviewStep)
	assert.ErrorIs(t, CanConfirm(models.CheckoutStepReview, 0), ErrEmptyCart)

	// Step is checked before the cart, mirroring the wizard order.
	assert.ErrorIs(t, CanConfirm(models.CheckoutStepShipping, 0), ErrNotReviewStep)
}

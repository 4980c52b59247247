package checkoutControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thushan99/glemora/config"
	cartControllers "github.com/thushan99/glemora/controllers/cart"
	orderControllers "github.com/thushan99/glemora/controllers/order"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

func loadCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return cart, nil
	}
	return cart, err
}

func loadSession(db *gorm.DB, userID string) (models.CheckoutSession, error) {
	var sess models.CheckoutSession
	err := db.Where("user_id = ?", userID).First(&sess).Error
	return sess, err
}

// POST /checkout
//
// Starts (or resumes) the wizard. The cart must be non-empty; the client is
// pointed back at the cart view otherwise.
func StartCheckout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty", "redirect": "/cart"})
			return
		}

		sess, err := loadSession(db, userID)
		if err == gorm.ErrRecordNotFound {
			sess = models.CheckoutSession{
				ID:             uuid.NewString(),
				UserID:         userID,
				Step:           models.CheckoutStepShipping,
				IdempotencyKey: uuid.NewString(),
				CreatedAt:      time.Now(),
			}
			if err := db.Create(&sess).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout session"})
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

// PUT /checkout/shipping
func SubmitShipping(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		sess, err := loadSession(db, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
			return
		}

		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if missing := input.MissingFields(); len(missing) > 0 {
			// Step does not advance
			c.JSON(http.StatusBadRequest, gin.H{
				"error":         "Please fill in all required fields",
				"missingFields": missing,
			})
			return
		}

		sess.FirstName = input.FirstName
		sess.LastName = input.LastName
		sess.Email = input.Email
		sess.Phone = input.Phone
		sess.Address = input.Address
		sess.City = input.City
		sess.PostalCode = input.PostalCode
		sess.Notes = input.Notes
		sess.Step = models.CheckoutStepPayment

		if err := db.Save(&sess).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipping details"})
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// PUT /checkout/payment
func SubmitPayment(db *gorm.DB, cfg config.CheckoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		sess, err := loadSession(db, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
			return
		}
		if sess.Step == models.CheckoutStepShipping {
			c.JSON(http.StatusConflict, gin.H{"error": "Complete the shipping step first"})
			return
		}

		var input struct {
			PaymentMethod string `json:"paymentMethod" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !ValidPaymentMethod(input.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported payment method: " + input.PaymentMethod})
			return
		}

		sess.PaymentMethod = input.PaymentMethod
		sess.Step = models.CheckoutStepReview
		if err := db.Save(&sess).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment method"})
			return
		}

		resp := gin.H{"session": sess}
		if input.PaymentMethod == models.PaymentMethodBankTransfer {
			resp["bankDetails"] = gin.H{
				"accountName": cfg.BankAccountName,
				"accountNo":   cfg.BankAccountNo,
				"bankName":    cfg.BankName,
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GET /checkout
//
// The review snapshot: cart lines, shipping details, payment method, totals.
func GetCheckout(db *gorm.DB, cfg config.CheckoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		sess, err := loadSession(db, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session":      sess,
			"items":        cart.Items,
			"subtotal":     cartControllers.Subtotal(cart.Items).InexactFloat64(),
			"shippingCost": cfg.ShippingFlatRate,
			"total":        cartControllers.Total(cart.Items, cfg.ShippingFlatRate).InexactFloat64(),
		})
	}
}

// POST /checkout/confirm
func ConfirmCheckout(db *gorm.DB, cfg config.CheckoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		sess, err := loadSession(db, userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active checkout session"})
			return
		}

		cart, err := loadCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := CanConfirm(sess.Step, len(cart.Items)); err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "redirect": "/cart"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		order, err := orderControllers.PlaceOrderFromCheckout(db, sess, cfg.ShippingFlatRate, cfg.ShippingMethod)
		if err != nil {
			if errors.Is(err, orderControllers.ErrInsufficientStock) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			if errors.Is(err, orderControllers.ErrEmptyCart) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "redirect": "/cart"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		// The session is done; a retry after this point replays through the
		// idempotency key on the order itself.
		if err := db.Delete(&sess).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"id": order.ID, "orderRef": order.OrderRef, "message": "Order placed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":       order.ID,
			"orderRef": order.OrderRef,
			"message":  "Order placed",
		})
	}
}

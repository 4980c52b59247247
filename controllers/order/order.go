package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(strings.ToLower(status)) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusReadyToShip,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusReturned,
		models.OrderStatusCancelled:
		return models.OrderStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(strings.ToLower(status)) {
	case models.PaymentStatusPending, models.PaymentStatusPaid,
		models.PaymentStatusFailed, models.PaymentStatusRefunded:
		return models.PaymentStatus(strings.ToLower(status)), nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// generateOrderRef builds a unique, human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrderFromCheckout turns the user's cart into an order. Stock is
// locked and deducted per line inside one transaction and the cart is
// cleared on success. A replay carrying an idempotency key that already
// produced an order returns that order instead of creating a second one.
func PlaceOrderFromCheckout(db *gorm.DB, sess models.CheckoutSession, shippingCost float64, shippingMethod string) (*models.Order, error) {
	// Idempotent replay: the previous attempt may have committed even if
	// the client never saw the response.
	var existing models.Order
	err := db.Where("idempotency_key = ?", sess.IdempotencyKey).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var order models.Order

	err = db.Transaction(func(tx *gorm.DB) error {
		// Read the cart inside the transaction; a line added while the order
		// commits stays in the cart instead of being cleared unordered.
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", sess.UserID).First(&cart).Error; err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		subtotal := decimal.Zero
		var orderItems []models.OrderItem
		lineIDs := make([]uint, 0, len(cart.Items))

		for _, item := range cart.Items {
			lineIDs = append(lineIDs, item.ID)
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for product: %s", ErrInsufficientStock, item.ProductName)
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			subtotal = subtotal.Add(
				decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))

			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				Size:         item.Size,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				UnitPrice:    item.UnitPrice,
				Quantity:     item.Quantity,
			})
		}

		total, _ := subtotal.Add(decimal.NewFromFloat(shippingCost)).Float64()

		order = models.Order{
			OrderRef:       generateOrderRef(),
			IdempotencyKey: sess.IdempotencyKey,
			UserID:         sess.UserID,
			Items:          orderItems,
			AddressLine1:   sess.Address,
			City:           sess.City,
			PostalCode:     sess.PostalCode,
			Country:        "Sri Lanka",
			ShippingMethod: shippingMethod,
			ShippingCost:   shippingCost,
			PaymentMethod:  sess.PaymentMethod,
			Notes:          sess.Notes,
			TotalAmount:    total,
			Status:         models.OrderStatusPending,
			PaymentStatus:  models.PaymentStatusPending,
			CreatedAt:      time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Remove exactly the lines that went into the order
		return tx.Where("id IN ?", lineIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

// -------- Handlers --------

// GET /orders (own orders)
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — numeric id or order ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		userID := c.GetString("user_id")
		role := c.GetString("user_role")

		var order models.Order
		query := db.Preload("Items").Where("id::text = ? OR order_ref = ?", id, id)
		if role != models.RoleAdmin && role != models.RoleStaff {
			query = query.Where("user_id = ?", userID)
		}
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/all (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:orderID/status?status=
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		status := c.Query("status")
		if status == "" {
			var req UpdateOrderStatusRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
				return
			}
			status = req.Status
		}

		newStatus, err := mapOrderStatus(status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// PUT /orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

package orderControllers

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// sqlite has no SELECT ... FOR UPDATE grammar; drop the locking clause here
	db.ClauseBuilders[clause.Locking{}.Name()] = func(c clause.Clause, builder clause.Builder) {}
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.CheckoutSession{},
	))
	return db
}

// seedCheckout sets up a user cart with two lines and returns a review-step
// session ready to confirm.
func seedCheckout(t *testing.T, db *gorm.DB) models.CheckoutSession {
	t.Helper()

	require.NoError(t, db.Create(&models.User{ID: "user-1", Username: "nimali", Email: "nimali@example.com"}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 1, Name: "Linen Shirt", Price: 2500, Stock: 5}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 2, Name: "Denim Skirt", Price: 1800, Stock: 2}).Error)

	cart := models.Cart{UserID: "user-1"}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: cart.CartID, ProductID: 1, Size: "M", ProductName: "Linen Shirt", Quantity: 2, UnitPrice: 2500,
	}).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: cart.CartID, ProductID: 2, Size: "S", ProductName: "Denim Skirt", Quantity: 1, UnitPrice: 1800,
	}).Error)

	return models.CheckoutSession{
		ID:             "sess-1",
		UserID:         "user-1",
		Step:           models.CheckoutStepReview,
		IdempotencyKey: "11111111-2222-3333-4444-555555555555",
		FirstName:      "Nimali",
		Address:        "12 Galle Road",
		City:           "Colombo",
		PostalCode:     "00300",
		PaymentMethod:  models.PaymentMethodCashOnDelivery,
	}
}

func TestPlaceOrderFromCheckout_SnapshotsCartAndDeductsStock(t *testing.T) {
	db := newTestDB(t)
	sess := seedCheckout(t, db)

	order, err := PlaceOrderFromCheckout(db, sess, 300, "Standard Delivery")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotZero(t, order.ID)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 7100.0, order.TotalAmount) // 2×2500 + 1800 + 300 shipping
	require.Len(t, order.Items, 2)

	var p1, p2 models.Product
	require.NoError(t, db.First(&p1, "id = ?", 1).Error)
	require.NoError(t, db.First(&p2, "id = ?", 2).Error)
	assert.Equal(t, 3, p1.Stock)
	assert.Equal(t, 1, p2.Stock)

	var remaining int64
	db.Model(&models.CartItem{}).Count(&remaining)
	assert.Zero(t, remaining)
}

func TestPlaceOrderFromCheckout_ReplayReturnsExistingOrder(t *testing.T) {
	db := newTestDB(t)
	sess := seedCheckout(t, db)

	first, err := PlaceOrderFromCheckout(db, sess, 300, "Standard Delivery")
	require.NoError(t, err)

	// The cart is already cleared; a confirm retry carrying the same key must
	// replay the existing order rather than fail or double-create.
	second, err := PlaceOrderFromCheckout(db, sess, 300, "Standard Delivery")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.OrderRef, second.OrderRef)

	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.EqualValues(t, 1, orders)

	var p1 models.Product
	require.NoError(t, db.First(&p1, "id = ?", 1).Error)
	assert.Equal(t, 3, p1.Stock) // deducted once, not twice
}

func TestPlaceOrderFromCheckout_InsufficientStockRollsBack(t *testing.T) {
	db := newTestDB(t)
	sess := seedCheckout(t, db)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", 2).Update("stock", 0).Error)

	_, err := PlaceOrderFromCheckout(db, sess, 300, "Standard Delivery")
	require.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing committed: stock and cart untouched, no order row.
	var p1 models.Product
	require.NoError(t, db.First(&p1, "id = ?", 1).Error)
	assert.Equal(t, 5, p1.Stock)

	var items, orders int64
	db.Model(&models.CartItem{}).Count(&items)
	db.Model(&models.Order{}).Count(&orders)
	assert.EqualValues(t, 2, items)
	assert.Zero(t, orders)
}

func TestPlaceOrderFromCheckout_EmptyCart(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{ID: "user-2", Username: "u2", Email: "u2@example.com"}).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: "user-2"}).Error)

	sess := models.CheckoutSession{
		ID: "sess-2", UserID: "user-2",
		Step: models.CheckoutStepReview, IdempotencyKey: "k2",
	}

	_, err := PlaceOrderFromCheckout(db, sess, 300, "Standard Delivery")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestMapOrderStatus(t *testing.T) {
	for _, s := range []string{
		"pending", "confirmed", "ready_to_ship", "shipped", "delivered", "returned", "cancelled",
	} {
		got, err := mapOrderStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, models.OrderStatus(s), got)
	}

	// case-insensitive
	got, err := mapOrderStatus("SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got)

	_, err = mapOrderStatus("lost")
	assert.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	for _, s := range []string{"pending", "paid", "failed", "refunded"} {
		got, err := mapPaymentStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, models.PaymentStatus(s), got)
	}

	_, err := mapPaymentStatus("iou")
	assert.Error(t, err)
}

func TestGenerateOrderRef_Unique(t *testing.T) {
	a := generateOrderRef()
	b := generateOrderRef()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	// timestamp prefix then uuid
	assert.Regexp(t, `^\d{14}-[0-9a-f-]{36}$`, a)
}

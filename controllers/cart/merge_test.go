package cartControllers

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func seedGuestCart(t *testing.T, db *gorm.DB, guestID string, items ...models.GuestCartItem) {
	t.Helper()
	require.NoError(t, db.Create(&models.GuestUser{ID: guestID, ExpiresAt: time.Now().Add(24 * time.Hour)}).Error)
	cart := models.GuestCart{GuestID: guestID}
	require.NoError(t, db.Create(&cart).Error)
	for _, it := range items {
		it.CartID = cart.CartID
		require.NoError(t, db.Create(&it).Error)
	}
}

func TestMergeGuestCartIntoUserCart_CumulativeQuantitiesAndCleanup(t *testing.T) {
	db := newTestDB(t)

	seedGuestCart(t, db, "guest_x",
		models.GuestCartItem{ProductID: 1, Size: "M", Quantity: 3, UnitPrice: 2500},
		models.GuestCartItem{ProductID: 2, Size: "S", Quantity: 1, UnitPrice: 1800},
	)

	userCart := models.Cart{UserID: "user-1"}
	require.NoError(t, db.Create(&userCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: userCart.CartID, ProductID: 1, Size: "M", Quantity: 2, UnitPrice: 2500,
	}).Error)

	merged, err := MergeGuestCartIntoUserCart(db, "guest_x", "user-1")
	require.NoError(t, err)
	assert.True(t, merged)

	var items []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", userCart.CartID).Order("product_id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Quantity) // 2 already in the user cart + 3 from the guest
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, 1, items[1].Quantity)

	// Guest side is gone: cart, items and the guest user itself
	var guestCarts, guestItems, guestUsers int64
	db.Model(&models.GuestCart{}).Count(&guestCarts)
	db.Model(&models.GuestCartItem{}).Count(&guestItems)
	db.Model(&models.GuestUser{}).Count(&guestUsers)
	assert.Zero(t, guestCarts)
	assert.Zero(t, guestItems)
	assert.Zero(t, guestUsers)
}

func TestMergeGuestCartIntoUserCart_CreatesUserCartWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	seedGuestCart(t, db, "guest_x",
		models.GuestCartItem{ProductID: 7, Size: "L", Quantity: 2, UnitPrice: 4200},
	)

	merged, err := MergeGuestCartIntoUserCart(db, "guest_x", "user-1")
	require.NoError(t, err)
	assert.True(t, merged)

	var cart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", "user-1").First(&cart).Error)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestMergeGuestCartIntoUserCart_MissingGuestCartIsNoop(t *testing.T) {
	db := newTestDB(t)

	merged, err := MergeGuestCartIntoUserCart(db, "guest_unknown", "user-1")
	require.NoError(t, err)
	assert.False(t, merged)
}

func TestMergeGuestCartIntoUserCart_LookupFailureIsReported(t *testing.T) {
	// Guest tables never migrated: the lookup fails with a real DB error,
	// which must surface as a failure rather than read as an empty guest cart.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "broken.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Cart{}, &models.CartItem{}))

	_, err = MergeGuestCartIntoUserCart(db, "guest_x", "user-1")
	assert.Error(t, err)
}

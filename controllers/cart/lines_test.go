package cartControllers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thushan99/glemora/models"
)

func line(productID uint, size string, qty int, price float64) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Size:      size,
		Quantity:  qty,
		UnitPrice: price,
		AddedAt:   time.Now(),
	}
}

func TestMergeLine_AccumulatesQuantityPerProductAndSize(t *testing.T) {
	var items []models.CartItem

	// Repeated adds of the same (product, size) end up as one line whose
	// quantity is the sum of every add.
	for _, qty := range []int{2, 3, 1} {
		items = mergeLine(items, line(1, "M", qty, 2500))
	}

	require.Len(t, items, 1)
	assert.Equal(t, 6, items[0].Quantity)
}

func TestMergeLine_DifferentSizesAreDistinctLines(t *testing.T) {
	var items []models.CartItem
	items = mergeLine(items, line(1, "M", 1, 2500))
	items = mergeLine(items, line(1, "L", 1, 2500))

	require.Len(t, items, 2)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, "L", items[1].Size)
}

func TestMergeLines_CumulativeQuantities(t *testing.T) {
	userItems := []models.CartItem{
		{ID: 10, CartID: 7, ProductID: 1, Size: "M", Quantity: 2, UnitPrice: 2500},
	}
	guestItems := []models.CartItem{
		{ID: 99, ProductID: 1, Size: "M", Quantity: 3, UnitPrice: 2500},
		{ID: 98, ProductID: 2, Size: "S", Quantity: 1, UnitPrice: 1800},
	}

	merged := mergeLines(userItems, guestItems)

	require.Len(t, merged, 2)

	// Matching line keeps its row identity and accumulates quantity.
	assert.Equal(t, uint(10), merged[0].ID)
	assert.Equal(t, 5, merged[0].Quantity)

	// Appended line must not carry the guest row id, so persisting it is an
	// insert rather than an update of an unrelated row.
	assert.Equal(t, uint(0), merged[1].ID)
	assert.Equal(t, uint(2), merged[1].ProductID)
	assert.Equal(t, 1, merged[1].Quantity)
}

func TestMergeLines_EmptySources(t *testing.T) {
	existing := []models.CartItem{{ID: 1, ProductID: 1, Size: "M", Quantity: 2}}

	assert.Len(t, mergeLines(existing, nil), 1)
	assert.Len(t, mergeLines(nil, existing), 1)
	assert.Empty(t, mergeLines(nil, nil))
}

func TestValidateQuantity(t *testing.T) {
	assert.ErrorIs(t, validateQuantity(0), ErrQuantityTooLow)
	assert.ErrorIs(t, validateQuantity(-3), ErrQuantityTooLow)
	assert.NoError(t, validateQuantity(1))
	assert.NoError(t, validateQuantity(42))
}

func TestFindLine(t *testing.T) {
	items := []models.CartItem{
		line(1, "M", 1, 100),
		line(1, "L", 1, 100),
		line(2, "M", 1, 200),
	}

	assert.Equal(t, 0, findLine(items, 1, "M"))
	assert.Equal(t, 1, findLine(items, 1, "L"))
	assert.Equal(t, 2, findLine(items, 2, "M"))
	assert.Equal(t, -1, findLine(items, 3, "M"))
	assert.Equal(t, -1, findLine(items, 1, "XL"))
	assert.Equal(t, -1, findLine(nil, 1, "M"))
}

func TestSubtotal_SumsPriceTimesQuantity(t *testing.T) {
	items := []models.CartItem{
		line(1, "M", 2, 2500.50),
		line(2, "S", 3, 1800),
	}

	// 2×2500.50 + 3×1800 = 10401.00, exact under decimal arithmetic
	assert.True(t, Subtotal(items).Equal(decimal.RequireFromString("10401")),
		"got %s", Subtotal(items))
}

func TestSubtotal_HoldsAfterAnyMutationSequence(t *testing.T) {
	var items []models.CartItem
	items = mergeLine(items, line(1, "M", 2, 100))
	items = mergeLine(items, line(2, "L", 1, 250))
	items = mergeLine(items, line(1, "M", 1, 100))

	// set quantity on the first line, then drop the second
	items[0].Quantity = 5
	items = items[:1]

	assert.True(t, Subtotal(items).Equal(decimal.NewFromInt(500)))
}

func TestSubtotal_EmptyCartIsZero(t *testing.T) {
	assert.True(t, Subtotal(nil).IsZero())
}

func TestTotal_AddsFlatShipping(t *testing.T) {
	items := []models.CartItem{line(1, "M", 2, 1000)}

	assert.True(t, Total(items, 300).Equal(decimal.NewFromInt(2300)))
	assert.True(t, Total(nil, 300).Equal(decimal.NewFromInt(300)))
}

func TestSnapshotLine_CopiesProductState(t *testing.T) {
	p := models.Product{ID: 9, Name: "Linen Shirt", Image: "/uploads/products/shirt.png", Price: 4200}

	got := snapshotLine(3, p, "M", 2)

	assert.Equal(t, uint(3), got.CartID)
	assert.Equal(t, uint(9), got.ProductID)
	assert.Equal(t, "Linen Shirt", got.ProductName)
	assert.Equal(t, "/uploads/products/shirt.png", got.ProductImage)
	assert.Equal(t, 4200.0, got.UnitPrice)
	assert.Equal(t, "M", got.Size)
	assert.Equal(t, 2, got.Quantity)
	assert.False(t, got.AddedAt.IsZero())
}

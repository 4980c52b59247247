package cartControllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thushan99/glemora/models"
)

// ErrQuantityTooLow rejects quantity updates below one; removing a line is
// an explicit delete, never a zero-quantity update.
var ErrQuantityTooLow = errors.New("quantity must be at least 1")

func validateQuantity(qty int) error {
	if qty < 1 {
		return ErrQuantityTooLow
	}
	return nil
}

// findLine returns the index of the line matching (productID, size), or -1.
func findLine(items []models.CartItem, productID uint, size string) int {
	for i, it := range items {
		if it.ProductID == productID && it.Size == size {
			return i
		}
	}
	return -1
}

// snapshotLine builds a cart line from the product's current state.
func snapshotLine(cartID uint, p models.Product, size string, qty int) models.CartItem {
	return models.CartItem{
		CartID:       cartID,
		ProductID:    p.ID,
		Size:         size,
		ProductName:  p.Name,
		ProductImage: p.Image,
		UnitPrice:    p.Price,
		Quantity:     qty,
		AddedAt:      time.Now(),
	}
}

// mergeLine folds one snapshot line into items: quantities accumulate on a
// (product, size) match, otherwise the line is appended.
func mergeLine(items []models.CartItem, add models.CartItem) []models.CartItem {
	if idx := findLine(items, add.ProductID, add.Size); idx >= 0 {
		items[idx].Quantity += add.Quantity
		items[idx].AddedAt = add.AddedAt
		return items
	}
	return append(items, add)
}

// mergeLines folds every src line into dst. Appended lines keep a zero ID so
// callers can tell inserts from updates when persisting.
func mergeLines(dst []models.CartItem, src []models.CartItem) []models.CartItem {
	for _, line := range src {
		line.ID = 0
		dst = mergeLine(dst, line)
	}
	return dst
}

// Subtotal is Σ unit price × quantity over the cart lines.
func Subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// Total adds the flat shipping rate on top of the subtotal.
func Total(items []models.CartItem, shipping float64) decimal.Decimal {
	return Subtotal(items).Add(decimal.NewFromFloat(shipping))
}

package cartControllers

import (
	"errors"

	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// MergeGuestCartIntoUserCart replays every guest cart line into the user
// cart, accumulating quantities per (product, size) line, then deletes the
// guest cart. Runs in one transaction: on any failure the guest cart is left
// intact so the merge can simply be retried. Returns whether anything was
// merged.
func MergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	merged := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var guestCart models.GuestCart
		err := tx.Preload("Items").
			Where("guest_id = ?", guestID).
			First(&guestCart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// nothing to merge
			return nil
		}
		if err != nil {
			return err
		}

		var userCart models.Cart
		err = tx.Preload("Items").
			Where("user_id = ?", userID).
			First(&userCart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userCart = models.Cart{UserID: userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if len(guestCart.Items) > 0 {
			lines := mergeLines(userCart.Items, guestItemsToLines(guestCart.Items))
			for _, line := range lines {
				line.CartID = userCart.CartID
				if err := tx.Save(&line).Error; err != nil {
					return err
				}
			}
			merged = true
		}

		if err := tx.Where("cart_id = ?", guestCart.CartID).
			Delete(&models.GuestCartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&guestCart).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", guestID).Delete(&models.GuestUser{}).Error
	})

	return merged, err
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/config"
	cartControllers "github.com/thushan99/glemora/controllers/cart"
	checkoutControllers "github.com/thushan99/glemora/controllers/checkout"
	productController "github.com/thushan99/glemora/controllers/product"
	userControllers "github.com/thushan99/glemora/controllers/user"
	"github.com/thushan99/glemora/middleware"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the storefront surface: catalog reads, carts,
// profile and the checkout wizard.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	// Public catalog
	api.GET("/products", productController.GetProducts(db))
	api.GET("/products/featured", productController.GetFeaturedProducts(db))
	api.GET("/products/:id", productController.GetProduct(db))
	api.GET("/categories", productController.GetCategories(db))
	api.GET("/categories/:id", productController.GetCategory(db))

	// Anonymous cart, keyed by guest id
	guestCart := api.Group("/guest/cart")
	{
		guestCart.GET("", cartControllers.GetGuestCart(db))
		guestCart.POST("", cartControllers.AddGuestCartItem(db))
		guestCart.PUT("/items/:id", cartControllers.UpdateGuestCartItem(db))
		guestCart.DELETE("/items/:id", cartControllers.DeleteGuestCartItem(db))
		guestCart.DELETE("", cartControllers.ClearGuestCart(db))
	}

	// Authenticated cart
	cart := api.Group("/cart", middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetUserCart(db))
		cart.POST("", cartControllers.AddCartItem(db))
		cart.PUT("/items/:id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/items/:id", cartControllers.DeleteCartItem(db))
		cart.DELETE("", cartControllers.ClearUserCart(db))
	}

	// Checkout wizard: guests must sign in first
	checkout := api.Group("/checkout", middleware.ValidateToken,
		middleware.RequireRole(models.RoleCustomer, models.RoleStaff, models.RoleAdmin))
	{
		checkout.POST("", checkoutControllers.StartCheckout(db))
		checkout.GET("", checkoutControllers.GetCheckout(db, cfg.Checkout))
		checkout.PUT("/shipping", checkoutControllers.SubmitShipping(db))
		checkout.PUT("/payment", checkoutControllers.SubmitPayment(db, cfg.Checkout))
		checkout.POST("/confirm", checkoutControllers.ConfirmCheckout(db, cfg.Checkout))
	}

	// Profile
	me := api.Group("/auth", middleware.ValidateToken)
	{
		me.GET("/me", userControllers.GetMe(db))
		me.PUT("/update-me", userControllers.UpdateMe(db, cfg.Uploads.Dir, cfg.Server.PublicBaseURL))
	}
}

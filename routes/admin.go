package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/config"
	cartControllers "github.com/thushan99/glemora/controllers/cart"
	productController "github.com/thushan99/glemora/controllers/product"
	userControllers "github.com/thushan99/glemora/controllers/user"
	"github.com/thushan99/glemora/middleware"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers catalog management and user administration.
// Staff can manage the catalog; user administration is admin-only.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	uploadsDir := cfg.Uploads.Dir
	baseURL := cfg.Server.PublicBaseURL

	staff := api.Group("/", middleware.ValidateToken,
		middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
	{
		staff.POST("/products", productController.CreateProduct(db, uploadsDir, baseURL))
		staff.PUT("/products/:id", productController.UpdateProduct(db, uploadsDir, baseURL))
		staff.DELETE("/products/:id", productController.DeleteProduct(db))
		staff.GET("/products/export", productController.ExportProductsExcel(db))

		staff.POST("/categories", productController.CreateCategory(db, uploadsDir, baseURL))
		staff.PUT("/categories/:id", productController.UpdateCategory(db, uploadsDir, baseURL))
		staff.DELETE("/categories/:id", productController.DeleteCategory(db))
	}

	admin := api.Group("/auth", middleware.ValidateToken, middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/employees", userControllers.GetEmployees(db))
		admin.GET("/users", userControllers.GetAllUsers(db))
		admin.PUT("/users/:id/role", userControllers.UpdateUserRole(db))
		admin.DELETE("/users/:id", userControllers.DeleteUser(db))
		admin.GET("/users/:id/cart", cartControllers.GetAdminUserCart(db))
	}
}

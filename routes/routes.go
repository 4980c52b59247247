package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
// The whole REST surface lives under /api; only static uploads sit at root.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")

	// Public auth routes (no middleware)
	SetupAuthRoutes(api, db)

	// Storefront routes: catalog, carts, checkout (JWT-protected where needed)
	SetupUserRoutes(api, db, cfg)

	// Admin routes (JWT + role-protected)
	SetupAdminRoutes(api, db, cfg)

	// Order routes
	SetupOrderRoutes(api, db)

	// Virtual try-on routes
	SetupTryOnRoutes(api, db, cfg)
}

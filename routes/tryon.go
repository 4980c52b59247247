package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/config"
	tryonControllers "github.com/thushan99/glemora/controllers/tryon"
	"gorm.io/gorm"
)

// SetupTryOnRoutes registers the virtual try-on endpoint.
func SetupTryOnRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	client := tryonControllers.NewClient(cfg.TryOn.Endpoint, cfg.TryOn.Timeout)
	api.POST("/tryon/user-product", tryonControllers.TryOnUserProduct(db, client))
}

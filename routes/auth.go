package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints that need no session.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/sign-in", auth.SignInHandler(db))
		authGroup.POST("/sign-up", auth.SignUpHandler(db))
		authGroup.POST("/guest", auth.CreateGuestUser(db))

		// Alternate Google/Firebase iteration; only wired when configured
		if auth.FirebaseEnabled() {
			authGroup.POST("/google", auth.GoogleLoginHandler(db))
		}
	}
}

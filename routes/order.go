package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/thushan99/glemora/controllers/order"
	"github.com/thushan99/glemora/middleware"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers order history for customers and the order
// management surface for staff.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders", middleware.ValidateToken)
	{
		orders.GET("", orderControllers.GetUserOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		staff := orders.Group("", middleware.RequireRole(models.RoleStaff, models.RoleAdmin))
		{
			staff.GET("/all", orderControllers.GetAllOrdersHandler(db))
			staff.GET("/export", orderControllers.ExportOrdersExcel(db))
			staff.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			staff.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
			staff.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}
	}

	// Live feed of new orders for the admin dashboard
	api.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}

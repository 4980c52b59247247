package orderControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// GET /orders/export — admin download of all orders as a spreadsheet.
func ExportOrdersExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spreadsheet"})
			return
		}

		header := sheet.AddRow()
		for _, h := range []string{
			"Order Ref", "Customer", "Email", "City", "Status", "Payment Status",
			"Payment Method", "Shipping Cost", "Total", "Items", "Placed At",
		} {
			header.AddCell().SetString(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()
			row.AddCell().SetString(o.OrderRef)
			row.AddCell().SetString(o.User.Name)
			row.AddCell().SetString(o.User.Email)
			row.AddCell().SetString(o.City)
			row.AddCell().SetString(string(o.Status))
			row.AddCell().SetString(string(o.PaymentStatus))
			row.AddCell().SetString(o.PaymentMethod)
			row.AddCell().SetFloat(o.ShippingCost)
			row.AddCell().SetFloat(o.TotalAmount)
			row.AddCell().SetInt(len(o.Items))
			row.AddCell().SetString(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
		}
	}
}

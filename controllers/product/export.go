package productController

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// GET /products/export — admin download of the full catalog.
func ExportProductsExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Categories").Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build spreadsheet"})
			return
		}

		header := sheet.AddRow()
		for _, h := range []string{"ID", "Name", "Price", "Stock", "Sale", "Featured", "Categories"} {
			header.AddCell().SetString(h)
		}

		for _, p := range products {
			names := make([]string, 0, len(p.Categories))
			for _, cat := range p.Categories {
				names = append(names, cat.Name)
			}

			row := sheet.AddRow()
			row.AddCell().SetInt(int(p.ID))
			row.AddCell().SetString(p.Name)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetInt(p.Stock)
			row.AddCell().SetBool(p.Sale)
			row.AddCell().SetBool(p.Featured)
			row.AddCell().SetString(strings.Join(names, ", "))
		}

		filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write spreadsheet"})
		}
	}
}

package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/models"
	"github.com/thushan99/glemora/uploads"
	"gorm.io/gorm"
)

// UpdateProduct partially updates a product; only supplied multipart fields
// are touched.
//
// PUT /products/:id (multipart)
func UpdateProduct(db *gorm.DB, uploadsDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Categories").First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("stockQuantity"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stockQuantity"})
				return
			}
			product.Stock = stock
		}
		if v := c.PostForm("sale"); v != "" {
			product.Sale = v == "true"
		}
		if v := c.PostForm("featured"); v != "" {
			product.Featured = v == "true"
		}

		if raw := c.PostForm("category_ids"); raw != "" {
			categories, err := parseCategoryIDs(db, raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
				return
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
				return
			}
		}

		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := uploads.SaveImage(c, file, uploadsDir, "products", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
			product.Image = imageURL
		}
		if file, err := c.FormFile("pngTryOnImage"); err == nil {
			tryOnURL, err := uploads.SaveImage(c, file, uploadsDir, "tryon", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save try-on image"})
				return
			}
			product.TryOnImage = tryOnURL
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

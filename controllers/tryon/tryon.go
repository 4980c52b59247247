package tryonControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/models"
	"gorm.io/gorm"
)

// TryOnUserProduct composites the uploaded user photo with a product's
// try-on garment image via the external service.
//
// POST /tryon/user-product (multipart: userImage, productId)
func TryOnUserProduct(db *gorm.DB, client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.Enabled() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Virtual try-on is not configured"})
			return
		}

		productID := c.PostForm("productId")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to fetch product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}
		if product.TryOnImage == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Product has no try-on image"})
			return
		}

		fileHeader, err := c.FormFile("userImage")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userImage is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded image"})
			return
		}
		defer file.Close()

		generatedURL, err := client.Composite(c.Request.Context(), file, fileHeader.Filename, product.TryOnImage)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Try-on generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"generatedImageUrl": generatedURL})
	}
}

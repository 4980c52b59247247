package productController

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/models"
	"github.com/thushan99/glemora/uploads"
	"gorm.io/gorm"
)

func parseCategoryIDs(db *gorm.DB, raw string) ([]models.Category, error) {
	var categories []models.Category
	if raw == "" {
		return categories, nil
	}

	var parsedIDs []uint
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id64, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, err
		}
		parsedIDs = append(parsedIDs, uint(id64))
	}
	if len(parsedIDs) == 0 {
		return categories, nil
	}

	err := db.Where("id IN ?", parsedIDs).Find(&categories).Error
	return categories, err
}

// CreateProduct creates a new product with categories, a display image and
// an optional transparent PNG for the try-on compositor.
//
// POST /products (multipart)
func CreateProduct(db *gorm.DB, uploadsDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock := 0
		if s := c.PostForm("stockQuantity"); s != "" {
			if stock, err = strconv.Atoi(s); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stockQuantity"})
				return
			}
		}

		categories, err := parseCategoryIDs(db, c.PostForm("category_ids"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
			return
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := uploads.SaveImage(c, file, uploadsDir, "products", publicBaseURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		// Optional transparent garment PNG for try-on
		tryOnURL := ""
		if tryOnFile, err := c.FormFile("pngTryOnImage"); err == nil {
			tryOnURL, err = uploads.SaveImage(c, tryOnFile, uploadsDir, "tryon", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save try-on image"})
				return
			}
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Image:       imageURL,
			TryOnImage:  tryOnURL,
			Stock:       stock,
			Sale:        c.PostForm("sale") == "true",
			Featured:    c.PostForm("featured") == "true",
			Categories:  categories,
			CreatedAt:   time.Now(),
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

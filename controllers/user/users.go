package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thushan99/glemora/models"
	"github.com/thushan99/glemora/uploads"
	"gorm.io/gorm"
)

// GET /auth/me
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.Preload("Cart.Items").Preload("Orders").First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateMe updates the caller's profile; multipart so the picture can ride
// along with the text fields.
//
// PUT /auth/update-me (multipart)
func UpdateMe(db *gorm.DB, uploadsDir, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		updates := make(map[string]interface{})
		for form, column := range map[string]string{
			"name":       "name",
			"phone":      "phone",
			"street":     "street",
			"city":       "city",
			"state":      "state",
			"postalCode": "postal_code",
			"country":    "country",
		} {
			if v := c.PostForm(form); v != "" {
				updates[column] = v
			}
		}

		if file, err := c.FormFile("picture"); err == nil {
			pictureURL, err := uploads.SaveImage(c, file, uploadsDir, "profiles", publicBaseURL)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save picture"})
				return
			}
			updates["picture"] = pictureURL
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
				return
			}
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /auth/employees — staff and admin accounts
func GetEmployees(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "name", "picture", "role", "created_at").
			Where("role IN ?", []string{models.RoleStaff, models.RoleAdmin}).
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// GET /auth/users — all accounts (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "name", "picture", "provider", "role", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// PUT /auth/users/:id/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input struct {
			Role string `json:"role" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
			return
		}
		switch input.Role {
		case models.RoleCustomer, models.RoleStaff, models.RoleAdmin:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role: " + input.Role})
			return
		}

		result := db.Model(&models.User{}).Where("id = ?", id).Update("role", input.Role)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
	}
}

// DELETE /auth/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

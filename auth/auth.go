package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	cartControllers "github.com/thushan99/glemora/controllers/cart"
	"github.com/thushan99/glemora/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignUpInput struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type SignInInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	GuestID  string `json:"guestId"`
}

// POST /auth/sign-up
func SignUpHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignUpInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		role := input.Role
		if role != models.RoleStaff && role != models.RoleAdmin {
			role = models.RoleCustomer
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		userID := uuid.NewString()
		user := models.User{
			ID:           userID,
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
			Name:         input.Name,
			Provider:     "password",
			Role:         role,
			Cart:         models.Cart{UserID: userID},
			CreatedAt:    time.Now(),
		}

		if err := db.Create(&user).Error; err != nil {
			// unique violations on username/email land here
			c.JSON(http.StatusConflict, gin.H{"error": "Username or email already in use"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Account created",
			"userType": []string{user.Role},
		})
	}
}

// POST /auth/sign-in
func SignInHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignInInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("username = ?", input.Username).First(&user).Error; err != nil {
			// Same message whether the user is unknown or the password is wrong
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		token, err := IssueToken(user.ID, user.Email, user.Role, user.Name, user.Picture)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		// Fold the anonymous cart into the user cart, if one was carried in
		mergeStatus := "no-guest-cart"
		if input.GuestID != "" {
			merged, err := cartControllers.MergeGuestCartIntoUserCart(db, input.GuestID, user.ID)
			if err != nil {
				log.Printf("❌ Guest cart merge failed for %s: %v", user.ID, err)
				mergeStatus = "merge-failed"
			} else if merged {
				mergeStatus = "merged-success"
			} else {
				mergeStatus = "guest-cart-empty"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"token":        token,
			"userType":     []string{user.Role},
			"merge_status": mergeStatus,
			"user":         user,
		})
	}
}

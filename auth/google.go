package auth

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	cartControllers "github.com/thushan99/glemora/controllers/cart"
	"github.com/thushan99/glemora/models"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

var (
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// InitFirebase wires up the Google sign-in path. Returns false when the
// credentials are not configured, in which case the route is not registered.
func InitFirebase(ctx context.Context) bool {
	credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	projectID = os.Getenv("FIREBASE_PROJECT_ID")
	if credsJSON == "" || projectID == "" {
		return false
	}

	opt := option.WithCredentialsJSON([]byte(credsJSON))
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		log.Fatalf("❌ Error initializing Firebase app: %v", err)
	}

	firebaseAuth, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Error getting Firebase Auth client: %v", err)
	}
	return true
}

// FirebaseEnabled reports whether InitFirebase found credentials.
func FirebaseEnabled() bool {
	return firebaseAuth != nil
}

// POST /auth/google
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken" binding:"required"`
			GuestID string `json:"guestId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		ctx := context.Background()

		token, err := firebaseAuth.VerifyIDTokenAndCheckRevoked(ctx, req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or revoked ID token"})
			return
		}
		if token.Audience != projectID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token audience"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		firebaseUserID := token.UID
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email not found in token"})
			return
		}

		// Fetch or create the user
		var user models.User
		err = db.Preload("Cart.Items").Where("id = ?", firebaseUserID).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				ID:        firebaseUserID,
				Username:  email,
				Email:     email,
				Name:      name,
				Picture:   picture,
				Provider:  "google",
				Role:      models.RoleCustomer,
				Cart:      models.Cart{UserID: firebaseUserID},
				CreatedAt: time.Now(),
			}
			if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
				return
			}
		} else if err == nil {
			db.Model(&user).Updates(models.User{Name: name, Picture: picture})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		mergeStatus := "no-guest-cart"
		if req.GuestID != "" {
			merged, err := cartControllers.MergeGuestCartIntoUserCart(db, req.GuestID, user.ID)
			if err != nil {
				mergeStatus = "merge-failed"
			} else if merged {
				mergeStatus = "merged-success"
			} else {
				mergeStatus = "guest-cart-empty"
			}
		}

		jwtToken, err := IssueToken(user.ID, user.Email, user.Role, user.Name, user.Picture)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"token":        jwtToken,
			"userType":     []string{user.Role},
			"merge_status": mergeStatus,
			"user":         user,
		})
	}
}

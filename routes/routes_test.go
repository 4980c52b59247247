package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/thushan99/glemora/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupRoutes_MountsSurfaceUnderAPI(t *testing.T) {
	r := gin.New()
	SetupRoutes(r, nil, &config.Config{})

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/auth/sign-in",
		"POST /api/auth/sign-up",
		"POST /api/auth/guest",
		"GET /api/auth/me",
		"GET /api/products",
		"GET /api/products/:id",
		"GET /api/products/featured",
		"GET /api/categories",
		"GET /api/cart",
		"POST /api/cart",
		"GET /api/guest/cart",
		"POST /api/checkout",
		"PUT /api/checkout/shipping",
		"PUT /api/checkout/payment",
		"POST /api/checkout/confirm",
		"GET /api/orders",
		"GET /api/orders/all",
		"POST /api/tryon/user-product",
		"GET /api/ws/orders",
	} {
		assert.True(t, registered[want], want)
	}

	// nothing but /api registers handlers
	for key := range registered {
		assert.Contains(t, key, " /api/", key)
	}
}

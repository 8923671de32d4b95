package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AdminClaims struct {
	AdminID      uint   `json:"admin_id"`
	RestaurantID uint   `json:"restaurant_id"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed, time-bounded JWT for an admin user
func GenerateToken(admin *models.AdminUser) (string, error) {
	claims := AdminClaims{
		AdminID:      admin.ID,
		RestaurantID: admin.RestaurantID,
		Email:        admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AdminRequired validates the token and resolves the acting restaurant scope.
// Malformed or expired tokens are rejected before any store lookup; a valid
// token whose admin row was deleted is rejected by the liveness check, so
// deleting an admin revokes every token ever issued to it.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var admin models.AdminUser
		if err := config.DB.First(&admin, claims.AdminID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin account no longer exists"})
			c.Abort()
			return
		}

		// scope from the live row, not the claims
		c.Set("adminID", admin.ID)
		c.Set("restaurantID", admin.RestaurantID)
		c.Next()
	}
}

// GetAdminID extracts the caller's admin ID from context
func GetAdminID(c *gin.Context) uint {
	val, _ := c.Get("adminID")
	return val.(uint)
}

// GetRestaurantID extracts the caller's restaurant scope from context
func GetRestaurantID(c *gin.Context) uint {
	val, _ := c.Get("restaurantID")
	return val.(uint)
}

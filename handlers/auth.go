package handlers

import (
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin authenticates a restaurant admin and returns a signed token
// together with the admin profile and the restaurant it manages.
func AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.AdminUser
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(&admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, admin.RestaurantID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin": gin.H{
			"id":            admin.ID,
			"name":          admin.Name,
			"email":         admin.Email,
			"restaurant_id": admin.RestaurantID,
		},
		"restaurant": gin.H{
			"id":   restaurant.ID,
			"name": restaurant.Name,
			"slug": restaurant.Slug,
		},
	})
}

// GetAdminProfile returns the authenticated admin and their restaurant
func GetAdminProfile(c *gin.Context) {
	adminID := middleware.GetAdminID(c)
	var admin models.AdminUser
	if err := config.DB.Preload("Restaurant").First(&admin, adminID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

package handlers

import (
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/gin-gonic/gin"
)

// UpdateRestaurantRequest is the allow-listed partial update for the
// restaurant profile. Identity (id, slug), theme, aggregates and timestamps
// are not updatable here by construction.
type UpdateRestaurantRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Phone           *string `json:"phone"`
	Email           *string `json:"email"`
	LogoURL         *string `json:"logo_url"`
	BackgroundImage *string `json:"background_image"`
	SocialInstagram *string `json:"social_instagram"`
	SocialFacebook  *string `json:"social_facebook"`
	SocialWhatsapp  *string `json:"social_whatsapp"`
}

type UpdateThemeRequest struct {
	PrimaryColor string `json:"primary_color" binding:"required"`
}

// GetMyRestaurant returns the caller's restaurant
func GetMyRestaurant(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateRestaurantInfo applies a partial profile update to the caller's
// restaurant
func UpdateRestaurantInfo(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.BackgroundImage != nil {
		updates["background_image"] = *req.BackgroundImage
	}
	if req.SocialInstagram != nil {
		updates["social_instagram"] = *req.SocialInstagram
	}
	if req.SocialFacebook != nil {
		updates["social_facebook"] = *req.SocialFacebook
	}
	if req.SocialWhatsapp != nil {
		updates["social_whatsapp"] = *req.SocialWhatsapp
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&restaurant).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
			return
		}
	}
	if err := config.DB.First(&restaurant, restaurant.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// UpdateRestaurantTheme sets the menu's primary color
func UpdateRestaurantTheme(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&restaurant).
		Update("primary_color", req.PrimaryColor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update theme"})
		return
	}
	restaurant.PrimaryColor = req.PrimaryColor
	c.JSON(http.StatusOK, gin.H{"message": "Theme updated", "restaurant": restaurant})
}

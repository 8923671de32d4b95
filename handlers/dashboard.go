package handlers

import (
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the admin dashboard summary for the caller's
// restaurant: catalog counts, promotion breakdown and the current rating.
func GetDashboard(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, restaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var categoryCount, productCount, activeProducts, promotionCount, reviewCount int64
	config.DB.Model(&models.Category{}).Where("restaurant_id = ?", restaurantID).Count(&categoryCount)
	config.DB.Model(&models.Product{}).Where("restaurant_id = ?", restaurantID).Count(&productCount)
	config.DB.Model(&models.Product{}).Where("restaurant_id = ? AND is_active = ?", restaurantID, true).Count(&activeProducts)
	config.DB.Model(&models.Product{}).Where("restaurant_id = ? AND is_promotion = ?", restaurantID, true).Count(&promotionCount)
	config.DB.Model(&models.Review{}).Where("restaurant_id = ?", restaurantID).Count(&reviewCount)

	c.JSON(http.StatusOK, gin.H{
		"restaurant": gin.H{
			"id":             restaurant.ID,
			"name":           restaurant.Name,
			"slug":           restaurant.Slug,
			"rating_average": restaurant.RatingAverage,
			"total_reviews":  restaurant.TotalReviews,
		},
		"categories": categoryCount,
		"products": gin.H{
			"total":      productCount,
			"active":     activeProducts,
			"promotions": promotionCount,
		},
		"reviews": reviewCount,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmitReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	ProductID    *uint  `json:"product_id"`
}

// SubmitReview records an anonymous customer review for a restaurant,
// optionally bound to one of its products, and refreshes the aggregates.
func SubmitReview(c *gin.Context) {
	restaurant, ok := restaurantBySlug(c)
	if !ok {
		return
	}

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ProductID != nil {
		var product models.Product
		err := config.DB.
			Where("id = ? AND restaurant_id = ?", *req.ProductID, restaurant.ID).
			First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product not found for this restaurant"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
	}

	review := models.Review{
		RestaurantID: restaurant.ID,
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	if err := refreshRatings(restaurant.ID, req.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh ratings"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": review})
}

// ListPublicReviews returns a restaurant's reviews, newest first, optionally
// filtered by product
func ListPublicReviews(c *gin.Context) {
	restaurant, ok := restaurantBySlug(c)
	if !ok {
		return
	}
	listReviews(c, restaurant.ID)
}

// ListAdminReviews returns every review of the caller's restaurant
func ListAdminReviews(c *gin.Context) {
	listReviews(c, middleware.GetRestaurantID(c))
}

func listReviews(c *gin.Context, restaurantID uint) {
	query := config.DB.Where("restaurant_id = ?", restaurantID)
	if productID := c.Query("product_id"); productID != "" {
		query = query.Where("product_id = ?", productID)
	}

	var reviews []models.Review
	if err := query.Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// refreshRatings recomputes the stored rating aggregates from the reviews
// table for the restaurant and, when the review was product-bound, for the
// product. Aggregation is synchronous on write; there is no batch step.
func refreshRatings(restaurantID uint, productID *uint) error {
	type agg struct {
		Avg   float64
		Count int64
	}

	var r agg
	if err := config.DB.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&r).Error; err != nil {
		return err
	}
	if err := config.DB.Model(&models.Restaurant{}).
		Where("id = ?", restaurantID).
		Updates(map[string]interface{}{"rating_average": r.Avg, "total_reviews": r.Count}).Error; err != nil {
		return err
	}

	if productID == nil {
		return nil
	}
	var p agg
	if err := config.DB.Model(&models.Review{}).
		Where("product_id = ?", *productID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&p).Error; err != nil {
		return err
	}
	return config.DB.Model(&models.Product{}).
		Where("id = ?", *productID).
		Updates(map[string]interface{}{"rating_average": p.Avg, "total_reviews": p.Count}).Error
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// restaurantBySlug resolves the public restaurant scope from the path. It
// writes the error response itself; callers bail out when ok is false.
func restaurantBySlug(c *gin.Context) (models.Restaurant, bool) {
	var restaurant models.Restaurant
	err := config.DB.Where("slug = ?", c.Param("slug")).First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurant"})
		}
		return restaurant, false
	}
	return restaurant, true
}

// GetRestaurantInfo returns the public profile of a restaurant
func GetRestaurantInfo(c *gin.Context) {
	restaurant, ok := restaurantBySlug(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListPublicCategories returns the active categories of a restaurant,
// ordered by their menu position
func ListPublicCategories(c *gin.Context) {
	restaurant, ok := restaurantBySlug(c)
	if !ok {
		return
	}

	var categories []models.Category
	if err := config.DB.
		Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("order_position asc").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// ListPublicProducts returns the active products of a restaurant, newest
// first, optionally filtered by category
func ListPublicProducts(c *gin.Context) {
	restaurant, ok := restaurantBySlug(c)
	if !ok {
		return
	}

	query := config.DB.Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(products), "products": products})
}

// GetMenuSummary returns the derived per-category view the menu page renders:
// active categories with their active product count and whether any of those
// products is on promotion. Computed per request, never persisted.
func GetMenuSummary(c *gin.Context) {
	restaurant, ok := restaurantBySlug(c)
	if !ok {
		return
	}

	var categories []models.Category
	if err := config.DB.
		Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Order("order_position asc").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	var products []models.Product
	if err := config.DB.
		Where("restaurant_id = ? AND is_active = ?", restaurant.ID, true).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	type categoryStats struct {
		count        int
		hasPromotion bool
	}
	stats := map[uint]*categoryStats{}
	hasAnyPromotion := false
	for _, p := range products {
		s, found := stats[p.CategoryID]
		if !found {
			s = &categoryStats{}
			stats[p.CategoryID] = s
		}
		s.count++
		if p.IsPromotion {
			s.hasPromotion = true
			hasAnyPromotion = true
		}
	}

	items := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		s := stats[cat.ID]
		if s == nil {
			s = &categoryStats{}
		}
		items = append(items, gin.H{
			"id":             cat.ID,
			"name":           cat.Name,
			"slug":           cat.Slug,
			"icon":           cat.Icon,
			"order_position": cat.OrderPosition,
			"product_count":  s.count,
			"has_promotion":  s.hasPromotion,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"has_promotion": hasAnyPromotion,
		"categories":    items,
	})
}

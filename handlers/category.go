package handlers

import (
	"net/http"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/models"
	"github.com/Raphaelsozua/dish-domain-db/utils"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name          string `json:"name" binding:"required"`
	Icon          string `json:"icon"`
	OrderPosition int    `json:"order_position"`
	IsActive      *bool  `json:"is_active"`
}

// UpdateCategoryRequest is the allow-listed partial update for a category.
// Identity, scope, slug and timestamps are not updatable by construction;
// the slug follows the name.
type UpdateCategoryRequest struct {
	Name          *string `json:"name"`
	Icon          *string `json:"icon"`
	OrderPosition *int    `json:"order_position"`
	IsActive      *bool   `json:"is_active"`
}

// ListCategories returns every category of the caller's restaurant,
// inactive ones included
func ListCategories(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	var categories []models.Category
	if err := config.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("order_position asc").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// CreateCategory adds a category to the caller's restaurant
func CreateCategory(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	category := models.Category{
		RestaurantID:  restaurantID,
		Name:          req.Name,
		Slug:          utils.GenerateSlug(req.Name),
		Icon:          req.Icon,
		OrderPosition: req.OrderPosition,
		IsActive:      isActive,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory applies a partial update to a category owned by the caller's
// restaurant, recomputing the slug when the name changes
func UpdateCategory(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var category models.Category
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
		First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = utils.GenerateSlug(*req.Name)
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.OrderPosition != nil {
		updates["order_position"] = *req.OrderPosition
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&category).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
	}
	if err := config.DB.First(&category, category.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory removes a category owned by the caller's restaurant.
// Products referencing it are not cascaded; they keep the dangling id.
func DeleteCategory(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var category models.Category
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
		First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err := config.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

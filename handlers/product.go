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

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	ImageURL      string   `json:"image_url"`
	CategoryID    uint     `json:"category_id" binding:"required"`
	IsPromotion   bool     `json:"is_promotion"`
	IsActive      *bool    `json:"is_active"`
}

// UpdateProductRequest is the allow-listed partial update for a product.
// rating_average/total_reviews are maintained by review submission and are
// not updatable here by construction.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	ImageURL      *string  `json:"image_url"`
	CategoryID    *uint    `json:"category_id"`
	IsActive      *bool    `json:"is_active"`
	IsPromotion   *bool    `json:"is_promotion"`
}

// ListProducts returns every product of the caller's restaurant, newest
// first, optionally filtered by category
func ListProducts(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	query := config.DB.Where("restaurant_id = ?", restaurantID)
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

// CreateProduct adds a product to the caller's restaurant. The category must
// belong to the same restaurant; the check and the insert share a transaction.
func CreateProduct(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	product := models.Product{
		RestaurantID:  restaurantID,
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		IsActive:      isActive,
		IsPromotion:   req.IsPromotion,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ? AND restaurant_id = ?", req.CategoryID, restaurantID).
			First(&category).Error; err != nil {
			return err
		}
		return tx.Create(&product).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category for this restaurant"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "product": product})
}

// UpdateProduct applies a partial update to a product owned by the caller's
// restaurant. A category change is re-validated against the same scope
// inside the update transaction.
func UpdateProduct(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var product models.Product
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req UpdateProductRequest
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
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsPromotion != nil {
		updates["is_promotion"] = *req.IsPromotion
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.CategoryID != nil {
			var category models.Category
			if err := tx.Where("id = ? AND restaurant_id = ?", *req.CategoryID, restaurantID).
				First(&category).Error; err != nil {
				return err
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&product).Updates(updates).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category for this restaurant"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if err := config.DB.First(&product, product.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// ToggleProductPromotion flips the promotion flag of an owned product.
// Applying it twice restores the original value.
func ToggleProductPromotion(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var product models.Product
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := config.DB.Model(&product).
		Update("is_promotion", !product.IsPromotion).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle promotion"})
		return
	}
	if err := config.DB.First(&product, product.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion toggled", "product": product})
}

// DeleteProduct removes a product owned by the caller's restaurant
func DeleteProduct(c *gin.Context) {
	restaurantID := middleware.GetRestaurantID(c)

	var product models.Product
	if err := config.DB.
		Where("id = ? AND restaurant_id = ?", c.Param("id"), restaurantID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

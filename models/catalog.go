package models

import "time"

// Category groups products inside a single restaurant's menu. The slug is
// derived from the name; uniqueness per restaurant is enforced by the store.
type Category struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RestaurantID  uint      `json:"restaurant_id" gorm:"not null;uniqueIndex:idx_categories_restaurant_slug"`
	Name          string    `json:"name" gorm:"not null"`
	Slug          string    `json:"slug" gorm:"not null;uniqueIndex:idx_categories_restaurant_slug"`
	Icon          string    `json:"icon"`
	OrderPosition int       `json:"order_position" gorm:"default:0"`
	// bool zero values must be insertable as-is, so no store default here;
	// the create path applies the true default
	IsActive bool `json:"is_active" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	RestaurantID  uint      `json:"restaurant_id" gorm:"not null;index"`
	CategoryID    uint      `json:"category_id" gorm:"not null;index"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" gorm:"not null"`
	OriginalPrice *float64  `json:"original_price"`
	ImageURL      string    `json:"image_url"`
	IsActive      bool      `json:"is_active" gorm:"not null"`
	IsPromotion   bool      `json:"is_promotion" gorm:"not null"`
	RatingAverage float64   `json:"rating_average" gorm:"default:0"`
	TotalReviews  int64     `json:"total_reviews" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

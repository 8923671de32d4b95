package models

import "time"

type Restaurant struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Slug            string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description     string    `json:"description"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	LogoURL         string    `json:"logo_url"`
	BackgroundImage string    `json:"background_image"`
	PrimaryColor    string    `json:"primary_color" gorm:"default:'#D2691E'"`
	RatingAverage   float64   `json:"rating_average" gorm:"default:0"`
	TotalReviews    int64     `json:"total_reviews" gorm:"default:0"`
	SocialInstagram string    `json:"social_instagram"`
	SocialFacebook  string    `json:"social_facebook"`
	SocialWhatsapp  string    `json:"social_whatsapp"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AdminUser is the only authenticated principal in the system. Each admin
// belongs to exactly one restaurant and every admin operation is scoped to it.
type AdminUser struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

package models

import "time"

// Review is an anonymous customer review, optionally tied to one product of
// the same restaurant. Reviews are append-only: no update or delete exists.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	ProductID    *uint     `json:"product_id"`
	CustomerName string    `json:"customer_name" gorm:"not null"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

package config

import (
	"errors"
	"log"

	"github.com/Raphaelsozua/dish-domain-db/models"
	"github.com/Raphaelsozua/dish-domain-db/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedTenant provisions the initial restaurant and its admin from env vars.
// Restaurants and admins have no signup API; this is the out-of-band path.
// Idempotent: existing rows are left untouched, missing env vars skip the seed.
func SeedTenant() error {
	email := getEnv("SEED_ADMIN_EMAIL", "")
	password := getEnv("SEED_ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		log.Println("skip tenant seed: missing SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD")
		return nil
	}

	name := getEnv("SEED_RESTAURANT_NAME", "Padaria Barkery")
	slug := getEnv("SEED_RESTAURANT_SLUG", utils.GenerateSlug(name))

	var restaurant models.Restaurant
	if err := DB.Where("slug = ?", slug).First(&restaurant).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		restaurant = models.Restaurant{Name: name, Slug: slug}
		if err := DB.Create(&restaurant).Error; err != nil {
			return err
		}
		log.Println("seeded restaurant:", slug)
	}

	var count int64
	if err := DB.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.AdminUser{
		Name:         getEnv("SEED_ADMIN_NAME", "Admin"),
		Email:        email,
		PasswordHash: string(hash),
		RestaurantID: restaurant.ID,
	}
	return DB.Create(&admin).Error
}

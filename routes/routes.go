package routes

import (
	"github.com/Raphaelsozua/dish-domain-db/handlers"
	"github.com/Raphaelsozua/dish-domain-db/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public menu routes (scoped by restaurant slug, no credential) ──
	public := r.Group("/api/public/:slug")
	{
		public.GET("/info", handlers.GetRestaurantInfo)
		public.GET("/categories", handlers.ListPublicCategories)
		public.GET("/products", handlers.ListPublicProducts)
		public.GET("/menu", handlers.GetMenuSummary)
		public.GET("/reviews", handlers.ListPublicReviews)
		public.POST("/reviews", handlers.SubmitReview)
	}

	// ── Admin auth ─────────────────────────────────────────────────────
	r.POST("/api/admin/auth/login", handlers.AdminLogin)

	// ── Admin routes (scoped by the authenticated admin's restaurant) ──
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/profile", handlers.GetAdminProfile)
		admin.GET("/dashboard", handlers.GetDashboard)

		admin.GET("/restaurant", handlers.GetMyRestaurant)
		admin.PUT("/restaurant", handlers.UpdateRestaurantInfo)
		admin.PUT("/restaurant/theme", handlers.UpdateRestaurantTheme)

		admin.GET("/categories", handlers.ListCategories)
		admin.POST("/categories", handlers.CreateCategory)
		admin.PUT("/categories/:id", handlers.UpdateCategory)
		admin.DELETE("/categories/:id", handlers.DeleteCategory)

		admin.GET("/products", handlers.ListProducts)
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.PUT("/products/:id/toggle-promotion", handlers.ToggleProductPromotion)
		admin.DELETE("/products/:id", handlers.DeleteProduct)

		admin.GET("/reviews", handlers.ListAdminReviews)
	}
}

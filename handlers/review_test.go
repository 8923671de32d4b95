package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewWithoutProduct(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", map[string]interface{}{
		"customer_name": "Ana",
		"rating":        5,
		"comment":       "Maravilhoso!",
	})
	requireStatus(t, w, http.StatusCreated)

	var resp struct {
		Review models.Review `json:"review"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Ana", resp.Review.CustomerName)
	assert.Equal(t, 5, resp.Review.Rating)
	assert.Nil(t, resp.Review.ProductID)
	assert.Equal(t, env.restaurant.ID, resp.Review.RestaurantID)

	// restaurant aggregates refreshed synchronously
	var restaurant models.Restaurant
	require.NoError(t, config.DB.First(&restaurant, env.restaurant.ID).Error)
	assert.Equal(t, 5.0, restaurant.RatingAverage)
	assert.Equal(t, int64(1), restaurant.TotalReviews)
}

func TestSubmitReviewRatingOutOfRange(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", map[string]interface{}{
		"customer_name": "Ana",
		"rating":        6,
	})
	requireStatus(t, w, http.StatusBadRequest)

	var count int64
	config.DB.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitReviewMissingFields(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", map[string]interface{}{
		"rating": 4,
	})
	requireStatus(t, w, http.StatusBadRequest)

	w = env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", map[string]interface{}{
		"customer_name": "Ana",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestSubmitReviewForeignProductRejected(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", map[string]interface{}{
		"customer_name": "Ana",
		"rating":        4,
		"product_id":    env.otherProduct.ID,
	})
	requireStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Product not found for this restaurant", resp.Error)
}

func TestSubmitReviewRefreshesProductAggregates(t *testing.T) {
	env := setupEnv(t)

	for _, rating := range []int{5, 4} {
		w := env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", map[string]interface{}{
			"customer_name": "Bruno",
			"rating":        rating,
			"product_id":    env.misto.ID,
		})
		requireStatus(t, w, http.StatusCreated)
	}

	var product models.Product
	require.NoError(t, config.DB.First(&product, env.misto.ID).Error)
	assert.Equal(t, 4.5, product.RatingAverage)
	assert.Equal(t, int64(2), product.TotalReviews)
}

func TestListReviewsAndFilterByProduct(t *testing.T) {
	env := setupEnv(t)

	bodies := []map[string]interface{}{
		{"customer_name": "Ana", "rating": 5, "product_id": env.misto.ID},
		{"customer_name": "Bruno", "rating": 3},
	}
	for _, body := range bodies {
		w := env.do(t, http.MethodPost, "/api/public/padaria-barkery/reviews", "", body)
		requireStatus(t, w, http.StatusCreated)
	}

	w := env.do(t, http.MethodGet, "/api/public/padaria-barkery/reviews", "", nil)
	requireStatus(t, w, http.StatusOK)
	var resp struct {
		Count   int             `json:"count"`
		Reviews []models.Review `json:"reviews"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.Count)

	path := fmt.Sprintf("/api/public/padaria-barkery/reviews?product_id=%d", env.misto.ID)
	w = env.do(t, http.MethodGet, path, "", nil)
	requireStatus(t, w, http.StatusOK)
	decodeBody(t, w, &resp)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Ana", resp.Reviews[0].CustomerName)
}

func TestAdminReviewListRequiresToken(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/reviews", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = env.do(t, http.MethodGet, "/api/admin/reviews", env.token, nil)
	requireStatus(t, w, http.StatusOK)
}

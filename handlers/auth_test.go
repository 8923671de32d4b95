package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/admin/auth/login", "", map[string]interface{}{
		"email":    "admin@barkery.com",
		"password": testAdminPassword,
	})
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
		Admin struct {
			Email        string `json:"email"`
			RestaurantID uint   `json:"restaurant_id"`
		} `json:"admin"`
		Restaurant struct {
			Slug string `json:"slug"`
		} `json:"restaurant"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@barkery.com", resp.Admin.Email)
	assert.Equal(t, env.restaurant.ID, resp.Admin.RestaurantID)
	assert.Equal(t, "padaria-barkery", resp.Restaurant.Slug)

	// the returned token works against the admin surface
	w = env.do(t, http.MethodGet, "/api/admin/profile", resp.Token, nil)
	requireStatus(t, w, http.StatusOK)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/admin/auth/login", "", map[string]interface{}{
		"email":    "admin@barkery.com",
		"password": "errada",
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAdminLoginUnknownEmail(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodPost, "/api/admin/auth/login", "", map[string]interface{}{
		"email":    "ninguem@barkery.com",
		"password": testAdminPassword,
	})
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAdminProfileNeverExposesPasswordHash(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/profile", env.token, nil)
	requireStatus(t, w, http.StatusOK)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestDashboardSummary(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, http.MethodGet, "/api/admin/dashboard", env.token, nil)
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Categories int64 `json:"categories"`
		Products   struct {
			Total      int64 `json:"total"`
			Active     int64 `json:"active"`
			Promotions int64 `json:"promotions"`
		} `json:"products"`
		Reviews int64 `json:"reviews"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(3), resp.Categories)
	assert.Equal(t, int64(4), resp.Products.Total)
	assert.Equal(t, int64(3), resp.Products.Active)
	assert.Equal(t, int64(1), resp.Products.Promotions)
	assert.Zero(t, resp.Reviews)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Raphaelsozua/dish-domain-db/config"
	"github.com/Raphaelsozua/dish-domain-db/middleware"
	"github.com/Raphaelsozua/dish-domain-db/models"
	"github.com/Raphaelsozua/dish-domain-db/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var dbSeq int64

type testEnv struct {
	router *gin.Engine
	token  string

	restaurant models.Restaurant
	admin      models.AdminUser
	lanches    models.Category
	bebidas    models.Category
	sobremesas models.Category // inactive
	misto      models.Product  // lanches, promotion
	xbacon     models.Product  // lanches
	suco       models.Product  // bebidas
	pudim      models.Product  // bebidas, inactive

	// second tenant, used for scope checks
	other         models.Restaurant
	otherCategory models.Category
	otherProduct  models.Product
}

const testAdminPassword = "segredo123"

// setupEnv wires a router against a fresh in-memory database seeded with two
// restaurants and a small menu for the first one.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitDB(fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1)))

	env := &testEnv{}
	db := config.DB

	env.restaurant = models.Restaurant{Name: "Padaria Barkery", Slug: "padaria-barkery", PrimaryColor: "#D2691E"}
	require.NoError(t, db.Create(&env.restaurant).Error)
	env.other = models.Restaurant{Name: "Cantina da Vila", Slug: "cantina-da-vila"}
	require.NoError(t, db.Create(&env.other).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	env.admin = models.AdminUser{
		Name:         "Raphael",
		Email:        "admin@barkery.com",
		PasswordHash: string(hash),
		RestaurantID: env.restaurant.ID,
	}
	require.NoError(t, db.Create(&env.admin).Error)

	env.lanches = models.Category{RestaurantID: env.restaurant.ID, Name: "Lanches", Slug: "lanches", Icon: "🥪", OrderPosition: 1, IsActive: true}
	env.bebidas = models.Category{RestaurantID: env.restaurant.ID, Name: "Bebidas", Slug: "bebidas", Icon: "🥤", OrderPosition: 2, IsActive: true}
	env.sobremesas = models.Category{RestaurantID: env.restaurant.ID, Name: "Sobremesas", Slug: "sobremesas", OrderPosition: 3, IsActive: false}
	env.otherCategory = models.Category{RestaurantID: env.other.ID, Name: "Pizzas", Slug: "pizzas", OrderPosition: 1, IsActive: true}
	for _, cat := range []*models.Category{&env.lanches, &env.bebidas, &env.sobremesas, &env.otherCategory} {
		require.NoError(t, db.Create(cat).Error)
	}

	now := time.Now()
	originalPrice := 10.0
	env.misto = models.Product{
		RestaurantID: env.restaurant.ID, CategoryID: env.lanches.ID,
		Name: "Misto Quente", Price: 8.0, OriginalPrice: &originalPrice,
		IsActive: true, IsPromotion: true, CreatedAt: now.Add(-3 * time.Hour),
	}
	env.xbacon = models.Product{
		RestaurantID: env.restaurant.ID, CategoryID: env.lanches.ID,
		Name: "X-Bacon", Price: 18.0, IsActive: true, CreatedAt: now.Add(-2 * time.Hour),
	}
	env.suco = models.Product{
		RestaurantID: env.restaurant.ID, CategoryID: env.bebidas.ID,
		Name: "Suco Natural", Price: 6.0, IsActive: true, CreatedAt: now.Add(-1 * time.Hour),
	}
	env.pudim = models.Product{
		RestaurantID: env.restaurant.ID, CategoryID: env.bebidas.ID,
		Name: "Pudim", Price: 7.5, IsActive: false, CreatedAt: now.Add(-30 * time.Minute),
	}
	env.otherProduct = models.Product{
		RestaurantID: env.other.ID, CategoryID: env.otherCategory.ID,
		Name: "Calabresa", Price: 35.0, IsActive: true, CreatedAt: now,
	}
	for _, p := range []*models.Product{&env.misto, &env.xbacon, &env.suco, &env.pudim, &env.otherProduct} {
		require.NoError(t, db.Create(p).Error)
	}

	env.token, err = middleware.GenerateToken(&env.admin)
	require.NoError(t, err)

	env.router = gin.New()
	routes.SetupRoutes(env.router)
	return env
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}

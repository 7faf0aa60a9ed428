package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/configs"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

type env struct {
	router *gin.Engine
	db     *gorm.DB

	customer entity.User
	owner    entity.User
	admin    entity.User
	rest     entity.Restaurant
	item     entity.MenuItem
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Payment{},
	))

	e := &env{db: db}
	e.customer = entity.User{Name: "Cara Customer", Email: "cara@example.com", Phone: "555-1234", Role: entity.RoleCustomer, Status: "active"}
	require.NoError(t, db.Create(&e.customer).Error)
	e.owner = entity.User{Name: "Omar Owner", Email: "omar@example.com", Role: entity.RoleOwner, Status: "active"}
	require.NoError(t, db.Create(&e.owner).Error)
	e.admin = entity.User{Name: "Ada Admin", Email: "ada@example.com", Role: entity.RoleAdmin, Status: "active"}
	require.NoError(t, db.Create(&e.admin).Error)
	e.rest = entity.Restaurant{Name: "Testaurant", OwnerID: e.owner.ID, Status: "active"}
	require.NoError(t, db.Create(&e.rest).Error)
	e.item = entity.MenuItem{Name: "Item A", Price: 100, RestaurantID: e.rest.ID, IsAvailable: true}
	require.NoError(t, db.Create(&e.item).Error)

	cfg := &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour}
	e.router = gin.New()
	RegisterRoutes(e.router, cfg, db)
	return e
}

func (e *env) token(t *testing.T, u entity.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(u.ID, u.Role, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func (e *env) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	e := newEnv(t)

	for _, path := range []string{"/cart?restaurantId=1", "/orders", "/owner/orders", "/admin/users", "/auth/me"} {
		w, body := e.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, false, body["ok"], path)
		assert.Equal(t, "UNAUTHORIZED", body["code"], path)
	}
}

func TestWrongRoleForbidden(t *testing.T) {
	e := newEnv(t)
	custTok := e.token(t, e.customer)
	ownerTok := e.token(t, e.owner)

	w, body := e.do(t, http.MethodGet, "/owner/orders", custTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", body["code"])

	w, body = e.do(t, http.MethodGet, "/admin/users", ownerTok, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestMalformedBodyRejected(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, e.customer)

	w, body := e.do(t, http.MethodPost, "/cart/items", tok, gin.H{"restaurantId": e.rest.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", body["code"])

	w, body = e.do(t, http.MethodGet, "/cart", tok, nil) // missing restaurantId
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_INPUT", body["code"])
}

func TestUnsupportedVerb(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, e.customer)

	w, body := e.do(t, http.MethodPatch, "/cart", tok, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body["code"])
}

func TestEmptyCartIsNullNotError(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, e.customer)

	w, body := e.do(t, http.MethodGet, fmt.Sprintf("/cart?restaurantId=%d", e.rest.ID), tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
	assert.Nil(t, body["data"])
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, e.customer)

	w, _ := e.do(t, http.MethodPost, "/cart/items", tok, gin.H{
		"restaurantId": e.rest.ID, "menuItemId": e.item.ID, "qty": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := e.do(t, http.MethodGet, fmt.Sprintf("/cart?restaurantId=%d", e.rest.ID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(300), data["subtotal"])

	w, body = e.do(t, http.MethodPost, "/orders", tok, gin.H{
		"restaurantId":    e.rest.ID,
		"deliveryAddress": "12 Demo Lane",
		"paymentMethod":   "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	placed := body["data"].(map[string]any)
	assert.Equal(t, float64(300), placed["totalAmount"])
	orderID := int(placed["orderId"].(float64))

	w, body = e.do(t, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := body["data"].(map[string]any)
	assert.Equal(t, "pending", detail["status"])
	assert.Len(t, detail["items"], 1)

	// cart is gone after placement
	w, body = e.do(t, http.MethodGet, fmt.Sprintf("/cart?restaurantId=%d", e.rest.ID), tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, body["data"])

	// owner sees it and moves it along
	ownerTok := e.token(t, e.owner)
	w, body = e.do(t, http.MethodGet, "/owner/orders", ownerTok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 1)

	w, _ = e.do(t, http.MethodPut, "/owner/orders/status", ownerTok, gin.H{
		"orderId": orderID, "status": "preparing",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAdminListsUsers(t *testing.T) {
	e := newEnv(t)
	tok := e.token(t, e.admin)

	w, body := e.do(t, http.MethodGet, "/admin/users", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 3)
}

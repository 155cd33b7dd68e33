package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastekart/config"
	"tastekart/models"
	"tastekart/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const adminKey = "test-admin-key"

// setupRouter wires the full route table against a fresh in-memory
// database, the same way main does against the real one.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	config.AdminSignupKey = adminKey

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func register(t *testing.T, r *gin.Engine, name, email string, role models.UserRole) string {
	t.Helper()
	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret123",
		"role":     role,
		"phone":    "+8801712345678",
		"address":  name + "'s address",
	}
	if role == models.RoleAdmin {
		body["admin_key"] = adminKey
	}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", email, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return token
}

func addMenuItem(t *testing.T, r *gin.Engine, token, name string, price float64) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/restaurant/menu", token, map[string]interface{}{
		"name":      name,
		"category":  "Mains",
		"price":     price,
		"prep_time": 15,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add menu item: status %d, body %s", w.Code, w.Body.String())
	}
	item := decode(t, w)["item"].(map[string]interface{})
	return uint(item["id"].(float64))
}

func syncCart(t *testing.T, r *gin.Engine, token string, itemID uint, qty int) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/cart", token, map[string]interface{}{
		"items": []map[string]interface{}{{"menu_item_id": itemID, "quantity": qty}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("sync cart: status %d, body %s", w.Code, w.Body.String())
	}
}

// placeOrder runs the cart→checkout→payment pipeline and returns the
// new order id.
func placeOrder(t *testing.T, r *gin.Engine, token string, itemID uint, qty int) uint {
	t.Helper()
	syncCart(t, r, token, itemID, qty)

	w := doJSON(t, r, http.MethodPost, "/api/checkout", token, map[string]interface{}{
		"delivery_address": "12 Lake Road, Dhaka",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("checkout: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/payment/otp", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("send otp: status %d, body %s", w.Code, w.Body.String())
	}
	otp, _ := decode(t, w)["otp"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/payment", token, map[string]interface{}{
		"payment_method": "bkash",
		"phone_number":   "+8801712345678",
		"otp_code":       otp,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("payment: status %d, body %s", w.Code, w.Body.String())
	}
	return uint(decode(t, w)["order_id"].(float64))
}

func orderPath(orderID uint) string {
	return fmt.Sprintf("/api/orders/%d", orderID)
}

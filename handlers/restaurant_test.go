package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"tastekart/config"
	"tastekart/models"
)

func TestUpdateOrderStatusByOwner(t *testing.T) {
	r := setupRouter(t)
	restaurantToken := register(t, r, "Spice Garden", "spice@example.com", models.RoleRestaurant)
	customerToken := register(t, r, "Asha", "asha@example.com", models.RoleCustomer)
	itemID := addMenuItem(t, r, restaurantToken, "Biryani", 100)
	orderID := placeOrder(t, r, customerToken, itemID, 1)

	for _, status := range []string{"pending", "preparing", "received", "delivered"} {
		w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/orders/%d/status", orderID), restaurantToken,
			map[string]interface{}{"status": status})
		if w.Code != http.StatusOK {
			t.Fatalf("set status %q: status %d, body %s", status, w.Code, w.Body.String())
		}
	}

	var order models.Order
	config.DB.First(&order, orderID)
	if order.Status != models.StatusDelivered {
		t.Errorf("final status = %q, want delivered", order.Status)
	}
}

func TestUpdateOrderStatusByNonOwner(t *testing.T) {
	r := setupRouter(t)
	ownerToken := register(t, r, "Spice Garden", "spice@example.com", models.RoleRestaurant)
	otherToken := register(t, r, "Noodle House", "noodle@example.com", models.RoleRestaurant)
	customerToken := register(t, r, "Asha", "asha@example.com", models.RoleCustomer)
	itemID := addMenuItem(t, r, ownerToken, "Biryani", 100)
	orderID := placeOrder(t, r, customerToken, itemID, 1)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/orders/%d/status", orderID), otherToken,
		map[string]interface{}{"status": "cancelled"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-owner status update: status %d, want 403", w.Code)
	}

	var order models.Order
	config.DB.First(&order, orderID)
	if order.Status != models.StatusValidating {
		t.Errorf("status changed by non-owner: %q", order.Status)
	}
}

func TestUpdateOrderStatusUnknownValue(t *testing.T) {
	r := setupRouter(t)
	restaurantToken := register(t, r, "Spice Garden", "spice@example.com", models.RoleRestaurant)
	customerToken := register(t, r, "Asha", "asha@example.com", models.RoleCustomer)
	itemID := addMenuItem(t, r, restaurantToken, "Biryani", 100)
	orderID := placeOrder(t, r, customerToken, itemID, 1)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/orders/%d/status", orderID), restaurantToken,
		map[string]interface{}{"status": "shipped"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: status %d, want 400", w.Code)
	}
}

func TestMenuOwnership(t *testing.T) {
	r := setupRouter(t)
	ownerToken := register(t, r, "Spice Garden", "spice@example.com", models.RoleRestaurant)
	otherToken := register(t, r, "Noodle House", "noodle@example.com", models.RoleRestaurant)
	itemID := addMenuItem(t, r, ownerToken, "Biryani", 100)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/menu/%d", itemID), otherToken,
		map[string]interface{}{"price": 1})
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign menu update: status %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/restaurant/menu/%d", itemID), otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign menu delete: status %d, want 403", w.Code)
	}

	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		t.Fatalf("item gone after rejected delete: %v", err)
	}
	if item.Price != 100 {
		t.Errorf("price changed by non-owner: %v", item.Price)
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/menu/%d", itemID), ownerToken,
		map[string]interface{}{"price": 120, "availability": false})
	if w.Code != http.StatusOK {
		t.Fatalf("owner menu update: status %d, body %s", w.Code, w.Body.String())
	}
	config.DB.First(&item, itemID)
	if item.Price != 120 || item.Availability {
		t.Errorf("owner update not applied: %+v", item)
	}
}

func TestPublicMenuHidesUnavailable(t *testing.T) {
	r := setupRouter(t)
	restaurantToken := register(t, r, "Spice Garden", "spice@example.com", models.RoleRestaurant)
	availableID := addMenuItem(t, r, restaurantToken, "Biryani", 100)
	hiddenID := addMenuItem(t, r, restaurantToken, "Off Menu", 50)
	doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/menu/%d", hiddenID), restaurantToken,
		map[string]interface{}{"availability": false})

	w := doJSON(t, r, http.MethodGet, "/api/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public menu: status %d", w.Code)
	}
	resp := decode(t, w)
	if resp["count"].(float64) != 1 {
		t.Fatalf("public menu count = %v, want 1", resp["count"])
	}
	menu := resp["menu"].([]interface{})
	first := menu[0].(map[string]interface{})
	if uint(first["id"].(float64)) != availableID {
		t.Errorf("public menu shows wrong item: %v", first)
	}
}

func TestRestaurantOrdersListing(t *testing.T) {
	r := setupRouter(t)
	restaurantToken := register(t, r, "Spice Garden", "spice@example.com", models.RoleRestaurant)
	customerToken := register(t, r, "Asha", "asha@example.com", models.RoleCustomer)
	itemID := addMenuItem(t, r, restaurantToken, "Biryani", 100)

	first := placeOrder(t, r, customerToken, itemID, 1)
	placeOrder(t, r, customerToken, itemID, 2)
	doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/orders/%d/status", first), restaurantToken,
		map[string]interface{}{"status": "delivered"})

	w := doJSON(t, r, http.MethodGet, "/api/restaurant/orders", restaurantToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list orders: status %d", w.Code)
	}
	resp := decode(t, w)
	if resp["count"].(float64) != 2 {
		t.Errorf("order count = %v, want 2", resp["count"])
	}
	if resp["delivered_count"].(float64) != 1 {
		t.Errorf("delivered_count = %v, want 1", resp["delivered_count"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/restaurant/orders?status=delivered", restaurantToken, nil)
	if got := decode(t, w)["count"].(float64); got != 1 {
		t.Errorf("filtered count = %v, want 1", got)
	}
}

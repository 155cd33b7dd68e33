// Package cart computes totals for a customer's pending cart. It is pure
// computation: callers load lines from the checkout session and persist
// them back after syncing with client input.
package cart

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrBadQuantity      = errors.New("cart line quantity must be at least 1")
	ErrNegativePrice    = errors.New("cart line price cannot be negative")
	ErrMixedRestaurants = errors.New("all cart items must belong to the same restaurant")
)

// Line is one (item, quantity, unit price) tuple pending order creation.
// Price is a snapshot resolved from the menu, never client-supplied.
type Line struct {
	MenuItemID   uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"qty"`
	Price        float64 `json:"price"`
	RestaurantID uint    `json:"restaurant_id"`
}

// Subtotal validates the lines and returns the sum of price*qty. Lines
// must be non-empty, each quantity at least 1, no negative prices, and every line must
// reference the same restaurant.
func Subtotal(lines []Line) (float64, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}
	restaurantID := lines[0].RestaurantID
	var subtotal float64
	for _, l := range lines {
		if l.Quantity < 1 {
			return 0, ErrBadQuantity
		}
		if l.Price < 0 {
			return 0, ErrNegativePrice
		}
		if l.RestaurantID != restaurantID {
			return 0, ErrMixedRestaurants
		}
		subtotal += l.Price * float64(l.Quantity)
	}
	return subtotal, nil
}

// RestaurantID returns the single restaurant the lines belong to.
func RestaurantID(lines []Line) (uint, error) {
	if _, err := Subtotal(lines); err != nil {
		return 0, err
	}
	return lines[0].RestaurantID, nil
}

// Package orders implements the order lifecycle: atomic creation from a
// validated cart, and status transitions by the owning restaurant.
package orders

import (
	"errors"
	"regexp"
	"time"

	"tastekart/cart"
	"tastekart/models"
	"tastekart/pricing"
	"tastekart/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EstimatedDeliveryWindow is added to the creation time to produce the
// estimated delivery timestamp.
const EstimatedDeliveryWindow = time.Hour

// PhonePattern accepts 10-15 digits with an optional leading + and
// country code 1, e.g. +8801234567890.
var PhonePattern = regexp.MustCompile(`^\+?1?\d{10,15}$`)

var (
	ErrMissingAddress       = errors.New("delivery address is missing")
	ErrMissingPaymentMethod = errors.New("payment method is missing")
	ErrInvalidPhone         = errors.New("phone number must be 10-15 digits, optionally prefixed with +")
	ErrMissingOTP           = errors.New("OTP code is missing")
	ErrItemUnavailable      = errors.New("a cart item is no longer available")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotOwner             = errors.New("order does not belong to this restaurant")
)

// CreateInput carries everything the payment step has collected. The OTP
// is recorded for manual reconciliation, not verified — a soft gate.
type CreateInput struct {
	UserID             uint
	Lines              []cart.Line
	DeliveryAddress    string
	DiscountPercentage float64
	PaymentMethod      string
	PhoneNumber        string
	OTPCode            string
}

// Create validates the input and creates the order, its items and the
// payment transaction in one database transaction: either all three land
// or none do. Unit prices are re-read from menu_items inside the
// transaction so a stale or tampered cart line can never set the price.
// Returns the new order id.
func Create(db *gorm.DB, in CreateInput) (uint, error) {
	if in.PaymentMethod == "" {
		return 0, ErrMissingPaymentMethod
	}
	if !PhonePattern.MatchString(in.PhoneNumber) {
		return 0, ErrInvalidPhone
	}
	if in.OTPCode == "" {
		return 0, ErrMissingOTP
	}
	if in.DeliveryAddress == "" {
		return 0, ErrMissingAddress
	}
	if _, err := cart.Subtotal(in.Lines); err != nil {
		return 0, err
	}
	restaurantID := in.Lines[0].RestaurantID

	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var subtotal float64
		items := make([]models.OrderItem, 0, len(in.Lines))
		for _, line := range in.Lines {
			var mi models.MenuItem
			if err := tx.First(&mi, line.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrItemUnavailable
				}
				return err
			}
			if !mi.Availability || mi.RestaurantID != restaurantID {
				return ErrItemUnavailable
			}
			subtotal += mi.Price * float64(line.Quantity)
			items = append(items, models.OrderItem{
				MenuItemID: mi.ID,
				Quantity:   line.Quantity,
				Price:      mi.Price,
				Name:       mi.Name,
			})
		}

		order := models.Order{
			UserID:            in.UserID,
			RestaurantID:      restaurantID,
			TotalAmount:       pricing.Apply(subtotal, in.DiscountPercentage),
			Status:            models.StatusValidating,
			DeliveryAddress:   in.DeliveryAddress,
			EstimatedDelivery: time.Now().Add(EstimatedDeliveryWindow),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		payment := models.PaymentTransaction{
			OrderID:       order.ID,
			Reference:     uuid.NewString(),
			PaymentMethod: in.PaymentMethod,
			PhoneNumber:   in.PhoneNumber,
			OTPCode:       in.OTPCode,
			Amount:        order.TotalAmount,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// SetStatus moves an order to a new recognized status. Only the owning
// restaurant may do so unless force is set (admin override). Last write
// wins; there is no version check against concurrent updates.
func SetStatus(db *gorm.DB, orderID, callerID uint, newStatus models.OrderStatus, force bool) (*models.Order, error) {
	if !statemachine.Recognized(newStatus) {
		return nil, statemachine.ErrUnknownStatus
	}

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !force && order.RestaurantID != callerID {
		return nil, ErrNotOwner
	}
	if err := statemachine.CanTransition(order.Status, newStatus); err != nil {
		return nil, err
	}

	if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	order.Status = newStatus
	return &order, nil
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"tastekart/cart"
	"tastekart/config"
	"tastekart/geocode"
	"tastekart/middleware"
	"tastekart/models"
	"tastekart/pricing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Geocoder resolves coordinates to addresses; swapped out in tests.
var Geocoder = geocode.NewClient()

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	CouponCode      string `json:"coupon_code"`
}

// Checkout validates the cart, resolves the delivery address and applies
// an optional coupon, then stores everything in the session for the
// payment step. Validation failures leave the session untouched so the
// customer only re-enters the offending field.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := loadSession(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
		return
	}

	lines := sessionLines(session)
	subtotal, err := cart.Subtotal(lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty. Please add items to proceed."})
		return
	}

	// Address preference: typed > geolocated > profile.
	address := req.DeliveryAddress
	if address == "" && session.LocatedAddress != "" && session.LocatedAddress != geocode.NotAvailable {
		address = session.LocatedAddress
	}
	if address == "" {
		var user models.User
		if err := config.DB.First(&user, userID).Error; err == nil {
			address = user.Address
		}
	}
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a delivery address."})
		return
	}

	discount := 0.0
	if req.CouponCode != "" {
		var coupon models.Coupon
		err := config.DB.Where("code = ?", req.CouponCode).First(&coupon).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": pricing.ErrCouponInvalid.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error applying coupon. Please try again."})
			}
			return
		}
		discount, err = pricing.Check(&coupon, subtotal, time.Now())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		session.PromoCode = req.CouponCode
	}

	session.DeliveryAddress = address
	session.DiscountPercentage = discount
	if err := saveSession(config.DB, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save checkout session"})
		return
	}

	final := pricing.Apply(subtotal, discount)
	c.JSON(http.StatusOK, gin.H{
		"message":             "Checkout complete, proceed to payment",
		"subtotal":            subtotal,
		"discount_percentage": discount,
		"discount_amount":     subtotal - final,
		"final_amount":        final,
		"delivery_address":    address,
	})
}

type SetLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// SetLocation reverse-geocodes the customer's coordinates and remembers
// the address in the session. A failed lookup is reported but harmless:
// checkout falls back to the typed or profile address.
func SetLocation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	address := Geocoder.Reverse(*req.Lat, *req.Lon)

	session, err := loadSession(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
		return
	}
	session.LocatedAddress = address
	if err := saveSession(config.DB, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": address != geocode.NotAvailable,
		"address": address,
	})
}

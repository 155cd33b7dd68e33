package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"tastekart/cart"
	"tastekart/config"
	"tastekart/middleware"
	"tastekart/orders"

	"github.com/gin-gonic/gin"
)

// SendOTP generates a 4-digit code, stores it in the session and returns
// it in the response — simulated delivery, there is no SMS channel.
func SendOTP(c *gin.Context) {
	userID := middleware.GetUserID(c)

	session, err := loadSession(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
		return
	}

	otp := fmt.Sprintf("%04d", rand.IntN(10000))
	session.OTPCode = otp
	if err := saveSession(config.DB, session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store OTP"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP generated successfully",
		"otp":     otp,
	})
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	PhoneNumber   string `json:"phone_number" binding:"required"`
	OTPCode       string `json:"otp_code" binding:"required"`
}

// SubmitPayment is the soft gate in front of order creation. The entered
// OTP is recorded on the payment transaction for manual reconciliation;
// it is deliberately NOT compared against the generated code, so this is
// no-op security, not a verified payment channel. On success the order,
// its items and the transaction are created atomically and the session's
// checkout state is cleared.
func SubmitPayment(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := loadSession(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load checkout session"})
		return
	}

	orderID, err := orders.Create(config.DB, orders.CreateInput{
		UserID:             userID,
		Lines:              sessionLines(session),
		DeliveryAddress:    session.DeliveryAddress,
		DiscountPercentage: session.DiscountPercentage,
		PaymentMethod:      req.PaymentMethod,
		PhoneNumber:        req.PhoneNumber,
		OTPCode:            req.OTPCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty. Please add items to proceed."})
		case errors.Is(err, orders.ErrMissingAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address is missing. Please go back to checkout."})
		case errors.Is(err, orders.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid phone number (e.g., +8801234567890)."})
		case errors.Is(err, orders.ErrMissingOTP):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter the OTP code received."})
		case errors.Is(err, orders.ErrMissingPaymentMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a payment method."})
		case errors.Is(err, orders.ErrItemUnavailable), errors.Is(err, cart.ErrMixedRestaurants),
			errors.Is(err, cart.ErrBadQuantity), errors.Is(err, cart.ErrNegativePrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing payment. Please try again."})
		}
		return
	}

	if err := clearCheckoutState(config.DB, session); err != nil {
		// The order is committed; a stale session is an inconvenience,
		// not a failure.
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order_id": orderID})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Payment recorded. Please wait for admin verification.",
		"order_id": orderID,
	})
}

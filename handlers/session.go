package handlers

import (
	"encoding/json"
	"errors"

	"tastekart/cart"
	"tastekart/models"

	"gorm.io/gorm"
)

// loadSession fetches the caller's checkout session, returning a fresh
// unsaved one if none exists yet.
func loadSession(db *gorm.DB, userID uint) (*models.CheckoutSession, error) {
	var s models.CheckoutSession
	err := db.Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.CheckoutSession{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func saveSession(db *gorm.DB, s *models.CheckoutSession) error {
	return db.Save(s).Error
}

func sessionLines(s *models.CheckoutSession) []cart.Line {
	if s.CartJSON == "" {
		return nil
	}
	var lines []cart.Line
	if err := json.Unmarshal([]byte(s.CartJSON), &lines); err != nil {
		return nil
	}
	return lines
}

func setSessionLines(s *models.CheckoutSession, lines []cart.Line) error {
	b, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	s.CartJSON = string(b)
	return nil
}

// clearCheckoutState wipes the cart, coupon, address and OTP after a
// successful order; the session row itself stays for the next checkout.
func clearCheckoutState(db *gorm.DB, s *models.CheckoutSession) error {
	s.CartJSON = ""
	s.DeliveryAddress = ""
	s.DiscountPercentage = 0
	s.PromoCode = ""
	s.OTPCode = ""
	return saveSession(db, s)
}

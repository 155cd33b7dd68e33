package models

import "time"

// CheckoutSession carries a customer's in-flight checkout state between
// requests: the synced cart, delivery address, applied coupon and the
// generated OTP. One row per user; the cart/coupon/address/OTP fields are
// cleared when an order is created from them.
type CheckoutSession struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	CartJSON           string    `json:"-" gorm:"column:cart_json"`
	DeliveryAddress    string    `json:"delivery_address"`
	LocatedAddress     string    `json:"located_address"`
	DiscountPercentage float64   `json:"discount_percentage"`
	PromoCode          string    `json:"promo_code"`
	OTPCode            string    `json:"-"`
	UpdatedAt          time.Time `json:"updated_at"`
}

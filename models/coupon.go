package models

import "time"

// Coupon is admin-created and never consumed: the same code stays valid
// for any number of orders until it expires.
type Coupon struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Code          string    `json:"code" gorm:"uniqueIndex;not null"`
	Discount      float64   `json:"discount" gorm:"not null"` // percentage, 0-100
	ExpiryDate    time.Time `json:"expiry_date" gorm:"not null"`
	MinOrderValue float64   `json:"min_order_value"`
	CreatedAt     time.Time `json:"created_at"`
}

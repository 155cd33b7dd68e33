package models

import "time"

// Review is write-once: at most one per (order, user), and only after
// the order has been delivered.
type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"not null;uniqueIndex:idx_review_order_user"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_review_order_user"`
	User         *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Rating       int       `json:"rating" gorm:"not null"` // 1-5
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

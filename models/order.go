package models

import "time"

// OrderStatus represents the state of an order in its lifecycle
type OrderStatus string

const (
	StatusValidating OrderStatus = "validating"
	StatusPending    OrderStatus = "pending"
	StatusReceived   OrderStatus = "received"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID                uint        `json:"id" gorm:"primaryKey"`
	UserID            uint        `json:"user_id" gorm:"not null;index"`
	Customer          *User       `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID      uint        `json:"restaurant_id" gorm:"not null;index"`
	Restaurant        *User       `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	TotalAmount       float64     `json:"total_amount" gorm:"not null"` // post-discount
	Status            OrderStatus `json:"status" gorm:"not null;default:'validating'"`
	DeliveryAddress   string      `json:"delivery_address" gorm:"not null"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
	Items             []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderItem snapshots quantity and unit price at order time, decoupled
// from later menu edits. Immutable once created.
type OrderItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int       `json:"quantity" gorm:"not null"`
	Price      float64   `json:"price" gorm:"not null"`
	Name       string    `json:"name"`
}

// PaymentTransaction is an audit record of the simulated payment, not a
// gateway receipt. The OTP is stored for manual reconciliation only.
type PaymentTransaction struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OrderID       uint      `json:"order_id" gorm:"not null;index"`
	Reference     string    `json:"reference" gorm:"uniqueIndex"`
	PaymentMethod string    `json:"payment_method" gorm:"not null"`
	PhoneNumber   string    `json:"phone_number" gorm:"not null"`
	OTPCode       string    `json:"otp_code"`
	Amount        float64   `json:"amount" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}

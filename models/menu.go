package models

import "time"

// DefaultMenuImage is used when a restaurant adds an item without a picture.
const DefaultMenuImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=800&q=80"

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   *User     `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name         string    `json:"name" gorm:"not null"`
	Category     string    `json:"category"`
	Price        float64   `json:"price" gorm:"not null"`
	PrepTime     int       `json:"prep_time"` // minutes
	Image        string    `json:"image"`
	Availability bool      `json:"availability" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

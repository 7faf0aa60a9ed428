package entity

import (
	"gorm.io/gorm"
)

// MenuItem prices are stored in minor units (e.g. cents). Carts and orders
// capture the price at add time; they never read it back from here.
type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `gorm:"not null;default:true" json:"isAvailable"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}

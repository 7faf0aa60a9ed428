package entity

import (
	"gorm.io/gorm"
)

// Cart is the open staging area for one (user, restaurant) pair; the unique
// index keeps it to at most one. Carts are hard-deleted on placement or
// clear, never archived.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_carts_user_restaurant" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"uniqueIndex:idx_carts_user_restaurant" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// Subtotal is derived from the items and rewritten in the same
	// transaction as every line mutation; callers never set it.
	Subtotal int64 `json:"subtotal"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

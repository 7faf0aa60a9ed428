package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_items_cart_menu" json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_items_cart_menu" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // snapshot at add time
}

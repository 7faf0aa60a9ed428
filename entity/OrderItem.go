package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an append-only snapshot of a cart line; qty and unit price
// stay fixed even when the catalog price changes later.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the item name is displayed

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
}

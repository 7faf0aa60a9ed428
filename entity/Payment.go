package entity

import (
	"gorm.io/gorm"
)

// Payment is created alongside its order with status pending. No gateway is
// wired; later transitions are out of scope here.
type Payment struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Method string        `json:"method"`
	Amount int64         `json:"amount"`
	Status PaymentStatus `gorm:"size:20;not null;default:pending" json:"status"`
}

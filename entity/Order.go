package entity

import (
	"gorm.io/gorm"
)

// Order is immutable after placement except for Status. TotalAmount is the
// cart subtotal frozen at placement time; it is never recomputed.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for owner views needing customer detail

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	TotalAmount     int64  `json:"totalAmount"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryPhone   string `json:"deliveryPhone"`
	Notes           string `json:"notes"`

	Status        OrderStatus   `gorm:"size:20;not null;default:pending" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:pending" json:"paymentStatus"`

	Items    []OrderItem `json:"-"`
	Payments []Payment   `json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Cuisine      string  `json:"cuisine"`
	Area         string  `json:"area"`
	Rating       float64 `json:"rating"`
	DeliveryTime string  `json:"deliveryTime"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	ImageURL     string  `json:"imageUrl"`
	Status       string  `gorm:"not null;default:active" json:"status"`

	OwnerID uint `json:"ownerId"` // users.id
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}

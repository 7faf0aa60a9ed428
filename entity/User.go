package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `gorm:"not null;default:customer" json:"role"`
	Status  string `gorm:"not null;default:active" json:"status"`

	// Relations — preload only when needed
	RestaurantsOwned []Restaurant `gorm:"foreignKey:OwnerID" json:"-"`
	Carts            []Cart       `json:"-"`
	Orders           []Order      `json:"-"`
	Payments         []Payment    `json:"-"`
}

package repository

import (
	"errors"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type UserRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ListAll feeds the admin user screen.
func (r *UserRepository) ListAll() ([]UserRow, error) {
	var out []UserRow
	err := r.DB.Model(&entity.User{}).
		Select("id, name, email, role, status").
		Order("id").
		Scan(&out).Error
	return out, err
}

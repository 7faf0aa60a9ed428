package repository

import (
	"errors"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"

	"gorm.io/gorm"
)

// CatalogRepository is the lookup side of the restaurant/menu catalog: the
// cart snapshots prices from here and the owner workflow resolves its
// restaurant here.
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// FindMenuItem resolves an item only within the given restaurant; an item
// that exists elsewhere is nil here.
func (r *CatalogRepository) FindMenuItem(menuItemID, restaurantID uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price, restaurant_id, is_available").
		Where("id = ? AND restaurant_id = ?", menuItemID, restaurantID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindRestaurantByOwner resolves the single restaurant an owner runs.
func (r *CatalogRepository) FindRestaurantByOwner(ownerUserID uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Where("owner_id = ?", ownerUserID).First(&rest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("status = ?", "active").
		Order("rating DESC").Limit(50).
		Find(&out).Error
	return out, err
}

type MenuItemView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}

func (r *CatalogRepository) ListMenu(restaurantID uint) ([]MenuItemView, error) {
	var out []MenuItemView
	err := r.DB.Table("menu_items AS m").
		Select("m.id, m.name, m.description, m.price, m.image_url, c.name AS category").
		Joins("LEFT JOIN categories c ON c.id = m.category_id").
		Where("m.restaurant_id = ? AND m.is_available = ? AND m.deleted_at IS NULL", restaurantID, true).
		Order("c.name, m.name").
		Scan(&out).Error
	return out, err
}

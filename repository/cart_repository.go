package repository

import (
	"errors"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCart returns the open cart for (user, restaurant), nil when none exists.
func (r *CartRepository) GetCart(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCartLocked takes a row lock on the cart so placement and concurrent
// line mutations serialize per cart. SQLite has a single writer anyway, so
// the clause is only added on postgres.
func (r *CartRepository) GetCartLocked(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	if tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var c entity.Cart
	err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	c, err := r.GetCartLocked(tx, userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	nc := entity.Cart{UserID: userID, RestaurantID: restaurantID}
	if err := tx.Create(&nc).Error; err != nil {
		return nil, err
	}
	return &nc, nil
}

// UpsertItem merges quantity into an existing line for the same menu item.
// The stored unit price wins over the incoming one so the add-time snapshot
// survives later catalog price changes.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, row.MenuItemID).First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// FindItemForUser resolves a cart line only if it sits in one of the user's
// carts; nil when it doesn't.
func (r *CartRepository) FindItemForUser(tx *gorm.DB, userID, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) SetItemQty(tx *gorm.DB, itemID uint, qty int) error {
	return tx.Model(&entity.CartItem{}).Where("id = ?", itemID).Update("qty", qty).Error
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Where("id = ?", itemID).Delete(&entity.CartItem{}).Error
}

// RecomputeSubtotal rewrites the cart's subtotal from its lines. Runs in the
// same transaction as the line mutation so readers never see them diverge.
func (r *CartRepository) RecomputeSubtotal(tx *gorm.DB, cartID uint) error {
	return tx.Exec(`
		UPDATE carts
		   SET subtotal = COALESCE((SELECT SUM(qty * unit_price) FROM cart_items WHERE cart_id = ?), 0)
		 WHERE id = ?
	`, cartID, cartID).Error
}

func (r *CartRepository) GetCartItems(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Order("id").Find(&items).Error
	return items, err
}

// CartLineView is a cart line joined with the current item name for display.
// Qty and unit price come from the line, never from the catalog.
type CartLineView struct {
	ID         uint   `json:"id"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	UnitPrice  int64  `json:"unitPrice"`
}

func (r *CartRepository) GetCartLines(cartID uint) ([]CartLineView, error) {
	var out []CartLineView
	err := r.DB.Table("cart_items AS ci").
		Select("ci.id, ci.menu_item_id, m.name, ci.qty, ci.unit_price").
		Joins("LEFT JOIN menu_items m ON m.id = ci.menu_item_id").
		Where("ci.cart_id = ?", cartID).
		Order("ci.id").
		Scan(&out).Error
	return out, err
}

// DeleteCart removes the cart and its lines for good; carts are transient
// and never archived.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

// DeleteCartsForUser clears one cart (restaurantID given) or all of the
// user's carts. Clearing what isn't there is fine.
func (r *CartRepository) DeleteCartsForUser(tx *gorm.DB, userID uint, restaurantID *uint) error {
	q := tx.Where("user_id = ?", userID)
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}

	var carts []entity.Cart
	if err := q.Find(&carts).Error; err != nil {
		return err
	}
	for _, c := range carts {
		if err := r.DeleteCart(tx, c.ID); err != nil {
			return err
		}
	}
	return nil
}

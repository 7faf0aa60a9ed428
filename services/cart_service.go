package services

import (
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository // price lookups at add time
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, cat *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: cat}
}

type AddToCartIn struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	MenuItemID   uint `json:"menuItemId" binding:"required"`
	Qty          int  `json:"qty" binding:"required"`
}

type CartView struct {
	ID           uint                      `json:"id"`
	RestaurantID uint                      `json:"restaurantId"`
	Subtotal     int64                     `json:"subtotal"`
	Items        []repository.CartLineView `json:"items"`
}

// Get returns the cart with display-resolved lines, or nil when the user has
// no open cart for that restaurant. No cart is an empty result, not an error.
func (s *CartService) Get(userID, restaurantID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetCart(s.DB, userID, restaurantID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, nil
	}
	lines, err := s.CartRepo.GetCartLines(cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		ID:           cart.ID,
		RestaurantID: cart.RestaurantID,
		Subtotal:     cart.Subtotal,
		Items:        lines,
	}, nil
}

// Add snapshots the catalog price into a cart line. Adding an item already in
// the cart merges quantities at the line's stored price.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty < 1 {
		return apperr.E(apperr.CodeInvalidInput, "Invalid quantity")
	}

	item, err := s.CatalogRepo.FindMenuItem(in.MenuItemID, in.RestaurantID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperr.E(apperr.CodeNotFound, "Menu item not found")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, userID, in.RestaurantID)
		if err != nil {
			return err
		}
		line := &entity.CartItem{MenuItemID: item.ID, Qty: in.Qty, UnitPrice: item.Price}
		if err := s.CartRepo.UpsertItem(tx, cart.ID, line); err != nil {
			return err
		}
		return s.CartRepo.RecomputeSubtotal(tx, cart.ID)
	})
}

// SetItemQuantity overwrites a line's quantity; zero deletes the line.
// A line that is already gone makes both cases a no-op success.
func (s *CartService) SetItemQuantity(userID, itemID uint, qty int) error {
	if qty < 0 {
		return apperr.E(apperr.CodeInvalidInput, "Invalid quantity")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		it, err := s.CartRepo.FindItemForUser(tx, userID, itemID)
		if err != nil {
			return err
		}
		if it == nil {
			return nil
		}
		if qty == 0 {
			if err := s.CartRepo.DeleteItem(tx, it.ID); err != nil {
				return err
			}
		} else {
			if err := s.CartRepo.SetItemQty(tx, it.ID, qty); err != nil {
				return err
			}
		}
		return s.CartRepo.RecomputeSubtotal(tx, it.CartID)
	})
}

// Clear drops one cart (restaurantID given) or every cart the user has.
// Idempotent.
func (s *CartService) Clear(userID uint, restaurantID *uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteCartsForUser(tx, userID, restaurantID)
	})
}

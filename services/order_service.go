package services

import (
	"time"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/pkg/apperr"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	catalogRepo *repository.CatalogRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, CatalogRepo: catalogRepo}
}

// ----- Placement -----

type PlaceOrderIn struct {
	RestaurantID    uint   `json:"restaurantId" binding:"required"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	DeliveryPhone   string `json:"deliveryPhone"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"paymentMethod"`
}

type PlaceOrderOut struct {
	OrderID     uint  `json:"orderId"`
	TotalAmount int64 `json:"totalAmount"`
}

// PlaceOrder drains the cart into an order, its line snapshots and a pending
// payment, then drops the cart — all of it or none of it. The cart row is
// locked for the duration so a racing add or clear waits its turn.
func (s *OrderService) PlaceOrder(userID uint, in *PlaceOrderIn) (*PlaceOrderOut, error) {
	method := entity.NormalizePaymentMethod(in.PaymentMethod)

	var out PlaceOrderOut
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartLocked(tx, userID, in.RestaurantID)
		if err != nil {
			return err
		}
		if cart == nil {
			return apperr.E(apperr.CodeNotFound, "Cart not found")
		}

		lines, err := s.CartRepo.GetCartItems(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperr.E(apperr.CodeInvalidState, "Cart is empty")
		}

		order := entity.Order{
			UserID:          userID,
			RestaurantID:    in.RestaurantID,
			TotalAmount:     cart.Subtotal,
			DeliveryAddress: in.DeliveryAddress,
			DeliveryPhone:   in.DeliveryPhone,
			Notes:           in.Notes,
			Status:          entity.OrderPending,
			PaymentStatus:   entity.PaymentPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		// copy cart lines verbatim
		for _, it := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		p := entity.Payment{
			OrderID: order.ID,
			UserID:  userID,
			Method:  method,
			Amount:  order.TotalAmount,
			Status:  entity.PaymentPending,
		}
		if err := s.Repo.CreatePayment(tx, &p); err != nil {
			return err
		}

		if err := s.CartRepo.DeleteCart(tx, cart.ID); err != nil {
			return err
		}

		out = PlaceOrderOut{OrderID: order.ID, TotalAmount: order.TotalAmount}
		return nil
	})
	if err != nil {
		if apperr.As(err) != nil {
			// pre-mutation check; nothing was written
			return nil, err
		}
		return nil, apperr.Wrap(apperr.CodeTransactionFailure, "Failed to place order", err)
	}
	return &out, nil
}

// ----- Status -----

// UpdateStatus lets the owning restaurant overwrite an order's status with
// any member of the valid set. Repeating a value is a no-op success.
func (s *OrderService) UpdateStatus(ownerUserID, orderID uint, status entity.OrderStatus) error {
	rest, err := s.CatalogRepo.FindRestaurantByOwner(ownerUserID)
	if err != nil {
		return err
	}
	if rest == nil {
		return apperr.E(apperr.CodeForbidden, "Restaurant not found")
	}

	if !status.Valid() {
		return apperr.E(apperr.CodeInvalidInput, "Invalid status")
	}

	o, err := s.Repo.GetOrderForRestaurant(rest.ID, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		// not this restaurant's order; don't reveal whether it exists
		return apperr.E(apperr.CodeForbidden, "Order not found")
	}

	return s.Repo.UpdateStatus(s.DB, orderID, status)
}

// ----- Customer reads -----

type OrderDetail struct {
	ID            uint                       `json:"id"`
	RestaurantID  uint                       `json:"restaurantId"`
	TotalAmount   int64                      `json:"totalAmount"`
	Status        entity.OrderStatus         `json:"status"`
	PaymentStatus entity.PaymentStatus       `json:"paymentStatus"`
	CreatedAt     time.Time                  `json:"createdAt"`
	Items         []repository.OrderLineView `json:"items"`
}

// GetOrder returns the order only to its owner; anyone else gets NotFound so
// order ids don't leak.
func (s *OrderService) GetOrder(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.E(apperr.CodeNotFound, "Order not found")
	}
	items, err := s.Repo.GetOrderLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID:            o.ID,
		RestaurantID:  o.RestaurantID,
		TotalAmount:   o.TotalAmount,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		CreatedAt:     o.CreatedAt,
		Items:         items,
	}, nil
}

// ListOrders returns up to 50 summaries, newest first. An unknown status
// filter just matches nothing.
func (s *OrderService) ListOrders(userID uint, status string) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, status, 50)
}

// ----- Owner reads -----

// ListRestaurantOrders resolves the restaurant from the owner, never from
// caller input, so one owner cannot read another's orders.
func (s *OrderService) ListRestaurantOrders(ownerUserID uint, status string) ([]repository.OwnerOrderSummary, error) {
	rest, err := s.CatalogRepo.FindRestaurantByOwner(ownerUserID)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, apperr.E(apperr.CodeForbidden, "Restaurant not found")
	}
	return s.Repo.ListOrdersForRestaurant(rest.ID, status, 100)
}

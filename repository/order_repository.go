package repository

import (
	"errors"
	"time"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes (placement transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

// ---------------- Customer reads ----------------

// GetOrderForUser scopes by owner; an order belonging to someone else is
// indistinguishable from a missing one (nil, nil).
func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderLineView is an order line joined with the current item name; qty and
// price are the placement-time snapshot.
type OrderLineView struct {
	ID         uint   `json:"id"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	UnitPrice  int64  `json:"unitPrice"`
}

func (r *OrderRepository) GetOrderLines(orderID uint) ([]OrderLineView, error) {
	var out []OrderLineView
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, m.name, oi.qty, oi.unit_price").
		Joins("LEFT JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&out).Error
	return out, err
}

type OrderSummary struct {
	ID            uint                 `json:"id"`
	RestaurantID  uint                 `json:"restaurantId"`
	TotalAmount   int64                `json:"totalAmount"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time            `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, status string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	db := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, total_amount, status, payment_status, created_at").
		Where("user_id = ?", userID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []OrderSummary
	err := db.Order("created_at DESC, id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// ---------------- Owner reads ----------------

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OwnerOrderSummary struct {
	ID              uint               `json:"id"`
	UserID          uint               `json:"userId"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	TotalAmount     int64              `json:"totalAmount"`
	Status          entity.OrderStatus `json:"status"`
	DeliveryAddress string             `json:"deliveryAddress"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// ListOrdersForRestaurant joins users for the customer name and phone the
// owner dashboard shows.
func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status string, limit int) ([]OwnerOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, u.name AS customer_name, u.phone AS customer_phone, o.total_amount, o.status, o.delivery_address, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ?", restID)
	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	var out []OwnerOrderSummary
	err := db.Order("o.created_at DESC, o.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// ---------------- Status ----------------

// UpdateStatus overwrites status and bumps updated_at. Writing the value the
// order already has is a plain success.
func (r *OrderRepository) UpdateStatus(db *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return db.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

package services

import (
	"testing"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// keep every connection on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.Payment{},
	))
	return db
}

// fixture is a fresh database with one restaurant (two priced items) plus a
// customer and the restaurant's owner.
type fixture struct {
	db *gorm.DB

	cartSvc  *CartService
	orderSvc *OrderService

	customer entity.User
	owner    entity.User
	rest     entity.Restaurant
	itemA    entity.MenuItem // price 100
	itemB    entity.MenuItem // price 250
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	f := &fixture{
		db:       db,
		cartSvc:  NewCartService(db, cartRepo, catalogRepo),
		orderSvc: NewOrderService(db, orderRepo, cartRepo, catalogRepo),
	}

	f.customer = entity.User{Name: "Cara Customer", Email: "cara@example.com", Phone: "555-1234", Role: entity.RoleCustomer, Status: "active"}
	require.NoError(t, db.Create(&f.customer).Error)

	f.owner = entity.User{Name: "Omar Owner", Email: "omar@example.com", Role: entity.RoleOwner, Status: "active"}
	require.NoError(t, db.Create(&f.owner).Error)

	f.rest = entity.Restaurant{Name: "Testaurant", OwnerID: f.owner.ID, Status: "active", Rating: 4.0}
	require.NoError(t, db.Create(&f.rest).Error)

	f.itemA = entity.MenuItem{Name: "Item A", Price: 100, RestaurantID: f.rest.ID, IsAvailable: true}
	require.NoError(t, db.Create(&f.itemA).Error)

	f.itemB = entity.MenuItem{Name: "Item B", Price: 250, RestaurantID: f.rest.ID, IsAvailable: true}
	require.NoError(t, db.Create(&f.itemB).Error)

	return f
}

// secondRestaurant adds another owner with their own restaurant and item.
func (f *fixture) secondRestaurant(t *testing.T) (entity.User, entity.Restaurant, entity.MenuItem) {
	t.Helper()

	owner := entity.User{Name: "Olive Other", Email: "olive@example.com", Role: entity.RoleOwner, Status: "active"}
	require.NoError(t, f.db.Create(&owner).Error)

	rest := entity.Restaurant{Name: "Other Place", OwnerID: owner.ID, Status: "active"}
	require.NoError(t, f.db.Create(&rest).Error)

	item := entity.MenuItem{Name: "Other Dish", Price: 500, RestaurantID: rest.ID, IsAvailable: true}
	require.NoError(t, f.db.Create(&item).Error)

	return owner, rest, item
}

func (f *fixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

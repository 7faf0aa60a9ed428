package configs

import (
	"log"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
)

// SeedDemo loads a minimal demo dataset: an admin, an owner with a
// restaurant and menu, and a customer. Idempotent; safe on every start.
func SeedDemo() error {
	db := DB()

	adminEmail := getEnv("ADMIN_EMAIL", "admin@foodhub.local")

	var admin entity.User
	if err := db.Where(entity.User{Email: adminEmail}).
		Attrs(entity.User{Name: "Admin", Role: entity.RoleAdmin, Status: "active"}).
		FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	var owner entity.User
	if err := db.Where(entity.User{Email: "owner@foodhub.local"}).
		Attrs(entity.User{Name: "Demo Owner", Phone: "555-0100", Role: entity.RoleOwner, Status: "active"}).
		FirstOrCreate(&owner).Error; err != nil {
		return err
	}

	var customer entity.User
	if err := db.Where(entity.User{Email: "customer@foodhub.local"}).
		Attrs(entity.User{Name: "Demo Customer", Phone: "555-0101", Address: "12 Demo Lane", Role: entity.RoleCustomer, Status: "active"}).
		FirstOrCreate(&customer).Error; err != nil {
		return err
	}

	var mains, drinks entity.Category
	if err := db.Where(entity.Category{Name: "Mains"}).FirstOrCreate(&mains).Error; err != nil {
		return err
	}
	if err := db.Where(entity.Category{Name: "Drinks"}).FirstOrCreate(&drinks).Error; err != nil {
		return err
	}

	var rest entity.Restaurant
	if err := db.Where(entity.Restaurant{Name: "Demo Diner", OwnerID: owner.ID}).
		Attrs(entity.Restaurant{
			Description:  "Seeded demo restaurant",
			Cuisine:      "American",
			Area:         "Downtown",
			Rating:       4.5,
			DeliveryTime: "30-40 min",
			Phone:        "555-0102",
			Address:      "1 Market St",
			Status:       "active",
		}).
		FirstOrCreate(&rest).Error; err != nil {
		return err
	}

	menu := []entity.MenuItem{
		{Name: "Classic Burger", Description: "Beef patty, cheddar, pickles", Price: 950, CategoryID: mains.ID, RestaurantID: rest.ID, IsAvailable: true},
		{Name: "Veggie Bowl", Description: "Grains and roast vegetables", Price: 850, CategoryID: mains.ID, RestaurantID: rest.ID, IsAvailable: true},
		{Name: "Lemonade", Description: "Fresh squeezed", Price: 300, CategoryID: drinks.ID, RestaurantID: rest.ID, IsAvailable: true},
	}
	for i := range menu {
		var m entity.MenuItem
		if err := db.Where(entity.MenuItem{Name: menu[i].Name, RestaurantID: rest.ID}).
			Attrs(menu[i]).
			FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}

	log.Println("demo data ready")
	return nil
}

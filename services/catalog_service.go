package services

import (
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/entity"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/repository"
)

// CatalogService serves the public restaurant and menu listings.
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) ListRestaurants() ([]entity.Restaurant, error) {
	return s.Repo.ListRestaurants()
}

func (s *CatalogService) ListMenu(restaurantID uint) ([]repository.MenuItemView, error) {
	return s.Repo.ListMenu(restaurantID)
}

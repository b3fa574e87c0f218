// services/menu_item_service.go
package services

import (
	"github.com/info-graph/info-graph-task/availability"
	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/apperr"
	"github.com/info-graph/info-graph-task/repository"
)

type MenuItemService struct {
	Repo        *repository.MenuItemRepository
	Restaurants *repository.RestaurantRepository
}

func NewMenuItemService(repo *repository.MenuItemRepository, restaurants *repository.RestaurantRepository) *MenuItemService {
	return &MenuItemService{Repo: repo, Restaurants: restaurants}
}

func (s *MenuItemService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuItemService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Menu item not found")
	}
	return item, nil
}

// ListByRestaurant verifies the parent before returning its (possibly
// empty) menu.
func (s *MenuItemService) ListByRestaurant(restID uint) ([]entity.MenuItem, error) {
	if err := s.requireRestaurant(restID, "Restaurant not found"); err != nil {
		return nil, err
	}
	return s.Repo.FindByRestaurant(restID)
}

func (s *MenuItemService) Create(item *entity.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if err := s.requireRestaurant(item.RestaurantID, "Restaurant not found"); err != nil {
		return err
	}
	return s.Repo.Create(item)
}

// Update re-checks parent existence only when the item is moved to a
// different restaurant.
func (s *MenuItemService) Update(id uint, item *entity.MenuItem) error {
	current, err := s.Repo.FindByID(id)
	if err != nil {
		return notFoundOr(err, "Menu item not found")
	}
	if err := validateMenuItem(item); err != nil {
		return err
	}
	if item.RestaurantID != current.RestaurantID {
		if err := s.requireRestaurant(item.RestaurantID, "New restaurant not found"); err != nil {
			return err
		}
	}
	item.ID = current.ID
	item.CreatedAt = current.CreatedAt
	item.Restaurant = nil
	return s.Repo.Update(item)
}

func (s *MenuItemService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return notFoundOr(err, "Menu item not found")
	}
	return s.Repo.Delete(id)
}

func (s *MenuItemService) requireRestaurant(id uint, msg string) error {
	ok, err := s.Restaurants.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(msg)
	}
	return nil
}

func validateMenuItem(item *entity.MenuItem) error {
	if item.Name == "" {
		return apperr.Validation("name is required")
	}
	if item.RestaurantID == 0 {
		return apperr.Validation("restaurant_id is required")
	}
	if item.Price < 0 {
		return apperr.Validation("price must not be negative")
	}
	if err := availability.ValidateTimeOfDay(item.ServingStartTime); err != nil {
		return err
	}
	return availability.ValidateTimeOfDay(item.ServingEndTime)
}

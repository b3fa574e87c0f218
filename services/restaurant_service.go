// services/restaurant_service.go
package services

import (
	"github.com/info-graph/info-graph-task/availability"
	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/apperr"
	"github.com/info-graph/info-graph-task/repository"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Restaurant not found")
	}
	return rest, nil
}

func (s *RestaurantService) GetWithRelations(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByIDWithRelations(id)
	if err != nil {
		return nil, notFoundOr(err, "Restaurant not found")
	}
	return rest, nil
}

func (s *RestaurantService) Create(rest *entity.Restaurant) error {
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	return s.Repo.Create(rest)
}

func (s *RestaurantService) Update(id uint, rest *entity.Restaurant) error {
	current, err := s.Repo.FindByID(id)
	if err != nil {
		return notFoundOr(err, "Restaurant not found")
	}
	if err := validateRestaurant(rest); err != nil {
		return err
	}
	rest.ID = current.ID
	rest.CreatedAt = current.CreatedAt
	return s.Repo.Update(rest)
}

// Delete removes the restaurant and all of its menu items and maintenance
// records atomically.
func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return notFoundOr(err, "Restaurant not found")
	}
	return s.Repo.DeleteCascade(id)
}

func validateRestaurant(rest *entity.Restaurant) error {
	if rest.Name == "" {
		return apperr.Validation("name is required")
	}
	if rest.Phone == "" {
		return apperr.Validation("phone is required")
	}
	if rest.StreetName == "" {
		return apperr.Validation("streetName is required")
	}
	if err := availability.ValidateTimeOfDay(rest.OpeningTime); err != nil {
		return err
	}
	return availability.ValidateTimeOfDay(rest.ClosingTime)
}

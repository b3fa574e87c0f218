// services/maintenance_service.go
package services

import (
	"github.com/info-graph/info-graph-task/availability"
	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/apperr"
	"github.com/info-graph/info-graph-task/repository"
)

type MaintenanceService struct {
	Repo        *repository.MaintenanceRepository
	Restaurants *repository.RestaurantRepository
}

func NewMaintenanceService(repo *repository.MaintenanceRepository, restaurants *repository.RestaurantRepository) *MaintenanceService {
	return &MaintenanceService{Repo: repo, Restaurants: restaurants}
}

func (s *MaintenanceService) List() ([]entity.MaintenanceHistory, error) {
	return s.Repo.FindAll()
}

func (s *MaintenanceService) Get(id uint) (*entity.MaintenanceHistory, error) {
	record, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Maintenance record not found")
	}
	return record, nil
}

func (s *MaintenanceService) ListByRestaurant(restID uint) ([]entity.MaintenanceHistory, error) {
	if err := s.requireRestaurant(restID, "Restaurant not found"); err != nil {
		return nil, err
	}
	return s.Repo.FindByRestaurant(restID)
}

func (s *MaintenanceService) Create(record *entity.MaintenanceHistory) error {
	if err := validateMaintenance(record); err != nil {
		return err
	}
	if err := s.requireRestaurant(record.RestaurantID, "Restaurant not found"); err != nil {
		return err
	}
	return s.Repo.Create(record)
}

func (s *MaintenanceService) Update(id uint, record *entity.MaintenanceHistory) error {
	current, err := s.Repo.FindByID(id)
	if err != nil {
		return notFoundOr(err, "Maintenance record not found")
	}
	if err := validateMaintenance(record); err != nil {
		return err
	}
	if record.RestaurantID != current.RestaurantID {
		if err := s.requireRestaurant(record.RestaurantID, "New restaurant not found"); err != nil {
			return err
		}
	}
	record.ID = current.ID
	record.CreatedAt = current.CreatedAt
	record.Restaurant = nil
	return s.Repo.Update(record)
}

func (s *MaintenanceService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return notFoundOr(err, "Maintenance record not found")
	}
	return s.Repo.Delete(id)
}

func (s *MaintenanceService) requireRestaurant(id uint, msg string) error {
	ok, err := s.Restaurants.Exists(id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(msg)
	}
	return nil
}

func validateMaintenance(record *entity.MaintenanceHistory) error {
	if record.RestaurantID == 0 {
		return apperr.Validation("restaurant_id is required")
	}
	if !record.ImpactLevel.Valid() {
		return apperr.Validationf("invalid impact level %q", record.ImpactLevel)
	}
	if record.Cost < 0 {
		return apperr.Validation("cost must not be negative")
	}
	if err := availability.ValidateDate(record.StartDate); err != nil {
		return err
	}
	return availability.ValidateDate(record.EndDate)
}

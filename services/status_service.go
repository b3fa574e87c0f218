// services/status_service.go
package services

import (
	"time"

	"github.com/info-graph/info-graph-task/availability"
	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/repository"
)

// StatusService assembles the availability engine's output into the
// report the client and the websocket feed render.
type StatusService struct {
	Restaurants *repository.RestaurantRepository
}

func NewStatusService(restaurants *repository.RestaurantRepository) *StatusService {
	return &StatusService{Restaurants: restaurants}
}

type ActiveMaintenanceInfo struct {
	ID          uint               `json:"id"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	ImpactLevel entity.ImpactLevel `json:"impactLevel"`
}

type MenuItemStatus struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	availability.MenuItemAvailability
}

type StatusReport struct {
	RestaurantID      uint                   `json:"restaurant_id"`
	Label             string                 `json:"label"`
	Severity          availability.Severity  `json:"severity"`
	Open              bool                   `json:"open"`
	ActiveMaintenance *ActiveMaintenanceInfo `json:"activeMaintenance,omitempty"`
	MenuItems         []MenuItemStatus       `json:"menuItems"`
	CheckedAt         time.Time              `json:"checkedAt"`
}

// Report computes the full status snapshot for one restaurant at now.
func (s *StatusService) Report(id uint, now time.Time) (*StatusReport, error) {
	rest, err := s.Restaurants.FindByIDWithRelations(id)
	if err != nil {
		return nil, notFoundOr(err, "Restaurant not found")
	}

	status, err := availability.ComputeRestaurantStatus(rest, rest.MaintenanceRecords, now)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		RestaurantID: rest.ID,
		Label:        status.Label(),
		Severity:     status.Severity(),
		Open:         status.IsOpen(),
		MenuItems:    make([]MenuItemStatus, 0, len(rest.MenuItems)),
		CheckedAt:    now,
	}

	active, err := availability.ActiveMaintenance(rest.MaintenanceRecords, now)
	if err != nil {
		return nil, err
	}
	if active != nil {
		report.ActiveMaintenance = &ActiveMaintenanceInfo{
			ID:          active.ID,
			StartDate:   active.StartDate,
			EndDate:     active.EndDate,
			ImpactLevel: active.ImpactLevel,
		}
	}

	for i := range rest.MenuItems {
		item := &rest.MenuItems[i]
		avail, err := availability.ComputeMenuItemAvailability(item, status, now)
		if err != nil {
			return nil, err
		}
		report.MenuItems = append(report.MenuItems, MenuItemStatus{
			ID:                   item.ID,
			Name:                 item.Name,
			MenuItemAvailability: avail,
		})
	}
	return report, nil
}

package services_test

import (
	"testing"
	"time"

	"github.com/info-graph/info-graph-task/availability"
	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/apperr"
	"github.com/info-graph/info-graph-task/repository"
	"github.com/info-graph/info-graph-task/services"
)

func TestStatusReport(t *testing.T) {
	db := setupTestDB(t)
	rest := seedRestaurant(t, db) // hours 08:00-22:00

	items := []entity.MenuItem{
		{Name: "Lunch Special", ServingStartTime: "11:00", ServingEndTime: "14:00", Price: 12.5, RestaurantID: rest.ID},
		{Name: "Dinner Plate", ServingStartTime: "17:00", ServingEndTime: "21:00", Price: 18, RestaurantID: rest.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed items: %v", err)
	}

	svc := services.NewStatusService(repository.NewRestaurantRepository(db))
	now := time.Date(2025, 6, 15, 13, 30, 0, 0, time.Local)

	report, err := svc.Report(rest.ID, now)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if report.Label != "Currently Open" || report.Severity != availability.SeveritySuccess {
		t.Errorf("unexpected status %q/%q", report.Label, report.Severity)
	}
	if !report.Open {
		t.Error("expected open = true")
	}
	if report.ActiveMaintenance != nil {
		t.Errorf("unexpected active maintenance %+v", report.ActiveMaintenance)
	}
	if len(report.MenuItems) != 2 {
		t.Fatalf("expected 2 menu entries, got %d", len(report.MenuItems))
	}

	lunch, dinner := report.MenuItems[0], report.MenuItems[1]
	if !lunch.Available || lunch.Remaining != "30m remaining" {
		t.Errorf("lunch = %+v", lunch)
	}
	if dinner.Available || dinner.AvailableIn != "Available in 3h 30m" {
		t.Errorf("dinner = %+v", dinner)
	}
}

func TestStatusReportUnderMaintenance(t *testing.T) {
	db := setupTestDB(t)
	rest := seedRestaurant(t, db)

	now := time.Date(2025, 6, 15, 13, 30, 0, 0, time.Local)
	record := entity.MaintenanceHistory{
		StartDate:    now.Format("2006-01-02"),
		EndDate:      now.AddDate(0, 0, 2).Format("2006-01-02"),
		ImpactLevel:  entity.ImpactComplete,
		Cost:         2000,
		RestaurantID: rest.ID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed maintenance: %v", err)
	}
	item := entity.MenuItem{
		Name: "Lunch Special", ServingStartTime: "11:00", ServingEndTime: "14:00",
		Price: 12.5, RestaurantID: rest.ID,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	svc := services.NewStatusService(repository.NewRestaurantRepository(db))
	report, err := svc.Report(rest.ID, now)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if report.Label != "Closed for Maintenance" || report.Severity != availability.SeverityDanger {
		t.Errorf("unexpected status %q/%q", report.Label, report.Severity)
	}
	if report.Open {
		t.Error("expected open = false")
	}
	if report.ActiveMaintenance == nil || report.ActiveMaintenance.ImpactLevel != entity.ImpactComplete {
		t.Errorf("active maintenance = %+v", report.ActiveMaintenance)
	}
	// In-window item is still unavailable while fully closed.
	if report.MenuItems[0].Available {
		t.Error("menu item available while closed for maintenance")
	}
}

func TestStatusReportMissingRestaurant(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewStatusService(repository.NewRestaurantRepository(db))

	_, err := svc.Report(999, time.Now())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestStatusReportMalformedHours(t *testing.T) {
	db := setupTestDB(t)
	rest := &entity.Restaurant{
		Name: "Broken Hours", Phone: "555", StreetName: "x",
		OpeningTime: "whenever", ClosingTime: "22:00",
	}
	if err := db.Create(rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	svc := services.NewStatusService(repository.NewRestaurantRepository(db))
	_, err := svc.Report(rest.ID, time.Now())
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

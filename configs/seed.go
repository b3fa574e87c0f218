package configs

import (
	"log"
	"time"

	"github.com/info-graph/info-graph-task/entity"
)

// SeedSampleData inserts a couple of demo restaurants on an empty
// database, for local development against the SPA.
func SeedSampleData() error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("skip demo seed: restaurants already present")
		return nil
	}

	lat, lng := 40.7527, -73.9772
	diner := entity.Restaurant{
		Name:        "Grand Central Diner",
		Phone:       "212-555-0142",
		StreetName:  "89 E 42nd St",
		OpeningTime: "08:00",
		ClosingTime: "22:00",
		Landmarks:   []string{"Grand Central Terminal", "Chrysler Building"},
		Latitude:    &lat,
		Longitude:   &lng,
		MenuItems: []entity.MenuItem{
			{
				Name:             "Lunch Special",
				ServingStartTime: "11:00",
				ServingEndTime:   "14:00",
				Price:            12.50,
				Description:      "Soup, sandwich and a drink",
			},
			{
				Name:             "All-Day Breakfast",
				ServingStartTime: "08:00",
				ServingEndTime:   "22:00",
				Price:            9.75,
			},
		},
	}
	if err := db.Create(&diner).Error; err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	bistro := entity.Restaurant{
		Name:        "Harborside Bistro",
		Phone:       "212-555-0197",
		StreetName:  "12 South St",
		OpeningTime: "10:00",
		ClosingTime: "23:00",
		Landmarks:   []string{"Pier 11"},
		MaintenanceRecords: []entity.MaintenanceHistory{
			{
				StartDate:   today,
				EndDate:     nextWeek,
				ImpactLevel: entity.ImpactPartial,
				Cost:        1800,
				Comments:    "Kitchen hood replacement, bar still serving",
			},
		},
	}
	if err := db.Create(&bistro).Error; err != nil {
		return err
	}

	log.Println("seeded demo restaurants")
	return nil
}

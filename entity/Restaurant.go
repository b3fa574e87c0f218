package entity

import (
	"time"

	"gorm.io/gorm"
)

// Restaurant is the aggregate root: menu items and maintenance records
// belong to exactly one restaurant and are removed with it.
type Restaurant struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `json:"name"`
	Phone      string `json:"phone"`
	StreetName string `json:"streetName"`

	// Naive local time-of-day, "HH:MM" or "HH:MM:SS". No timezone,
	// no overnight hours (closing before opening means always closed).
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`

	Landmarks []string `gorm:"serializer:json" json:"landmarks"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	MenuItems          []MenuItem           `json:"menuItems,omitempty"`
	MaintenanceRecords []MaintenanceHistory `json:"maintenanceRecords,omitempty"`
}

package entity

import (
	"time"

	"gorm.io/gorm"
)

// ImpactLevel describes how a maintenance job affects operations.
type ImpactLevel string

const (
	ImpactNormal   ImpactLevel = "normal"
	ImpactPartial  ImpactLevel = "partial"
	ImpactComplete ImpactLevel = "complete"
)

func (l ImpactLevel) Valid() bool {
	switch l {
	case ImpactNormal, ImpactPartial, ImpactComplete:
		return true
	}
	return false
}

type MaintenanceHistory struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Calendar dates, "YYYY-MM-DD". A record is active on every date in
	// [startDate, endDate] inclusive. Overlapping records are allowed.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	ImpactLevel ImpactLevel `json:"impactLevel"`
	Cost        float64     `json:"cost"`
	Comments    string      `json:"comments"`

	RestaurantID uint        `json:"restaurant_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
}

func (MaintenanceHistory) TableName() string {
	return "maintenance_history"
}

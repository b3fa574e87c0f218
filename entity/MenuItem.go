package entity

import (
	"time"

	"gorm.io/gorm"
)

type MenuItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `json:"name"`

	// Serving window, same clock format as restaurant hours. The window is
	// half-open [start, end); start < end is not enforced.
	ServingStartTime string `json:"serving_start_time"`
	ServingEndTime   string `json:"serving_end_time"`

	Price       float64 `json:"price"`
	Description string  `json:"description"`

	RestaurantID uint        `json:"restaurant_id"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
}

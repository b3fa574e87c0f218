// repository/maintenance_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/info-graph/info-graph-task/entity"
)

type MaintenanceRepository struct {
	DB *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{DB: db}
}

func (r *MaintenanceRepository) FindAll() ([]entity.MaintenanceHistory, error) {
	var records []entity.MaintenanceHistory
	err := r.DB.Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) FindByID(id uint) (*entity.MaintenanceHistory, error) {
	var record entity.MaintenanceHistory
	if err := r.DB.Preload("Restaurant").First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MaintenanceRepository) FindByRestaurant(restID uint) ([]entity.MaintenanceHistory, error) {
	var records []entity.MaintenanceHistory
	err := r.DB.Where("restaurant_id = ?", restID).Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) Create(record *entity.MaintenanceHistory) error {
	return r.DB.Create(record).Error
}

func (r *MaintenanceRepository) Update(record *entity.MaintenanceHistory) error {
	return r.DB.Save(record).Error
}

func (r *MaintenanceRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MaintenanceHistory{}, id).Error
}

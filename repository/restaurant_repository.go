// repository/restaurant_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/info-graph/info-graph-task/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// FindByIDWithRelations loads the restaurant together with its menu items
// and maintenance records, the snapshot the availability engine consumes.
func (r *RestaurantRepository) FindByIDWithRelations(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("MenuItems").
		Preload("MaintenanceRecords").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// DeleteCascade removes the restaurant and every dependent row in one
// transaction, so a failed cascade never leaves orphans.
func (r *RestaurantRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&entity.MaintenanceHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Restaurant{}, id).Error
	})
}

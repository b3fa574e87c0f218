// repository/menu_item_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/info-graph/info-graph-task/entity"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Restaurant").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindByRestaurant(restID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restID).Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

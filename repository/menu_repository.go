package repository

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	items := make([]entity.MenuItem, 0)
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// PriceOf resolves a menu item id to its current unit price.
func (r *MenuRepository) PriceOf(id uint) (float64, error) {
	var item entity.MenuItem
	if err := r.DB.Select("id, price").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: menu item %d", apperr.ErrNotFound, id)
		}
		return 0, err
	}
	return item.Price, nil
}

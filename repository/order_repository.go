package repository

import (
	"errors"
	"fmt"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrderWithItems writes the order and all its lines in one
// transaction, so a failed line insert never leaves an orphaned order.
func (r *OrderRepository) CreateOrderWithItems(o *entity.Order, items []entity.OrderItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		o.OrderItems = items
		return nil
	})
}

// ListByUser returns the user's orders, newest first, with lines and
// their menu items preloaded. A deleted menu item leaves the line's
// MenuItem nil; the service substitutes a sentinel name.
func (r *OrderRepository) ListByUser(userID string) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// DeleteOrder removes the order's lines before the order itself.
func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var o entity.Order
		if err := tx.Select("id").First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %d", apperr.ErrNotFound, orderID)
			}
			return err
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}

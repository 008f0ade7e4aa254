package repository

import (
	"errors"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.MenuItem{}, &entity.Order{}, &entity.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestCreateOrderWithItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := entity.Order{UserID: "u1", TotalAmount: 19.98}
	items := []entity.OrderItem{{MenuItemID: 5, Quantity: 2, Price: 19.98}}
	if err := repo.CreateOrderWithItems(&order, items); err != nil {
		t.Fatalf("CreateOrderWithItems failed: %v", err)
	}
	if order.ID == 0 {
		t.Error("expected a store-assigned order id")
	}
	var line entity.OrderItem
	if err := db.First(&line, "order_id = ?", order.ID).Error; err != nil {
		t.Fatalf("line not linked to order: %v", err)
	}
	if line.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", line.Quantity)
	}
}

func TestCreateOrderWithItemsRollsBackOnLineFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := entity.Order{UserID: "u1", TotalAmount: 12.49}
	// Same explicit primary key on both lines: the second insert hits a
	// unique constraint after the order row is already written.
	items := []entity.OrderItem{
		{ID: 7, MenuItemID: 1, Quantity: 1, Price: 9.99},
		{ID: 7, MenuItemID: 2, Quantity: 1, Price: 2.50},
	}
	if err := repo.CreateOrderWithItems(&order, items); err == nil {
		t.Fatal("expected the second line insert to fail")
	}
	if got := countRows(t, db, &entity.Order{}); got != 0 {
		t.Errorf("orders rows = %d, want 0 after rollback", got)
	}
	if got := countRows(t, db, &entity.OrderItem{}); got != 0 {
		t.Errorf("order_items rows = %d, want 0 after rollback", got)
	}
}

func TestListByUserPreloadsMenuItems(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	item := entity.MenuItem{Name: "Margherita Pizza", Price: 9.99}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	order := entity.Order{UserID: "u1", TotalAmount: 9.99}
	lines := []entity.OrderItem{{MenuItemID: item.ID, Quantity: 1, Price: 9.99}}
	if err := repo.CreateOrderWithItems(&order, lines); err != nil {
		t.Fatalf("CreateOrderWithItems failed: %v", err)
	}

	orders, err := repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(orders) != 1 || len(orders[0].OrderItems) != 1 {
		t.Fatalf("unexpected shape: %+v", orders)
	}
	got := orders[0].OrderItems[0].MenuItem
	if got == nil || got.Name != "Margherita Pizza" {
		t.Errorf("preloaded menu item = %+v", got)
	}

	// deleting the menu item keeps the line but drops the reference
	if err := db.Delete(&entity.MenuItem{}, item.ID).Error; err != nil {
		t.Fatalf("delete menu item: %v", err)
	}
	orders, err = repo.ListByUser("u1")
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if orders[0].OrderItems[0].MenuItem != nil {
		t.Errorf("expected nil MenuItem after delete, got %+v", orders[0].OrderItems[0].MenuItem)
	}
}

func TestDeleteOrderRemovesLines(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := entity.Order{UserID: "u1", TotalAmount: 9.99}
	lines := []entity.OrderItem{{MenuItemID: 1, Quantity: 1, Price: 9.99}}
	if err := repo.CreateOrderWithItems(&order, lines); err != nil {
		t.Fatalf("CreateOrderWithItems failed: %v", err)
	}

	if err := repo.DeleteOrder(order.ID); err != nil {
		t.Fatalf("DeleteOrder failed: %v", err)
	}
	if got := countRows(t, db, &entity.Order{}); got != 0 {
		t.Errorf("orders rows = %d, want 0", got)
	}
	if got := countRows(t, db, &entity.OrderItem{}); got != 0 {
		t.Errorf("order_items rows = %d, want 0", got)
	}

	if err := repo.DeleteOrder(999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("deleting unknown order: err = %v, want ErrNotFound", err)
	}
}

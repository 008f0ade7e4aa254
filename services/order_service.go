package services

import (
	"fmt"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
)

// UnknownItemName is shown for order lines whose menu item no longer exists.
const UnknownItemName = "Unknown Item"

// CatalogLookup resolves a menu item id to its current unit price.
type CatalogLookup interface {
	PriceOf(menuItemID uint) (float64, error)
}

// OrderStore is the slice of persistence the order workflow needs.
type OrderStore interface {
	CreateOrderWithItems(order *entity.Order, items []entity.OrderItem) error
	ListByUser(userID string) ([]entity.Order, error)
	DeleteOrder(orderID uint) error
}

type OrderService struct {
	Catalog CatalogLookup
	Store   OrderStore
}

func NewOrderService(catalog CatalogLookup, store OrderStore) *OrderService {
	return &OrderService{Catalog: catalog, Store: store}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type PlaceOrderReq struct {
	UserID string        `json:"user_id"`
	Items  []OrderItemIn `json:"items"`
}

// PlaceOrder validates the request, prices every line against the
// catalog, and persists the order with its lines in one unit of work.
// An unresolvable menu item rejects the whole order before any write.
func (s *OrderService) PlaceOrder(req *PlaceOrderReq) (*entity.Order, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user_id is required", apperr.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items are required", apperr.ErrValidation)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for menu item %d", apperr.ErrValidation, it.MenuItemID)
		}
	}

	var total float64
	lines := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		unit, err := s.Catalog.PriceOf(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		lineTotal := unit * float64(it.Quantity)
		total += lineTotal
		lines = append(lines, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Price:      lineTotal,
		})
	}

	order := entity.Order{UserID: req.UserID, TotalAmount: total}
	if err := s.Store.CreateOrderWithItems(&order, lines); err != nil {
		return nil, err
	}
	return &order, nil
}

// ----- History projection -----

type HistoryMenuItem struct {
	Name string `json:"name"`
}
type HistoryItem struct {
	MenuItemID uint            `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	Price      float64         `json:"price"`
	MenuItem   HistoryMenuItem `json:"menu_items"`
}
type HistoryOrder struct {
	ID          uint          `json:"id"`
	TotalAmount float64       `json:"total_amount"`
	OrderDate   time.Time     `json:"order_date"`
	Items       []HistoryItem `json:"order_items"`
}

// OrderHistory returns the user's orders with their lines and menu item
// names. No orders is an empty slice, not an error. A line whose menu
// item was deleted keeps its row and gets the sentinel name.
func (s *OrderService) OrderHistory(userID string) ([]HistoryOrder, error) {
	orders, err := s.Store.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	out := make([]HistoryOrder, 0, len(orders))
	for _, o := range orders {
		h := HistoryOrder{
			ID:          o.ID,
			TotalAmount: o.TotalAmount,
			OrderDate:   o.OrderDate,
			Items:       make([]HistoryItem, 0, len(o.OrderItems)),
		}
		for _, it := range o.OrderItems {
			name := UnknownItemName
			if it.MenuItem != nil && it.MenuItem.Name != "" {
				name = it.MenuItem.Name
			}
			h.Items = append(h.Items, HistoryItem{
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      it.Price,
				MenuItem:   HistoryMenuItem{Name: name},
			})
		}
		out = append(out, h)
	}
	return out, nil
}

// DeleteOrder removes an order and its lines. Deleting an order that
// does not exist reports not found.
func (s *OrderService) DeleteOrder(orderID uint) error {
	return s.Store.DeleteOrder(orderID)
}

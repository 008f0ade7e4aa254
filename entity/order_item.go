package entity

type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"index;not null" json:"-"`
	MenuItemID uint    `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	// Price is the line total: unit price at placement time times quantity.
	Price float64 `json:"price"`

	MenuItem *MenuItem `json:"-"` // preload only when the item name is needed
}

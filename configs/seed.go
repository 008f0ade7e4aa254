package configs

import (
	"backend/entity"

	"gorm.io/gorm"
)

// SeedMenu puts a starter menu in place so the API is usable right away.
func SeedMenu(db *gorm.DB) error {
	items := []entity.MenuItem{
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella, basil", Price: 9.99},
		{Name: "Veggie Burger", Description: "Grilled patty with lettuce and tomato", Price: 7.49},
		{Name: "Caesar Salad", Description: "Romaine, croutons, parmesan", Price: 6.25},
		{Name: "Spaghetti Carbonara", Description: "Egg, pancetta, pecorino", Price: 11.50},
		{Name: "Lemonade", Description: "Freshly squeezed", Price: 2.99},
	}
	for _, item := range items {
		// match on name only, so later price edits don't respawn the row
		if err := db.Where(entity.MenuItem{Name: item.Name}).
			Attrs(entity.MenuItem{Description: item.Description, Price: item.Price}).
			FirstOrCreate(&entity.MenuItem{}).Error; err != nil {
			return err
		}
	}
	return nil
}

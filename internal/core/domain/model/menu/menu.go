// Package menu contains the read-only menu catalog types. The menu is an
// external collaborator of the ordering core: orders capture item names and
// prices at submission time, and the catalog serves as the canonical price
// reference for callers that want to cross-check a submitted cart.
package menu

// MenuItem is one orderable item of the café menu.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Category groups menu items under a display heading.
type Category struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// Menu is the full catalog as served to the ordering page.
type Menu struct {
	Categories []Category `json:"categories"`
}

// FindItem looks up a menu item by its identifier across all categories.
func (m Menu) FindItem(id int) (MenuItem, bool) {
	for _, category := range m.Categories {
		for _, item := range category.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// Default returns the seed catalog written to disk on first start,
// matching the café's standing menu.
func Default() Menu {
	return Menu{
		Categories: []Category{
			{
				ID:   1,
				Name: "Coffee Specialties",
				Items: []MenuItem{
					{ID: 1, Name: "Serados Special Blend", Price: 220, Description: "Our signature coffee blend"},
					{ID: 2, Name: "Nepali Chiya", Price: 80, Description: "Traditional Nepali tea with milk"},
					{ID: 3, Name: "Masala Chai", Price: 100, Description: "Spiced Indian tea"},
					{ID: 4, Name: "Cold Brew Coffee", Price: 180, Description: "Smooth cold brewed coffee"},
				},
			},
			{
				ID:   2,
				Name: "Local Delights",
				Items: []MenuItem{
					{ID: 5, Name: "Momo Platter", Price: 320, Description: "Steamed dumplings with dipping sauce"},
					{ID: 6, Name: "Sel Roti", Price: 120, Description: "Traditional Nepali rice doughnut"},
					{ID: 7, Name: "Sukuti Sandwich", Price: 250, Description: "Dried meat sandwich with local spices"},
				},
			},
			{
				ID:   3,
				Name: "Pastries & Snacks",
				Items: []MenuItem{
					{ID: 8, Name: "Butter Croissant", Price: 160, Description: "Freshly baked French pastry"},
					{ID: 9, Name: "Samosa", Price: 80, Description: "Fried pastry with potato filling"},
					{ID: 10, Name: "Chocolate Muffin", Price: 180, Description: "Fresh baked chocolate muffin"},
				},
			},
			{
				ID:   4,
				Name: "Refreshments",
				Items: []MenuItem{
					{ID: 11, Name: "Lassi", Price: 160, Description: "Traditional yogurt drink"},
					{ID: 12, Name: "Fresh Lime Soda", Price: 100, Description: "Refreshing lime drink"},
					{ID: 13, Name: "Iced Tea", Price: 120, Description: "Chilled tea with lemon"},
				},
			},
		},
	}
}

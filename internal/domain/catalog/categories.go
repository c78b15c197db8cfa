package catalog

// CategoryInfo holds display metadata for a storefront category page.
type CategoryInfo struct {
	ID          Category
	Name        string
	Description string
	Image       string
}

// Categories returns display metadata for every category, in storefront order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{
			ID:          CategoryFruits,
			Name:        "Fruits",
			Description: "Fresh, seasonal fruits from local Indian farms",
			Image:       "/fruits.jpg",
		},
		{
			ID:          CategoryVegetables,
			Name:        "Vegetables",
			Description: "Organic vegetables harvested at peak freshness",
			Image:       "/vegetables.jpg",
		},
		{
			ID:          CategoryDairy,
			Name:        "Dairy",
			Description: "Farm-fresh dairy products from pasture-raised animals",
			Image:       "/dairy.jpg",
		},
		{
			ID:          CategoryHerbs,
			Name:        "Herbs",
			Description: "Aromatic fresh herbs to elevate your cooking",
			Image:       "/herbs.jpg",
		},
	}
}

package domain

import "github.com/shopspring/decimal"

var featuredIDs = []int{1, 2, 3}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultItems returns the house menu.
func DefaultItems() []MenuItem {
	return []MenuItem{
		{
			ID:          1,
			Name:        "Truffle Risotto",
			Description: "Creamy arborio rice slowly cooked with organic vegetable stock, wild porcini mushrooms, shallots, white wine, and finished with shaved black truffle and aged parmesan cheese.",
			Price:       price("22.95"),
			ImageRef:    "https://images.unsplash.com/photo-1673796374363-75c873580651?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryMainCourses,
			DietaryTags: []string{"Vegetarian", "Gluten-Free"},
		},
		{
			ID:          2,
			Name:        "Herb-Crusted Salmon",
			Description: "Wild-caught Atlantic salmon fillet coated with a blend of fresh dill, parsley, thyme, and breadcrumbs, pan-seared and served with a light lemon-dill butter sauce and seasonal vegetables.",
			Price:       price("28.50"),
			ImageRef:    "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryMainCourses,
			DietaryTags: []string{"Gluten-Free", "Dairy-Free"},
		},
		{
			ID:          3,
			Name:        "Braised Short Ribs",
			Description: "Grass-fed beef short ribs braised for 8 hours in a rich reduction of Cabernet Sauvignon, beef stock, onions, carrots, celery, and aromatics, served with creamy mashed potatoes and glazed heirloom carrots.",
			Price:       price("32.95"),
			ImageRef:    "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryMainCourses,
			DietaryTags: []string{"Paleo"},
		},
		{
			ID:          4,
			Name:        "Crispy Calamari",
			Description: "Tender squid rings coated in a light rice flour and semolina batter, flash-fried to perfection, and served with house-made roasted garlic and lemon aioli, spicy marinara sauce, and fresh lemon wedges.",
			Price:       price("16.50"),
			ImageRef:    "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryAppetizers,
			DietaryTags: []string{"Seafood"},
		},
		{
			ID:          5,
			Name:        "Artisanal Cheese Plate",
			Description: "Curated selection of local and imported artisanal cheeses including aged cheddar, creamy brie, tangy goat cheese, and blue cheese, served with raw honeycomb, candied walnuts, dried fruits, and house-baked rosemary crackers.",
			Price:       price("19.95"),
			ImageRef:    "https://images.unsplash.com/photo-1631379578550-d0bbcce7ec7c?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryAppetizers,
			DietaryTags: []string{"Vegetarian"},
		},
		{
			ID:          6,
			Name:        "Chocolate Lava Cake",
			Description: "Rich Valrhona dark chocolate cake with a warm molten center, dusted with cocoa powder and served with Madagascar vanilla bean ice cream, fresh berries, and a drizzle of raspberry coulis.",
			Price:       price("12.95"),
			ImageRef:    "https://images.unsplash.com/photo-1563805042-7684c019e1cb?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryDesserts,
			DietaryTags: []string{"Vegetarian"},
		},
		{
			ID:          7,
			Name:        "Crème Brûlée",
			Description: "Traditional French custard made with premium vanilla beans, farm-fresh egg yolks, and heavy cream, topped with a hand-torched caramelized sugar crust that cracks perfectly with each spoonful.",
			Price:       price("10.95"),
			ImageRef:    "https://images.unsplash.com/photo-1615577815766-199347f2e35c?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryDesserts,
			DietaryTags: []string{"Vegetarian", "Gluten-Free"},
		},
		{
			ID:          8,
			Name:        "Garlic Truffle Fries",
			Description: "Russet potatoes hand-cut daily, double-fried for extra crispness, then tossed with roasted garlic, aged Parmigiano-Reggiano cheese, fresh parsley, and a light drizzle of imported black truffle oil. Served with house-made garlic aioli.",
			Price:       price("9.95"),
			ImageRef:    "https://images.unsplash.com/photo-1580959375944-abd7e991f971?auto=format&fit=crop&w=800&q=80",
			Category:    CategorySides,
			DietaryTags: []string{"Vegetarian"},
		},
		{
			ID:          9,
			Name:        "Signature Craft Cocktail",
			Description: "Our bartender's seasonal creation featuring small-batch spirits, house-made infusions with herbs from our garden, fresh-squeezed citrus juices, artisanal bitters, and hand-carved ice. Ask your server for this season's selection.",
			Price:       price("14.00"),
			ImageRef:    "https://images.unsplash.com/photo-1566417713940-fe7c737a9ef2?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryBeverages,
			DietaryTags: []string{},
		},
		{
			ID:          10,
			Name:        "Artisanal Mocktail",
			Description: "Sophisticated alcohol-free beverage crafted with cold-pressed organic fruit juices, house-made herb syrups, botanical extracts, sparkling water, and garnished with edible flowers and fresh herbs for a refreshing experience.",
			Price:       price("9.50"),
			ImageRef:    "https://images.unsplash.com/photo-1619604395920-61d139cd5ee1?auto=format&fit=crop&w=800&q=80",
			Category:    CategoryBeverages,
			DietaryTags: []string{"Non-Alcoholic", "Vegan"},
		},
	}
}

// NewDefaultCatalog builds the catalog of the house menu.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultItems())
	if err != nil {
		panic("menu: invalid default catalog: " + err.Error())
	}
	return c
}

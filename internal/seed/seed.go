// Package seed holds the starter dataset used when storage has no saved data.
package seed

import "github.com/franciscosanchezn/truckplate-api/internal/models"

// Recipes returns a fresh copy of the starter recipes
func Recipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "1",
			Name:        "Korean BBQ Beef Bowl",
			Description: "Marinated beef short ribs served over jasmine rice with pickled vegetables and gochujang aioli.",
			Ingredients: []models.Ingredient{
				{ID: "i1", Name: "Beef Short Ribs", Cost: 12.50, Unit: "lb", Amount: 2},
				{ID: "i2", Name: "Jasmine Rice", Cost: 0.80, Unit: "lb", Amount: 1},
				{ID: "i3", Name: "Gochujang", Cost: 6.00, Unit: "jar", Amount: 0.2},
				{ID: "i4", Name: "Pickled Veggies", Cost: 4.50, Unit: "lb", Amount: 0.5},
			},
			PrepStation: models.StationGrill,
			DietaryTags: []string{"Gluten-Free", "Dairy-Free"},
			Servings:    8,
			PrepTime:    45,
			ImageURL:    "https://images.unsplash.com/photo-1603360946369-dc9bb6f54262?w=400&h=300&fit=crop",
		},
		{
			ID:          "2",
			Name:        "Smoked Brisket Tacos",
			Description: "12-hour smoked brisket with corn tortillas, cilantro, onion, and salsa verde.",
			Ingredients: []models.Ingredient{
				{ID: "i5", Name: "Beef Brisket", Cost: 8.99, Unit: "lb", Amount: 3},
				{ID: "i6", Name: "Corn Tortillas", Cost: 3.50, Unit: "pack", Amount: 2},
				{ID: "i7", Name: "Cilantro", Cost: 1.99, Unit: "bunch", Amount: 2},
				{ID: "i8", Name: "Salsa Verde", Cost: 5.00, Unit: "jar", Amount: 1},
			},
			PrepStation: models.StationSmoker,
			DietaryTags: []string{"Dairy-Free"},
			Servings:    12,
			PrepTime:    60,
			ImageURL:    "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?w=400&h=300&fit=crop",
		},
		{
			ID:          "3",
			Name:        "Truffle Mushroom Flatbread",
			Description: "Wild mushroom medley with truffle oil, ricotta, and fresh thyme on house-made dough.",
			Ingredients: []models.Ingredient{
				{ID: "i9", Name: "Mixed Mushrooms", Cost: 7.50, Unit: "lb", Amount: 1.5},
				{ID: "i10", Name: "Pizza Dough", Cost: 2.50, Unit: "ball", Amount: 4},
				{ID: "i11", Name: "Truffle Oil", Cost: 18.00, Unit: "bottle", Amount: 0.1},
				{ID: "i12", Name: "Ricotta", Cost: 6.50, Unit: "tub", Amount: 1},
			},
			PrepStation: models.StationOven,
			DietaryTags: []string{"Vegetarian"},
			Servings:    4,
			PrepTime:    25,
			ImageURL:    "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=300&fit=crop",
		},
		{
			ID:          "4",
			Name:        "Cajun Shrimp Po Boy",
			Description: "Louisiana-style fried shrimp with remoulade sauce on crispy French bread.",
			Ingredients: []models.Ingredient{
				{ID: "i13", Name: "Shrimp", Cost: 14.00, Unit: "lb", Amount: 2},
				{ID: "i14", Name: "French Bread", Cost: 3.00, Unit: "loaf", Amount: 2},
				{ID: "i15", Name: "Cajun Spice", Cost: 4.00, Unit: "jar", Amount: 0.3},
				{ID: "i16", Name: "Lettuce", Cost: 2.50, Unit: "head", Amount: 1},
			},
			PrepStation: models.StationFryer,
			DietaryTags: []string{"Dairy-Free"},
			Servings:    6,
			PrepTime:    20,
			ImageURL:    "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?w=400&h=300&fit=crop",
		},
		{
			ID:          "5",
			Name:        "Vegan Buddha Bowl",
			Description: "Quinoa base with roasted chickpeas, avocado, tahini dressing, and fresh greens.",
			Ingredients: []models.Ingredient{
				{ID: "i17", Name: "Quinoa", Cost: 5.50, Unit: "lb", Amount: 1},
				{ID: "i18", Name: "Chickpeas", Cost: 1.20, Unit: "can", Amount: 3},
				{ID: "i19", Name: "Avocado", Cost: 1.50, Unit: "each", Amount: 4},
				{ID: "i20", Name: "Tahini", Cost: 7.00, Unit: "jar", Amount: 0.5},
			},
			PrepStation: models.StationColdPrep,
			DietaryTags: []string{"Vegan", "Gluten-Free"},
			Servings:    4,
			PrepTime:    15,
			ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=400&h=300&fit=crop",
		},
		{
			ID:          "6",
			Name:        "Nashville Hot Chicken Sandwich",
			Description: "Spicy fried chicken thigh with pickles and coleslaw on brioche bun.",
			Ingredients: []models.Ingredient{
				{ID: "i21", Name: "Chicken Thighs", Cost: 4.50, Unit: "lb", Amount: 2},
				{ID: "i22", Name: "Brioche Buns", Cost: 4.00, Unit: "pack", Amount: 1},
				{ID: "i23", Name: "Cayenne Pepper", Cost: 3.00, Unit: "jar", Amount: 0.2},
				{ID: "i24", Name: "Pickles", Cost: 3.50, Unit: "jar", Amount: 0.5},
			},
			PrepStation: models.StationFryer,
			DietaryTags: []string{"Dairy-Free"},
			Servings:    4,
			PrepTime:    25,
			ImageURL:    "https://images.unsplash.com/photo-1626082927389-6cd097cdc6ec?w=400&h=300&fit=crop",
		},
		{
			ID:          "7",
			Name:        "Lobster Roll",
			Description: "Maine lobster with lemon butter on toasted split-top bun.",
			Ingredients: []models.Ingredient{
				{ID: "i25", Name: "Lobster Meat", Cost: 45.00, Unit: "lb", Amount: 1},
				{ID: "i26", Name: "Split-top Buns", Cost: 4.50, Unit: "pack", Amount: 1},
				{ID: "i27", Name: "Butter", Cost: 4.00, Unit: "lb", Amount: 0.5},
				{ID: "i28", Name: "Lemon", Cost: 0.50, Unit: "each", Amount: 3},
			},
			PrepStation: models.StationColdPrep,
			DietaryTags: []string{"Gluten-Free option"},
			Servings:    4,
			PrepTime:    15,
			ImageURL:    "https://images.unsplash.com/photo-1561758033-d8f0a9fd7f99?w=400&h=300&fit=crop",
		},
		{
			ID:          "8",
			Name:        "Pork Belly Bao Buns",
			Description: "Steamed buns with braised pork belly, hoisin, and cucumber.",
			Ingredients: []models.Ingredient{
				{ID: "i29", Name: "Pork Belly", Cost: 9.00, Unit: "lb", Amount: 2},
				{ID: "i30", Name: "Bao Buns", Cost: 6.00, Unit: "pack", Amount: 2},
				{ID: "i31", Name: "Hoisin Sauce", Cost: 3.50, Unit: "bottle", Amount: 1},
				{ID: "i32", Name: "Cucumber", Cost: 1.00, Unit: "each", Amount: 2},
			},
			PrepStation: models.StationSteam,
			DietaryTags: []string{"Dairy-Free"},
			Servings:    8,
			PrepTime:    30,
			ImageURL:    "https://images.unsplash.com/photo-1563245372-f21724e3856d?w=400&h=300&fit=crop",
		},
		{
			ID:          "9",
			Name:        "Fish Tacos",
			Description: "Beer-battered cod with cabbage slaw and chipotle crema on flour tortillas.",
			Ingredients: []models.Ingredient{
				{ID: "i33", Name: "Cod Fillet", Cost: 11.00, Unit: "lb", Amount: 1.5},
				{ID: "i34", Name: "Flour Tortillas", Cost: 3.00, Unit: "pack", Amount: 1},
				{ID: "i35", Name: "Cabbage", Cost: 1.50, Unit: "head", Amount: 1},
				{ID: "i36", Name: "Chipotle Mayo", Cost: 4.00, Unit: "bottle", Amount: 0.5},
			},
			PrepStation: models.StationFryer,
			DietaryTags: []string{"Dairy-Free"},
			Servings:    6,
			PrepTime:    20,
			ImageURL:    "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?w=400&h=300&fit=crop",
		},
		{
			ID:          "10",
			Name:        "Impossible Burger",
			Description: "Plant-based patty with caramelized onions, vegan cheese, and special sauce.",
			Ingredients: []models.Ingredient{
				{ID: "i37", Name: "Impossible Patties", Cost: 12.00, Unit: "pack", Amount: 1},
				{ID: "i38", Name: "Vegan Cheese", Cost: 6.00, Unit: "pack", Amount: 1},
				{ID: "i39", Name: "Brioche Buns", Cost: 4.00, Unit: "pack", Amount: 1},
				{ID: "i40", Name: "Onions", Cost: 1.00, Unit: "lb", Amount: 1},
			},
			PrepStation: models.StationGrill,
			DietaryTags: []string{"Vegan", "Dairy-Free"},
			Servings:    4,
			PrepTime:    20,
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop",
		},
		{
			ID:          "11",
			Name:        "Elote (Mexican Street Corn)",
			Description: "Grilled corn with mayo, cotija cheese, chili powder, and lime.",
			Ingredients: []models.Ingredient{
				{ID: "i41", Name: "Corn Cobs", Cost: 0.75, Unit: "each", Amount: 12},
				{ID: "i42", Name: "Cotija Cheese", Cost: 5.50, Unit: "lb", Amount: 0.5},
				{ID: "i43", Name: "Mayonnaise", Cost: 3.00, Unit: "jar", Amount: 0.3},
				{ID: "i44", Name: "Chili Powder", Cost: 2.50, Unit: "jar", Amount: 0.1},
			},
			PrepStation: models.StationGrill,
			DietaryTags: []string{"Vegetarian", "Gluten-Free"},
			Servings:    12,
			PrepTime:    15,
			ImageURL:    "https://images.unsplash.com/photo-1551754655-cd27e38d2071?w=400&h=300&fit=crop",
		},
		{
			ID:          "12",
			Name:        "Poke Bowl",
			Description: "Fresh ahi tuna with sushi rice, edamame, seaweed salad, and spicy mayo.",
			Ingredients: []models.Ingredient{
				{ID: "i45", Name: "Ahi Tuna", Cost: 24.00, Unit: "lb", Amount: 1},
				{ID: "i46", Name: "Sushi Rice", Cost: 2.50, Unit: "lb", Amount: 1},
				{ID: "i47", Name: "Edamame", Cost: 4.00, Unit: "bag", Amount: 1},
				{ID: "i48", Name: "Seaweed Salad", Cost: 6.00, Unit: "lb", Amount: 0.5},
			},
			PrepStation: models.StationColdPrep,
			DietaryTags: []string{"Gluten-Free", "Dairy-Free"},
			Servings:    4,
			PrepTime:    10,
			ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
		},
	}
}

// Invoices returns a fresh copy of the starter invoices
func Invoices() []models.Invoice {
	return []models.Invoice{
		{ID: "inv1", Supplier: "Sysco Food Services", Date: "2024-03-15", Total: 1245.50, Items: []models.LineItem{}, Status: models.InvoiceProcessed},
		{ID: "inv2", Supplier: "US Foods", Date: "2024-03-12", Total: 890.25, Items: []models.LineItem{}, Status: models.InvoiceProcessed},
		{ID: "inv3", Supplier: "Restaurant Depot", Date: "2024-03-10", Total: 2340.00, Items: []models.LineItem{}, Status: models.InvoicePending},
		{ID: "inv4", Supplier: "Local Produce Co", Date: "2024-03-08", Total: 445.80, Items: []models.LineItem{}, Status: models.InvoiceProcessed},
		{ID: "inv5", Supplier: "Meat Purveyors Inc", Date: "2024-03-05", Total: 1567.90, Items: []models.LineItem{}, Status: models.InvoiceArchived},
	}
}

package configs

import (
	"log"

	"menu-catalog/entity"
)

// Seed a small starter catalog for local development. Skipped when the
// table already has rows.
func SeedSampleMenus() error {
	db := DB()

	var count int64
	db.Model(&entity.Menu{}).Count(&count)
	if count > 0 {
		log.Println("skip seeding menus: table not empty")
		return nil
	}

	menus := []entity.Menu{
		{
			Name:        "Nasi Goreng Special",
			Category:    "food",
			Calories:    650,
			Price:       45000,
			Ingredients: []string{"rice", "egg", "chicken", "sweet soy sauce"},
			Description: "Fried rice with chicken and a fried egg on top",
		},
		{
			Name:        "Beef Rendang",
			Category:    "food",
			Calories:    720,
			Price:       65000,
			Ingredients: []string{"beef", "coconut milk", "chili", "galangal"},
			Description: "Slow-cooked beef in spiced coconut milk",
		},
		{
			Name:        "Iced Lychee Tea",
			Category:    "drinks",
			Calories:    180,
			Price:       25000,
			Ingredients: []string{"black tea", "lychee", "ice"},
			Description: "Sweet iced tea with lychee fruit",
		},
		{
			Name:        "Cold Brew Coffee",
			Category:    "drinks",
			Calories:    15,
			Price:       30000,
			Ingredients: []string{"arabica beans", "water"},
			Description: "Slow-steeped cold brew, served black",
		},
		{
			Name:        "Banana Fritters",
			Category:    "dessert",
			Calories:    420,
			Price:       22000,
			Ingredients: []string{"banana", "flour", "palm sugar"},
			Description: "Crispy fried banana with palm sugar drizzle",
		},
	}

	if err := db.Create(&menus).Error; err != nil {
		return err
	}
	log.Printf("seeded %d sample menus", len(menus))
	return nil
}

package repository

import (
	"testing"
	"time"

	"menu-catalog/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection; keep the pool at
	// one so the concurrent grouping queries all see the same data.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Menu{}))
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	menus := []entity.Menu{
		{Name: "Fried Rice", Category: "food", Calories: 650, Price: 45000, Ingredients: []string{"rice", "egg"}, Description: "Classic fried rice"},
		{Name: "Beef Rendang", Category: "food", Calories: 720, Price: 65000, Ingredients: []string{"beef"}, Description: "Slow-cooked beef"},
		{Name: "Chicken Satay", Category: "food", Calories: 500, Price: 35000, Ingredients: []string{"chicken"}, Description: "Grilled skewers with peanut sauce"},
		{Name: "Iced Tea", Category: "drinks", Calories: 120, Price: 15000, Ingredients: []string{"tea"}, Description: "Sweet iced tea"},
		{Name: "Cold Brew", Category: "drinks", Calories: 15, Price: 30000, Ingredients: []string{"coffee"}, Description: "Slow-steeped coffee"},
		{Name: "Banana Fritters", Category: "dessert", Calories: 420, Price: 22000, Ingredients: []string{"banana"}, Description: "Fried banana with palm sugar"},
	}
	for i := range menus {
		require.NoError(t, db.Create(&menus[i]).Error)
		// Distinct creation times so the default sort is deterministic.
		createdAt := time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, db.Model(&menus[i]).Update("created_at", createdAt).Error)
	}
}

func TestCreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	menu := &entity.Menu{
		Name:        "Fried Rice",
		Category:    "food",
		Calories:    650,
		Price:       45000,
		Ingredients: []string{"rice", "egg", "chicken"},
		Description: "Classic fried rice",
	}
	require.NoError(t, repo.Create(menu))
	assert.NotZero(t, menu.ID)
	assert.False(t, menu.CreatedAt.IsZero())

	got, err := repo.FindByID(menu.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Fried Rice", got.Name)
	assert.Equal(t, []string{"rice", "egg", "chicken"}, got.Ingredients)
}

func TestFindByIDAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	got, err := repo.FindByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateReplacesFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	menu := &entity.Menu{Name: "Iced Tea", Category: "drinks", Calories: 120, Price: 15000, Ingredients: []string{"tea"}, Description: "Sweet iced tea"}
	require.NoError(t, repo.Create(menu))

	menu.Name = "Lychee Iced Tea"
	menu.Price = 25000
	menu.Ingredients = []string{"tea", "lychee"}
	require.NoError(t, repo.Update(menu))

	got, err := repo.FindByID(menu.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Lychee Iced Tea", got.Name)
	assert.Equal(t, 25000.0, got.Price)
	assert.Equal(t, []string{"tea", "lychee"}, got.Ingredients)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	menu := &entity.Menu{Name: "Cold Brew", Category: "drinks", Calories: 15, Price: 30000, Ingredients: []string{"coffee"}, Description: "Black coffee"}
	require.NoError(t, repo.Create(menu))
	require.NoError(t, repo.Delete(menu.ID))

	got, err := repo.FindByID(menu.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindAllFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	seedCatalog(t, db)

	base := MenuFilter{Page: 1, PerPage: 10}

	t.Run("no filter returns everything", func(t *testing.T) {
		menus, total, err := repo.FindAll(base)
		require.NoError(t, err)
		assert.EqualValues(t, 6, total)
		assert.Len(t, menus, 6)
	})

	t.Run("category exact match", func(t *testing.T) {
		f := base
		f.Category = "drinks"
		menus, total, err := repo.FindAll(f)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, m := range menus {
			assert.Equal(t, "drinks", m.Category)
		}
	})

	t.Run("q matches name or description, case-insensitive", func(t *testing.T) {
		f := base
		f.Q = "SLOW"
		_, total, err := repo.FindAll(f)
		require.NoError(t, err)
		// "Slow-cooked beef" and "Slow-steeped coffee"
		assert.EqualValues(t, 2, total)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		minP, maxP := 22000.0, 45000.0
		f := base
		f.MinPrice = &minP
		f.MaxPrice = &maxP
		menus, total, err := repo.FindAll(f)
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		for _, m := range menus {
			assert.GreaterOrEqual(t, m.Price, minP)
			assert.LessOrEqual(t, m.Price, maxP)
		}
	})

	t.Run("max calories", func(t *testing.T) {
		maxCal := 120
		f := base
		f.MaxCal = &maxCal
		_, total, err := repo.FindAll(f)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		maxCal := 600
		f := base
		f.Category = "food"
		f.MaxCal = &maxCal
		menus, total, err := repo.FindAll(f)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, menus, 1)
		assert.Equal(t, "Chicken Satay", menus[0].Name)
	})
}

func TestFindAllPaginationAndSort(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	seedCatalog(t, db)

	t.Run("total ignores pagination", func(t *testing.T) {
		menus, total, err := repo.FindAll(MenuFilter{Page: 2, PerPage: 4})
		require.NoError(t, err)
		assert.EqualValues(t, 6, total)
		assert.Len(t, menus, 2)
	})

	t.Run("default sort is created_at descending", func(t *testing.T) {
		menus, _, err := repo.FindAll(MenuFilter{Page: 1, PerPage: 10, SortField: "created_at", SortDesc: true})
		require.NoError(t, err)
		require.Len(t, menus, 6)
		assert.Equal(t, "Banana Fritters", menus[0].Name)
	})

	t.Run("price ascending", func(t *testing.T) {
		menus, _, err := repo.FindAll(MenuFilter{Page: 1, PerPage: 10, SortField: "price"})
		require.NoError(t, err)
		for i := 1; i < len(menus); i++ {
			assert.LessOrEqual(t, menus[i-1].Price, menus[i].Price)
		}
	})

	t.Run("unknown sort field falls back to created_at", func(t *testing.T) {
		menus, _, err := repo.FindAll(MenuFilter{Page: 1, PerPage: 10, SortField: "'; DROP TABLE menus; --", SortDesc: true})
		require.NoError(t, err)
		require.Len(t, menus, 6)
		assert.Equal(t, "Banana Fritters", menus[0].Name)
	})

	t.Run("empty page yields empty non-nil slice", func(t *testing.T) {
		menus, total, err := repo.FindAll(MenuFilter{Page: 5, PerPage: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 6, total)
		assert.NotNil(t, menus)
		assert.Empty(t, menus)
	})
}

func TestCategoryCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	seedCatalog(t, db)

	counts, err := repo.CategoryCounts()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"food": 3, "drinks": 2, "dessert": 1}, counts)

	var sum int64
	for _, n := range counts {
		sum += n
	}
	assert.EqualValues(t, 6, sum)
}

func TestCategoryLists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	seedCatalog(t, db)

	lists, err := repo.CategoryLists(2)
	require.NoError(t, err)
	assert.Len(t, lists, 3)

	for category, menus := range lists {
		assert.LessOrEqual(t, len(menus), 2)
		for i, m := range menus {
			assert.Equal(t, category, m.Category)
			if i > 0 {
				assert.LessOrEqual(t, menus[i-1].Price, m.Price)
			}
		}
	}

	// Cheapest items per category survive the cap.
	require.Len(t, lists["food"], 2)
	assert.Equal(t, "Chicken Satay", lists["food"][0].Name)
	assert.Equal(t, "Fried Rice", lists["food"][1].Name)
}

func TestCategoryListsEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)

	lists, err := repo.CategoryLists(5)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

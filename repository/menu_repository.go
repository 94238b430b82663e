// repository/menu_repository.go
package repository

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"menu-catalog/entity"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// MenuFilter describes one listing query. Nil/zero optional fields impose
// no constraint; all set predicates are ANDed except Q, which matches
// name OR description.
type MenuFilter struct {
	Q        string
	Category string
	MinPrice *float64
	MaxPrice *float64
	MaxCal   *int

	SortField string
	SortDesc  bool

	Page    int
	PerPage int
}

// Fields the listing endpoint may sort by. Anything else falls back to
// created_at so an arbitrary sort spec never reaches the store.
var sortableFields = map[string]bool{
	"id":         true,
	"name":       true,
	"category":   true,
	"calories":   true,
	"price":      true,
	"created_at": true,
}

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

// FindByID returns (nil, nil) when no record matches, so callers can tell
// absence apart from an infrastructure error.
func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.First(&menu, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// Update replaces all mutable fields. Existence is checked by the caller.
func (r *MenuRepository) Update(menu *entity.Menu) error {
	return r.DB.Save(menu).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

// FindAll returns one page of matching menus plus the total match count
// ignoring pagination.
func (r *MenuRepository) FindAll(f MenuFilter) ([]entity.Menu, int64, error) {
	q := r.DB.Model(&entity.Menu{})

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MaxCal != nil {
		q = q.Where("calories <= ?", *f.MaxCal)
	}
	if f.Q != "" {
		like := "%" + strings.ToLower(f.Q) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	field := f.SortField
	if !sortableFields[field] {
		field = "created_at"
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}

	menus := make([]entity.Menu, 0, f.PerPage)
	err := q.
		Order(fmt.Sprintf("%s %s", field, dir)).
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&menus).Error
	return menus, total, err
}

// CategoryCounts maps each distinct category to its record count.
func (r *MenuRepository) CategoryCounts() (map[string]int64, error) {
	var rows []struct {
		Category string
		Total    int64
	}
	err := r.DB.Model(&entity.Menu{}).
		Select("category, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Total
	}
	return counts, nil
}

// CategoryLists maps each distinct category to its cheapest menus, at most
// limit per category. Per-category fetches run concurrently; each goroutine
// writes a disjoint key.
func (r *MenuRepository) CategoryLists(limit int) (map[string][]entity.Menu, error) {
	var categories []string
	err := r.DB.Model(&entity.Menu{}).
		Distinct("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string][]entity.Menu, len(categories))
	var mu sync.Mutex
	var g errgroup.Group

	for _, category := range categories {
		category := category
		g.Go(func() error {
			var menus []entity.Menu
			err := r.DB.
				Where("category = ?", category).
				Order("price ASC").
				Limit(limit).
				Find(&menus).Error
			if err != nil {
				return err
			}
			mu.Lock()
			result[category] = menus
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

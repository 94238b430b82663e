// services/menu_service.go
package services

import (
	"strings"

	"menu-catalog/entity"
	"menu-catalog/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) Add(menu *entity.Menu) error {
	return s.Repo.Create(menu)
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Edit(menu *entity.Menu) error {
	return s.Repo.Update(menu)
}

func (s *MenuService) Remove(id uint) error {
	return s.Repo.Delete(id)
}

// List fetches one page of menus. sortSpec has the form "<field>:<asc|desc>";
// malformed specs silently keep the defaults (created_at, newest first).
func (s *MenuService) List(page, perPage int, q, category string, minPrice, maxPrice *float64, maxCal *int, sortSpec string) ([]entity.Menu, int64, error) {
	field, desc := parseSort(sortSpec)

	return s.Repo.FindAll(repository.MenuFilter{
		Q:         q,
		Category:  category,
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		MaxCal:    maxCal,
		SortField: field,
		SortDesc:  desc,
		Page:      page,
		PerPage:   perPage,
	})
}

func parseSort(spec string) (field string, desc bool) {
	field = "created_at"
	desc = true

	if spec == "" {
		return field, desc
	}

	// Only the first two segments matter; anything after a second colon
	// is ignored.
	parts := strings.Split(spec, ":")
	if parts[0] != "" {
		field = parts[0]
	}
	if len(parts) >= 2 {
		switch parts[1] {
		case "asc":
			desc = false
		case "desc":
			desc = true
		}
	}
	return field, desc
}

// Grouped aggregates menus by category: mode "count" returns per-category
// totals, mode "list" returns up to perCategory cheapest items per category.
// Any other mode yields an empty mapping, not an error.
func (s *MenuService) Grouped(mode string, perCategory int) (any, error) {
	switch mode {
	case "count":
		return s.Repo.CategoryCounts()
	case "list":
		return s.Repo.CategoryLists(perCategory)
	default:
		return map[string]any{}, nil
	}
}

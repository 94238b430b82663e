package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"menu-catalog/entity"
	"menu-catalog/pkg/resp"
	"menu-catalog/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Service  *services.MenuService
	Insights *services.InsightService
}

func NewMenuController(svc *services.MenuService, insights *services.InsightService) *MenuController {
	return &MenuController{Service: svc, Insights: insights}
}

// Numeric body fields accept both 650 and "650"; the string form is
// coerced before validation.
type coercedInt int

func (n *coercedInt) UnmarshalJSON(b []byte) error {
	v, err := strconv.Atoi(strings.Trim(string(b), `"`))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	*n = coercedInt(v)
	return nil
}

type coercedFloat float64

func (f *coercedFloat) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseFloat(strings.Trim(string(b), `"`), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	*f = coercedFloat(v)
	return nil
}

// Request body for create and update. Pointers let validation tell a
// missing numeric field apart from an explicit zero.
type MenuRequest struct {
	Name        string        `json:"name" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Calories    *coercedInt   `json:"calories" binding:"required,gte=0"`
	Price       *coercedFloat `json:"price" binding:"required,gt=0"`
	Ingredients []string      `json:"ingredients" binding:"required,min=1,dive,required"`
	Description string        `json:"description" binding:"required"`
}

func (r *MenuRequest) toEntity() *entity.Menu {
	return &entity.Menu{
		Name:        r.Name,
		Category:    r.Category,
		Calories:    int(*r.Calories),
		Price:       float64(*r.Price),
		Ingredients: r.Ingredients,
		Description: r.Description,
	}
}

// POST /menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	menu := req.toEntity()
	if err := ctl.Service.Add(menu); err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Menu created successfully",
		"data":    menu,
	})
}

// GET /menu/:id
func (ctl *MenuController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	menu, err := ctl.Service.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if menu == nil {
		resp.NotFound(c, fmt.Sprintf("Menu (id: %d) not found", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": menu})
}

// PUT /menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	existing, err := ctl.Service.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if existing == nil {
		resp.NotFound(c, "Menu not found")
		return
	}

	menu := req.toEntity()
	menu.ID = existing.ID
	menu.CreatedAt = existing.CreatedAt
	if err := ctl.Service.Edit(menu); err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Menu updated successfully",
		"data":    menu,
	})
}

// DELETE /menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	existing, err := ctl.Service.Get(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if existing == nil {
		resp.NotFound(c, "Menu not found")
		return
	}

	if err := ctl.Service.Remove(id); err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted successfully"})
}

// GET /menu and GET /menu/search
func (ctl *MenuController) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 10)

	q := c.Query("q")
	category := c.Query("category")
	sort := c.Query("sort")

	minPrice := floatQueryPtr(c, "min_price")
	maxPrice := floatQueryPtr(c, "max_price")
	maxCal := intQueryPtr(c, "max_cal")

	withAISummary := c.Query("with_ai_summary") == "true"

	menus, total, err := ctl.Service.List(page, perPage, q, category, minPrice, maxPrice, maxCal, sort)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	totalPages := (total + int64(perPage) - 1) / int64(perPage)

	payload := gin.H{
		"data": menus,
		"pagination": gin.H{
			"total":       total,
			"page":        page,
			"per_page":    perPage,
			"total_pages": totalPages,
		},
	}

	if withAISummary {
		if insights := ctl.Insights.Generate(menus); insights != "" {
			payload["ai_insights"] = insights
		}
	}

	c.JSON(http.StatusOK, payload)
}

// GET /menu/group-by-category
func (ctl *MenuController) Grouped(c *gin.Context) {
	mode := c.DefaultQuery("mode", "list")
	perCategory := intQuery(c, "per_category", 5)

	data, err := ctl.Service.Grouped(mode, perCategory)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

// ====== Helpers ======

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}

// intQuery parses a query param permissively: unset, unparsable or
// non-positive values fall back to the default.
func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func intQueryPtr(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func floatQueryPtr(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

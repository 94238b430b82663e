package routes

import (
	"net/http"

	"menu-catalog/configs"
	"menu-catalog/controllers"
	"menu-catalog/repository"
	"menu-catalog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Controllers
	menuRepo := repository.NewMenuRepository(db)
	menuSvc := services.NewMenuService(menuRepo)
	insightSvc := services.NewInsightService(cfg.GeminiAPIKey, cfg.GeminiModel)
	menuCtl := controllers.NewMenuController(menuSvc, insightSvc)

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Menu Catalog API is running!")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	r.GET("/api-docs", apiDocs)

	// Menu catalog
	m := r.Group("/menu")
	{
		m.GET("", menuCtl.List)
		m.GET("/search", menuCtl.List)
		m.GET("/group-by-category", menuCtl.Grouped)
		m.POST("", menuCtl.Create)
		m.GET("/:id", menuCtl.Get)
		m.PUT("/:id", menuCtl.Update)
		m.DELETE("/:id", menuCtl.Delete)
	}
}

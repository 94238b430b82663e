package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api-docs — minimal OpenAPI document describing the menu routes.
func apiDocs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":   "Menu Catalog API",
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/menu": gin.H{
				"get": gin.H{
					"summary": "List menus with filtering, sorting and pagination",
					"parameters": []gin.H{
						{"name": "page", "in": "query", "schema": gin.H{"type": "integer", "default": 1}},
						{"name": "per_page", "in": "query", "schema": gin.H{"type": "integer", "default": 10}},
						{"name": "q", "in": "query", "schema": gin.H{"type": "string"}},
						{"name": "category", "in": "query", "schema": gin.H{"type": "string"}},
						{"name": "sort", "in": "query", "schema": gin.H{"type": "string", "example": "price:asc"}},
						{"name": "min_price", "in": "query", "schema": gin.H{"type": "number"}},
						{"name": "max_price", "in": "query", "schema": gin.H{"type": "number"}},
						{"name": "max_cal", "in": "query", "schema": gin.H{"type": "integer"}},
						{"name": "with_ai_summary", "in": "query", "schema": gin.H{"type": "boolean"}},
					},
				},
				"post": gin.H{"summary": "Create a menu"},
			},
			"/menu/search":            gin.H{"get": gin.H{"summary": "Alias of GET /menu"}},
			"/menu/group-by-category": gin.H{"get": gin.H{"summary": "Group menus by category (mode=count|list)"}},
			"/menu/{id}": gin.H{
				"get":    gin.H{"summary": "Fetch a menu by id"},
				"put":    gin.H{"summary": "Replace a menu"},
				"delete": gin.H{"summary": "Delete a menu"},
			},
		},
	})
}

package main

import (
	"fmt"
	"log"

	"menu-catalog/configs"
	"menu-catalog/middlewares"
	"menu-catalog/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if cfg.SeedMenus {
		if err := configs.SeedSampleMenus(); err != nil {
			log.Fatalf("seed menus failed: %v", err)
		}
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middlewares.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

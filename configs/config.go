package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver     string
	DBSource     string
	Port         string
	GeminiAPIKey string
	GeminiModel  string
	SeedMenus    bool
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading config from environment")
	}

	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBSource:     getEnv("DB_SOURCE", "menu.db"),
		Port:         getEnv("PORT", "8000"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		SeedMenus:    getEnv("SEED_MENUS", "") == "1",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

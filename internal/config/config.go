package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         int
	LogLevel     string
}

// Load loads configuration from environment variables.
func Load() *Config {
	// Load .env file if it exists (useful for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "codebro")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		DatabaseURL:  viper.GetString("DATABASE_URL"),
		DatabaseName: viper.GetString("DATABASE_NAME"),
		Port:         viper.GetInt("PORT"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
	}
}

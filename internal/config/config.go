package config

import (
	"os"
)

type Config struct {
	Port          string
	GinMode       string
	StorageDriver string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		StorageDriver: getEnv("STORAGE_DRIVER", "memory"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "portal"),
		DBPassword:    getEnv("DB_PASSWORD", "portal"),
		DBName:        getEnv("DB_NAME", "bewerbungsportal"),
		AdminPassword: getEnv("ADMIN_INITIAL_PASSWORD", "123456"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

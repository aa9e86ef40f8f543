package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database connection. DB_DRIVER selects the adapter:
// "mysql" for deployments, anything else falls back to a local sqlite file
// so the till works with zero configuration.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				os.Getenv("DB_USER"),
				os.Getenv("DB_PASS"),
				getEnv("DB_HOST", "127.0.0.1"),
				getEnv("DB_PORT", "3306"),
				getEnv("DB_NAME", "pizzeria"),
			)
		}
		return gorm.Open(mysql.Open(dsn), cfg)
	default:
		dsn := getEnv("DB_DSN", "pizzeria.db")
		return gorm.Open(sqlite.Open(dsn), cfg)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

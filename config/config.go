package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database named by the environment. DB_DRIVER=mysql uses
// the usual DB_USER/DB_PASS/DB_HOST/DB_PORT/DB_NAME quintet; anything else
// falls back to a local SQLite file, which is enough for development.
func InitDB() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if getEnv("DB_DRIVER", "sqlite") == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASS"),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "hangoutz"),
		)
		return gorm.Open(mysql.Open(dsn), cfg)
	}

	return gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), cfg)
}

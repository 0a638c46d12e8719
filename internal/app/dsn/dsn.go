package dsn

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func FromEnv() string {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	dbname := os.Getenv("DB_NAME")

	// Default values if not set
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	if user == "" {
		user = "postgres"
	}
	if pass == "" {
		pass = "postgres"
	}
	if dbname == "" {
		dbname = "medicine_tracker"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
}

// Dialector выбирает драйвер по DB_DRIVER: postgres (по умолчанию) или sqlite для локального запуска.
func Dialector() gorm.Dialector {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))) {
	case "sqlite", "sqlite3":
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "healthtracker.db"
		}
		return sqlite.Open(path)
	default:
		return postgres.Open(FromEnv())
	}
}

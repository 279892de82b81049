package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/warbler-app/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens Postgres when DB_HOST is set, otherwise falls back to
// a local SQLite file so the service runs without a database server around.
func ConnectDatabase() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")

	if host == "" {
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "warbler.db"
		}
		logrus.WithField("path", dbPath).Info("Connecting to SQLite database")
		return gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	logrus.WithField("host", host).Info("Connecting to PostgreSQL database")
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func InitDB() *gorm.DB {
	db, err := ConnectDatabase()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	if err := MigrateModels(db); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	return db
}

// MigrateModels applies the schema for every entity the service owns.
func MigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
		&models.RefreshToken{},
	)
}

package config

import (
	"fmt"
	"log"

	"campusrent/models"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func errUnknown(name, value string) error {
	return fmt.Errorf("unknown %s: %q", name, value)
}

// getDBConfigByEnv builds the DSN from the <ENV>_DB_* variables.
func getDBConfigByEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV"
	case "qc":
		prefix = "QC"
	case "prod":
		prefix = "PROD"
	default:
		return "", errUnknown("environment", env)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		GetEnv(prefix+"_DB_HOST", "localhost"),
		GetEnv(prefix+"_DB_USER", "postgres"),
		GetEnv(prefix+"_DB_PASSWORD", ""),
		GetEnv(prefix+"_DB_NAME", "campusrent"),
		GetEnv(prefix+"_DB_PORT", "5432"),
		GetEnv(prefix+"_DB_SSLMODE", "require"),
	)
	return dsn, nil
}

// ConnectDB opens gorm on postgres, migrates the tables and exposes the same
// pool to sqlx.
func ConnectDB(dsn string) (*gorm.DB, *sqlx.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to db: %w", err)
	}

	if err := db.AutoMigrate(&models.Room{}, &models.Vehicle{}, &models.Booking{},
		&models.Review{}, &models.Favorite{}); err != nil {
		return nil, nil, fmt.Errorf("migrate tables: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("get sql.DB: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, sqlx.NewDb(sqlDB, "postgres"), nil
}

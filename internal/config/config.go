package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the environment-derived settings the service needs beyond the
// database handle.
type Config struct {
	Port       string
	JWTSecret  string
	ReceiptDir string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads service settings from the environment. The receipt directory is
// resolved to an absolute, symlink-free path exactly once here; the
// per-request confinement check compares against this resolved root and never
// accepts a caller-supplied root.
func Load() *Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not defined")
	}

	receiptDir, err := filepath.Abs(getenv("RECEIPT_DIR", "./receipts"))
	if err != nil {
		log.Fatal("invalid RECEIPT_DIR: ", err)
	}
	if resolved, err := filepath.EvalSymlinks(receiptDir); err == nil {
		receiptDir = resolved
	}

	return &Config{
		Port:       getenv("PORT", "8080"),
		JWTSecret:  secret,
		ReceiptDir: receiptDir,
	}
}

// InitDB opens the Postgres connection. The service cannot run without its
// store, so failure here is fatal.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "invoices"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	return db
}

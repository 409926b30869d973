package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Enabled reports whether a database was configured. Without one the service
// runs stateless: ad-hoc scraping works, the watch API is disabled.
func Enabled() bool {
	return DB != nil
}

// InitDatabase opens the connection when DATABASE_URL is set.
func InitDatabase() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Println("DATABASE_URL not set, running without persistence")
		return nil
	}

	var err error
	DB, err = sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Test the connection
	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %v", err)
	}

	log.Println("Successfully connected to database")
	return nil
}

// CreateTables creates the necessary tables if they don't exist.
func CreateTables() error {
	if !Enabled() {
		return nil
	}

	queries := []string{
		`CREATE TABLE IF NOT EXISTS watched_urls (
			id SERIAL PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			material_name TEXT NOT NULL DEFAULT '',
			last_price DECIMAL(10,2),
			last_sku TEXT,
			last_checked TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			is_active BOOLEAN DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS scrape_history (
			id SERIAL PRIMARY KEY,
			watch_id INTEGER REFERENCES watched_urls(id) ON DELETE CASCADE,
			success BOOLEAN NOT NULL,
			price DECIMAL(10,2),
			sku TEXT,
			confidence DECIMAL(3,2) DEFAULT 0,
			error TEXT,
			scraped_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := DB.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %v", err)
		}
	}

	log.Println("Database tables ready")
	return nil
}

// CloseDatabase closes the database connection.
func CloseDatabase() {
	if DB != nil {
		DB.Close()
	}
}

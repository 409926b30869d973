package repository

import (
	"database/sql"
	"fmt"

	"pricescout/database"
	"pricescout/models"
)

type ScrapeRepository struct{}

func NewScrapeRepository() *ScrapeRepository {
	return &ScrapeRepository{}
}

// AddRecord appends one scrape outcome to the history of a watch.
func (r *ScrapeRepository) AddRecord(watchID int, result *models.ScrapeResult) error {
	query := `
		INSERT INTO scrape_history (watch_id, success, price, sku, confidence, error)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var price sql.NullFloat64
	if result.Price != nil {
		price = sql.NullFloat64{Float64: *result.Price, Valid: true}
	}
	var sku sql.NullString
	if result.SKU != nil {
		sku = sql.NullString{String: *result.SKU, Valid: true}
	}
	var errMsg sql.NullString
	if result.Error != "" {
		errMsg = sql.NullString{String: result.Error, Valid: true}
	}

	if _, err := database.DB.Exec(query, watchID, result.Success, price, sku, result.Confidence, errMsg); err != nil {
		return fmt.Errorf("failed to add scrape record: %v", err)
	}

	return nil
}

// GetHistory returns the most recent scrape records for a watch.
func (r *ScrapeRepository) GetHistory(watchID, limit int) ([]models.ScrapeRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, watch_id, success, price, sku, confidence, error, scraped_at
		FROM scrape_history
		WHERE watch_id = $1
		ORDER BY scraped_at DESC
		LIMIT $2
	`

	rows, err := database.DB.Query(query, watchID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get scrape history: %v", err)
	}
	defer rows.Close()

	var records []models.ScrapeRecord
	for rows.Next() {
		var record models.ScrapeRecord
		err := rows.Scan(
			&record.ID, &record.WatchID, &record.Success,
			&record.Price, &record.SKU, &record.Confidence,
			&record.Error, &record.ScrapedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scrape record: %v", err)
		}
		records = append(records, record)
	}

	return records, nil
}

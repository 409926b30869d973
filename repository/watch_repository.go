package repository

import (
	"database/sql"
	"fmt"
	"time"

	"pricescout/database"
	"pricescout/models"
)

type WatchRepository struct{}

func NewWatchRepository() *WatchRepository {
	return &WatchRepository{}
}

// AddWatch adds a new URL to monitor.
func (r *WatchRepository) AddWatch(url, materialName string) (*models.WatchedURL, error) {
	query := `
		INSERT INTO watched_urls (url, material_name, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING id, url, material_name, last_price, last_sku, last_checked, created_at, updated_at, is_active
	`

	var watch models.WatchedURL
	now := time.Now()
	err := database.DB.QueryRow(query, url, materialName, now).Scan(
		&watch.ID, &watch.URL, &watch.MaterialName,
		&watch.LastPrice, &watch.LastSKU, &watch.LastChecked,
		&watch.CreatedAt, &watch.UpdatedAt, &watch.IsActive,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to add watch: %v", err)
	}

	return &watch, nil
}

// GetWatches returns all active watches.
func (r *WatchRepository) GetWatches() ([]models.WatchedURL, error) {
	query := `
		SELECT id, url, material_name, last_price, last_sku, last_checked, created_at, updated_at, is_active
		FROM watched_urls
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := database.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get watches: %v", err)
	}
	defer rows.Close()

	var watches []models.WatchedURL
	for rows.Next() {
		var watch models.WatchedURL
		err := rows.Scan(
			&watch.ID, &watch.URL, &watch.MaterialName,
			&watch.LastPrice, &watch.LastSKU, &watch.LastChecked,
			&watch.CreatedAt, &watch.UpdatedAt, &watch.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan watch: %v", err)
		}
		watches = append(watches, watch)
	}

	return watches, nil
}

// GetWatchByID returns an active watch by ID.
func (r *WatchRepository) GetWatchByID(id int) (*models.WatchedURL, error) {
	query := `
		SELECT id, url, material_name, last_price, last_sku, last_checked, created_at, updated_at, is_active
		FROM watched_urls
		WHERE id = $1 AND is_active = true
	`

	var watch models.WatchedURL
	err := database.DB.QueryRow(query, id).Scan(
		&watch.ID, &watch.URL, &watch.MaterialName,
		&watch.LastPrice, &watch.LastSKU, &watch.LastChecked,
		&watch.CreatedAt, &watch.UpdatedAt, &watch.IsActive,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("watch not found")
		}
		return nil, fmt.Errorf("failed to get watch: %v", err)
	}

	return &watch, nil
}

// UpdateWatchResult stores the latest extraction outcome on the watch row.
// Failed scrapes only bump last_checked; the last known price and SKU stay.
func (r *WatchRepository) UpdateWatchResult(id int, result *models.ScrapeResult) error {
	now := time.Now()

	if !result.Success {
		query := `UPDATE watched_urls SET last_checked = $2, updated_at = $2 WHERE id = $1`
		if _, err := database.DB.Exec(query, id, now); err != nil {
			return fmt.Errorf("failed to update watch: %v", err)
		}
		return nil
	}

	query := `
		UPDATE watched_urls
		SET last_price = COALESCE($2, last_price),
		    last_sku = COALESCE($3, last_sku),
		    last_checked = $4,
		    updated_at = $4
		WHERE id = $1
	`

	var price sql.NullFloat64
	if result.Price != nil {
		price = sql.NullFloat64{Float64: *result.Price, Valid: true}
	}
	var sku sql.NullString
	if result.SKU != nil {
		sku = sql.NullString{String: *result.SKU, Valid: true}
	}

	if _, err := database.DB.Exec(query, id, price, sku, now); err != nil {
		return fmt.Errorf("failed to update watch result: %v", err)
	}

	return nil
}

// DeleteWatch soft-deletes a watch.
func (r *WatchRepository) DeleteWatch(id int) error {
	query := `UPDATE watched_urls SET is_active = false, updated_at = $2 WHERE id = $1`

	res, err := database.DB.Exec(query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to delete watch: %v", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("watch not found")
	}

	return nil
}

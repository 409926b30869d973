package models

import (
	"database/sql"
	"time"
)

// ScrapeRequest is the inbound body of a scrape call. MaterialName is
// informational only and never reaches the extraction logic.
type ScrapeRequest struct {
	URL          string `json:"url"`
	MaterialName string `json:"materialName"`
}

// ScrapeResult is the outcome of one scrape. On failure Price and SKU are
// nil, Confidence is 0 and Error carries the message, so consumers only ever
// branch on Success.
type ScrapeResult struct {
	Success    bool     `json:"success"`
	Price      *float64 `json:"price"`
	SKU        *string  `json:"sku"`
	Source     string   `json:"source"`
	Confidence float64  `json:"confidence"`
	Error      string   `json:"error,omitempty"`
}

// FailedScrape builds the uniform failure shape for url.
func FailedScrape(url string, err error) *ScrapeResult {
	return &ScrapeResult{
		Success: false,
		Source:  url,
		Error:   err.Error(),
	}
}

// HasPrice returns true if a price was extracted.
func (r *ScrapeResult) HasPrice() bool {
	return r.Price != nil
}

// HasSKU returns true if a SKU was extracted.
func (r *ScrapeResult) HasSKU() bool {
	return r.SKU != nil
}

// WatchedURL is a product page monitored by the recheck scheduler.
type WatchedURL struct {
	ID           int             `json:"id"`
	URL          string          `json:"url"`
	MaterialName string          `json:"material_name"`
	LastPrice    sql.NullFloat64 `json:"last_price"`
	LastSKU      sql.NullString  `json:"last_sku"`
	LastChecked  *time.Time      `json:"last_checked"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	IsActive     bool            `json:"is_active"`
}

// HasPrice returns true if the watch has seen a price.
func (w *WatchedURL) HasPrice() bool {
	return w.LastPrice.Valid
}

// GetLastPrice returns the last seen price as float64, or 0 if NULL.
func (w *WatchedURL) GetLastPrice() float64 {
	if w.LastPrice.Valid {
		return w.LastPrice.Float64
	}
	return 0.0
}

// ScrapeRecord is one row of scrape history for a watched URL.
type ScrapeRecord struct {
	ID         int             `json:"id"`
	WatchID    int             `json:"watch_id"`
	Success    bool            `json:"success"`
	Price      sql.NullFloat64 `json:"price"`
	SKU        sql.NullString  `json:"sku"`
	Confidence float64         `json:"confidence"`
	Error      sql.NullString  `json:"error"`
	ScrapedAt  time.Time       `json:"scraped_at"`
}

package scraper

import (
	"log"
	"strings"
	"time"

	"pricescout/models"
)

// DefaultSettleDelay is the flat wait after navigation that gives
// client-side rendering a chance to finish. The browser exposes no reliable
// readiness signal for arbitrary shops, so a fixed delay it is.
const DefaultSettleDelay = 3 * time.Second

// Scraper drives one exclusive browser session per scrape: launch, navigate,
// settle, extract price then SKU, and tear the session down on every path.
type Scraper struct {
	engine      Engine
	settleDelay time.Duration
}

// New creates a scraper with the default settle delay.
func New(engine Engine) *Scraper {
	return NewWithSettleDelay(engine, DefaultSettleDelay)
}

// NewWithSettleDelay creates a scraper with a custom settle delay.
func NewWithSettleDelay(engine Engine, settleDelay time.Duration) *Scraper {
	return &Scraper{engine: engine, settleDelay: settleDelay}
}

// Scrape fetches url in a fresh browser session and extracts a price and a
// SKU from the rendered DOM. It never returns an error: every failure is
// folded into the result so callers only branch on Success.
func (s *Scraper) Scrape(url string) *models.ScrapeResult {
	log.Printf("Starting scrape for URL: %s", url)

	session, err := s.engine.Launch()
	if err != nil {
		log.Printf("Error scraping %s: %v", url, err)
		return models.FailedScrape(url, err)
	}
	defer s.release(session, url)

	if err := session.Navigate(url); err != nil {
		log.Printf("Error scraping %s: %v", url, err)
		return models.FailedScrape(url, err)
	}

	// Let client-side rendering settle before touching the DOM.
	time.Sleep(s.settleDelay)

	result := &models.ScrapeResult{
		Success:    true,
		Source:     url,
		Confidence: 0.3,
	}

	if price, ok := findField(session, PriceSelectors, ExtractPrice); ok {
		log.Printf("Found price %.2f for %s", price, url)
		result.Price = &price
		result.Confidence = 0.8
	}

	// A missing SKU does not lower confidence; only the price drives it.
	if sku, ok := findField(session, SKUSelectors, testSKU); ok {
		log.Printf("Found SKU %s for %s", sku, url)
		result.SKU = &sku
	}

	return result
}

// testSKU adapts the SKU classifier to the field search: the accepted value
// is the trimmed element text.
func testSKU(text string) (string, bool) {
	if !LooksLikeSKU(text) {
		return "", false
	}
	return strings.TrimSpace(text), true
}

// release stops the browser session. Stop failures are logged and swallowed;
// they never override the already-computed result.
func (s *Scraper) release(session Session, url string) {
	if err := session.Stop(); err != nil {
		log.Printf("Error closing browser for %s: %v", url, err)
	}
}

package scraper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://shop.example.com/product/123"

func newTestScraper(engine Engine) *Scraper {
	return NewWithSettleDelay(engine, 0)
}

func TestScrapeFindsPriceAndSKU(t *testing.T) {
	session := &mockSession{
		elements: map[string][]Element{
			".price": texts("Sale Price: $45.00 (was $60.00)"),
			".sku":   texts("SKU12345"),
		},
	}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	require.True(t, result.Success)
	require.NotNil(t, result.Price)
	assert.InDelta(t, 45.00, *result.Price, 0.001)
	require.NotNil(t, result.SKU)
	assert.Equal(t, "SKU12345", *result.SKU)
	assert.Equal(t, testURL, result.Source)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, session.stopCount)
}

func TestScrapeSKUOnlyLowersConfidence(t *testing.T) {
	session := &mockSession{
		elements: map[string][]Element{
			".item-number": texts("  987654  "),
		},
	}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	require.True(t, result.Success)
	assert.Nil(t, result.Price)
	require.NotNil(t, result.SKU)
	assert.Equal(t, "987654", *result.SKU)
	assert.InDelta(t, 0.3, result.Confidence, 0.001)
	assert.Equal(t, 1, session.stopCount)
}

func TestScrapeMissingSKUKeepsPriceConfidence(t *testing.T) {
	session := &mockSession{
		elements: map[string][]Element{
			".current-price": texts("$129.00"),
		},
	}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	require.True(t, result.Success)
	require.NotNil(t, result.Price)
	assert.Nil(t, result.SKU)
	assert.InDelta(t, 0.8, result.Confidence, 0.001)
}

func TestScrapeEmptyPageStillSucceeds(t *testing.T) {
	session := &mockSession{}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	require.True(t, result.Success)
	assert.Nil(t, result.Price)
	assert.Nil(t, result.SKU)
	assert.InDelta(t, 0.3, result.Confidence, 0.001)
	assert.Equal(t, 1, session.stopCount)
}

func TestScrapeNavigationFailure(t *testing.T) {
	session := &mockSession{navErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	assert.False(t, result.Success)
	assert.Nil(t, result.Price)
	assert.Nil(t, result.SKU)
	assert.Zero(t, result.Confidence)
	assert.Equal(t, testURL, result.Source)
	assert.NotEmpty(t, result.Error)
	// The session is torn down even though navigation blew up.
	assert.Equal(t, 1, session.stopCount)
}

func TestScrapeLaunchFailure(t *testing.T) {
	result := newTestScraper(&mockEngine{launchErr: errors.New("chromium not found")}).Scrape(testURL)

	assert.False(t, result.Success)
	assert.Nil(t, result.Price)
	assert.Nil(t, result.SKU)
	assert.Zero(t, result.Confidence)
	assert.NotEmpty(t, result.Error)
}

func TestScrapeSwallowsTeardownError(t *testing.T) {
	session := &mockSession{
		elements: map[string][]Element{
			".price": texts("$19.99"),
		},
		stopErr: errors.New("browser already gone"),
	}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	// A failing Stop never overrides the computed result.
	require.True(t, result.Success)
	require.NotNil(t, result.Price)
	assert.InDelta(t, 19.99, *result.Price, 0.001)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, session.stopCount)
}

func TestScrapeStopsSessionExactlyOnce(t *testing.T) {
	sessions := []*mockSession{
		{},
		{navErr: errors.New("timeout")},
		{elements: map[string][]Element{".price": texts("$5.00"), ".sku": texts("ABC123")}},
	}

	for _, session := range sessions {
		newTestScraper(&mockEngine{session: session}).Scrape(testURL)
		assert.Equal(t, 1, session.stopCount)
	}
}

func TestScrapeUsesSelectorPrecedenceForBothFields(t *testing.T) {
	session := &mockSession{
		elements: map[string][]Element{
			// Both selectors match; the data-testid one comes first in the
			// priority list and must win.
			`[data-testid="price"]`: texts("$10.00"),
			".price":                texts("$999.00"),
			`[data-testid="sku"]`:   texts("AA111"),
			".sku":                  texts("ZZ999"),
		},
	}

	result := newTestScraper(&mockEngine{session: session}).Scrape(testURL)

	require.True(t, result.Success)
	require.NotNil(t, result.Price)
	assert.InDelta(t, 10.00, *result.Price, 0.001)
	require.NotNil(t, result.SKU)
	assert.Equal(t, "AA111", *result.SKU)
}

package scraper

import (
	"regexp"
	"strings"
)

// skuPatterns describe the shapes a stock-keeping identifier usually takes.
// Any match accepts, so order does not matter here.
var skuPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\d{6,}$`),           // long digit run
	regexp.MustCompile(`(?i)^[A-Z0-9]{3,}$`),     // alphanumeric code
	regexp.MustCompile(`(?i)^\d{3,}-[A-Z0-9]+$`), // hyphenated code
	regexp.MustCompile(`(?i)^[A-Z]{2,}\d+$`),     // letter prefix, digits
}

// LooksLikeSKU reports whether trimmed element text has the shape of a SKU.
// Unlike the price extractor there is no value validation; any string
// matching a shape rule is accepted as-is.
func LooksLikeSKU(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < 3 {
		return false
	}

	for _, pattern := range skuPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	return false
}

package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible price range in USD. Bare-number matches are the riskiest, so
// every candidate is validated against this range.
const (
	minPrice = 0.01
	maxPrice = 10000
)

// noisePattern matches marketing text that commonly sits next to a price
// and would otherwise confuse the numeric patterns.
var noisePattern = regexp.MustCompile(`(?i)(was|orig|originally|save|you save|msrp)`)

// pricePatterns are tried in order of trustworthiness: an explicit dollar
// sign first, a USD suffix second, a bare amount as a last resort.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*\.?\d{0,2})`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*\.?\d{0,2})\s*USD`),
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*\.?\d{0,2})`),
}

// NormalizeText strips noise tokens like "was" and "MSRP" from raw element
// text. Case and whitespace are otherwise untouched.
func NormalizeText(text string) string {
	return noisePattern.ReplaceAllString(text, "")
}

// ExtractPrice pulls a dollar amount out of element text. The first pattern
// that matches at all is final, and only its first match is considered: an
// out-of-range candidate fails the whole extraction instead of falling
// through to later matches or later patterns.
func ExtractPrice(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	text = NormalizeText(text)

	for _, pattern := range pricePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil {
			return 0, false
		}
		if price < minPrice || price > maxPrice {
			return 0, false
		}
		return price, true
	}

	return 0, false
}

package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeSKU(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "six digits",
			text:     "123456",
			expected: true,
		},
		{
			name:     "three alphanumeric characters",
			text:     "SKU",
			expected: true,
		},
		{
			name:     "digits hyphen alphanumeric",
			text:     "123-ABC",
			expected: true,
		},
		{
			name:     "letter prefix with digits",
			text:     "SKU12345",
			expected: true,
		},
		{
			name:     "lowercase accepted",
			text:     "sku12345",
			expected: true,
		},
		{
			name:     "surrounding whitespace is trimmed",
			text:     "  AB1234  ",
			expected: true,
		},
		{
			name:     "too short",
			text:     "AB",
			expected: false,
		},
		{
			name:     "whitespace only",
			text:     "   ",
			expected: false,
		},
		{
			name:     "empty",
			text:     "",
			expected: false,
		},
		{
			name:     "inner space breaks every shape",
			text:     "ABC 123",
			expected: false,
		},
		{
			name:     "letters around hyphen",
			text:     "a-b",
			expected: false,
		},
		{
			name:     "sentence is not a code",
			text:     "In stock, ships tomorrow",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeSKU(tt.text))
		})
	}
}

package repository

import (
	"fmt"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/shopspring/decimal"
)

// parseAmount parses a stored decimal string column
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return d, nil
}

// parseDate parses a stored YYYY-MM-DD date column
func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}

// formatDate formats a date for storage
func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

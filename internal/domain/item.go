package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogItem is a reusable billable service or product definition.
// Invoices reference items by name at creation time, not by ID: the name
// and price are frozen into the invoice's line-item text, so renaming or
// deleting an item never changes invoices that already exist.
type CatalogItem struct {
	ID        int64
	Name      string
	UnitPrice decimal.Decimal
}

// NewCatalogItem creates a catalog item with the given name and unit price
func NewCatalogItem(name string, unitPrice decimal.Decimal) *CatalogItem {
	return &CatalogItem{
		Name:      strings.TrimSpace(name),
		UnitPrice: unitPrice,
	}
}

// Validate returns an error if the catalog item is invalid
func (i *CatalogItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("item name is required")
	}
	if i.UnitPrice.IsNegative() {
		return errors.New("unit price cannot be negative")
	}
	return nil
}

// DefaultCatalog returns the catalog seeded on first run when no items exist
func DefaultCatalog() []*CatalogItem {
	return []*CatalogItem{
		NewCatalogItem("38 Meter pump rental hourly (3 hr minimum)", decimal.NewFromInt(230)),
		NewCatalogItem("Meters of pumped concrete", decimal.NewFromInt(5)),
		NewCatalogItem("Offsite wash out fee", decimal.NewFromInt(150)),
		NewCatalogItem("Travel time hourly", decimal.NewFromInt(230)),
		NewCatalogItem("Slurry", decimal.NewFromInt(40)),
		NewCatalogItem("Ferry fees incurred", decimal.RequireFromString("113.05")),
	}
}

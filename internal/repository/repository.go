package repository

import (
	"context"

	"github.com/andy/billfold/internal/domain"
	"github.com/shopspring/decimal"
)

// ClientRepository manages client persistence
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	// GetByID returns domain.ErrClientNotFound when no client has the ID
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	// GetByName returns (nil, nil) when no client has the name; absence is
	// an expected lookup outcome, not a failure
	GetByName(ctx context.Context, name string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	// Delete removes a client, or fails with domain.ClientHasInvoicesError
	// carrying the referencing-invoice count
	Delete(ctx context.Context, id int64) error
	// CountInvoices returns how many invoices reference the client
	CountInvoices(ctx context.Context, id int64) (int, error)
}

// CatalogRepository manages billable item definitions
type CatalogRepository interface {
	Create(ctx context.Context, item *domain.CatalogItem) error
	GetByID(ctx context.Context, id int64) (*domain.CatalogItem, error)
	// List returns items in stored order; invoice line items are built in
	// this order
	List(ctx context.Context) ([]*domain.CatalogItem, error)
	Update(ctx context.Context, item *domain.CatalogItem) error
	Delete(ctx context.Context, id int64) error
}

// InvoiceRepository owns invoice persistence
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	// List returns filtered invoice summaries joined with client names
	List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceSummary, error)
	// UpdateLineItems overwrites the client, encoded line items, and
	// subtotal of an existing invoice. Date and status are never touched.
	UpdateLineItems(ctx context.Context, id int64, clientID int64, lineItems string, subtotal decimal.Decimal) error
	SetStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error
	Delete(ctx context.Context, id int64) error
}

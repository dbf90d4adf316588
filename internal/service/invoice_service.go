package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/lineitem"
	"github.com/andy/billfold/internal/repository"
	"github.com/shopspring/decimal"
)

// InvoiceService builds, updates, and lists invoices. Quantities arrive as
// the raw text the user typed, keyed by catalog item ID; items without an
// entry default to "0".
type InvoiceService interface {
	// ComputeSubtotal encodes one line per catalog item, in catalog order,
	// and returns the encoded blob plus the subtotal of all line totals
	ComputeSubtotal(items []*domain.CatalogItem, quantities map[int64]string) (string, decimal.Decimal, error)

	// CreateInvoice creates an unpaid invoice dated today for the named client
	CreateInvoice(ctx context.Context, clientName string, quantities map[int64]string, today time.Time) (*domain.Invoice, error)

	// UpdateInvoice overwrites the client and line items of an existing
	// invoice; the creation date and payment status are never changed
	UpdateInvoice(ctx context.Context, invoiceID int64, clientName string, quantities map[int64]string) error

	// SetStatus sets the payment status; repeating the current status is a
	// no-op success
	SetStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error

	// DeleteInvoice permanently removes an invoice
	DeleteInvoice(ctx context.Context, invoiceID int64) error

	// GetInvoice retrieves an invoice by ID
	GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error)

	// ListInvoices lists invoice summaries matching the filter
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceSummary, error)

	// ExportRows returns the full invoice list as tabular rows with a
	// header, ready for any tabular writer
	ExportRows(ctx context.Context) ([][]string, error)
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	catalogRepo repository.CatalogRepository
	clientRepo  repository.ClientRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	catalogRepo repository.CatalogRepository,
	clientRepo repository.ClientRepository,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		catalogRepo: catalogRepo,
		clientRepo:  clientRepo,
	}
}

func (s *invoiceService) ComputeSubtotal(items []*domain.CatalogItem, quantities map[int64]string) (string, decimal.Decimal, error) {
	entries := make([]lineitem.Entry, 0, len(items))
	subtotal := decimal.Zero

	for _, item := range items {
		input, ok := quantities[item.ID]
		if !ok {
			input = "0"
		}

		qty, err := decimal.NewFromString(strings.TrimSpace(input))
		if err != nil {
			return "", decimal.Zero, fmt.Errorf("%w: %q for item %q", domain.ErrInvalidQuantity, input, item.Name)
		}
		if qty.IsNegative() {
			return "", decimal.Zero, fmt.Errorf("%w: %q for item %q", domain.ErrInvalidQuantity, input, item.Name)
		}

		// Zero-quantity items are still encoded (the blob records the full
		// catalog at creation time) but contribute nothing to the subtotal
		// and are dropped from rendered documents.
		subtotal = subtotal.Add(qty.Mul(item.UnitPrice).Round(2))

		entries = append(entries, lineitem.Entry{
			Name:      item.Name,
			Quantity:  qty,
			UnitPrice: item.UnitPrice,
		})
	}

	return lineitem.Encode(entries), subtotal, nil
}

func (s *invoiceService) CreateInvoice(ctx context.Context, clientName string, quantities map[int64]string, today time.Time) (*domain.Invoice, error) {
	client, err := s.resolveClient(ctx, clientName)
	if err != nil {
		return nil, err
	}

	lineItems, subtotal, err := s.buildLineItems(ctx, quantities)
	if err != nil {
		return nil, err
	}

	invoice := domain.NewInvoice(client.ID, lineItems, subtotal, today)
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID int64, clientName string, quantities map[int64]string) error {
	// Confirm the invoice exists before recomputing anything
	if _, err := s.invoiceRepo.GetByID(ctx, invoiceID); err != nil {
		return err
	}

	client, err := s.resolveClient(ctx, clientName)
	if err != nil {
		return err
	}

	lineItems, subtotal, err := s.buildLineItems(ctx, quantities)
	if err != nil {
		return err
	}

	return s.invoiceRepo.UpdateLineItems(ctx, invoiceID, client.ID, lineItems, subtotal)
}

func (s *invoiceService) SetStatus(ctx context.Context, invoiceID int64, status domain.InvoiceStatus) error {
	if status != domain.InvoiceStatusPaid && status != domain.InvoiceStatusUnpaid {
		return errors.New("status must be paid or unpaid")
	}
	return s.invoiceRepo.SetStatus(ctx, invoiceID, status)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID int64) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceSummary, error) {
	return s.invoiceRepo.List(ctx, filter)
}

func (s *invoiceService) ExportRows(ctx context.Context) ([][]string, error) {
	summaries, err := s.invoiceRepo.List(ctx, domain.InvoiceFilter{Status: "all"})
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, []string{"Invoice ID", "Client Name", "Subtotal", "Date", "Status"})

	for _, summary := range summaries {
		rows = append(rows, []string{
			strconv.FormatInt(summary.ID, 10),
			summary.ClientName,
			summary.Subtotal.StringFixed(2),
			summary.Date,
			string(summary.Status),
		})
	}

	return rows, nil
}

// resolveClient resolves a display name to a stored client
func (s *invoiceService) resolveClient(ctx context.Context, clientName string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByName(ctx, clientName)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownClient, clientName)
	}
	return client, nil
}

// buildLineItems loads the catalog and computes the encoded blob and
// subtotal, rejecting invoices that bill nothing
func (s *invoiceService) buildLineItems(ctx context.Context, quantities map[int64]string) (string, decimal.Decimal, error) {
	items, err := s.catalogRepo.List(ctx)
	if err != nil {
		return "", decimal.Zero, err
	}

	lineItems, subtotal, err := s.ComputeSubtotal(items, quantities)
	if err != nil {
		return "", decimal.Zero, err
	}

	if !subtotal.IsPositive() {
		return "", decimal.Zero, domain.ErrEmptyInvoice
	}

	return lineItems, subtotal, nil
}

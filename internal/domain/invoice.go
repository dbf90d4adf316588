package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// DateLayout is the calendar-date form invoices are stored and filtered in.
// Dates are compared as strings, so the layout must sort lexicographically.
const DateLayout = "2006-01-02"

// Invoice is a stored invoice record. LineItems holds the encoded text blob
// produced by the lineitem package; Subtotal is the sum of its line totals.
// Date is fixed at creation and never changed by updates.
type Invoice struct {
	ID        int64
	ClientID  int64
	LineItems string
	Subtotal  decimal.Decimal
	Date      time.Time
	Status    InvoiceStatus
}

// NewInvoice creates an unpaid invoice dated on the given day
func NewInvoice(clientID int64, lineItems string, subtotal decimal.Decimal, date time.Time) *Invoice {
	return &Invoice{
		ClientID:  clientID,
		LineItems: lineItems,
		Subtotal:  subtotal,
		Date:      date,
		Status:    InvoiceStatusUnpaid,
	}
}

// Validate returns an error if the invoice is invalid
func (i *Invoice) Validate() error {
	if i.ClientID <= 0 {
		return errors.New("client ID is required")
	}
	if i.LineItems == "" {
		return errors.New("line items are required")
	}
	if i.Date.IsZero() {
		return errors.New("date is required")
	}
	if i.Status != InvoiceStatusUnpaid && i.Status != InvoiceStatusPaid {
		return errors.New("status must be paid or unpaid")
	}
	return nil
}

// InvoiceSummary is one row of the invoice list, joined against the client
// name for display and export.
type InvoiceSummary struct {
	ID         int64
	ClientName string
	Subtotal   decimal.Decimal
	Date       string
	Status     InvoiceStatus
}

// InvoiceFilter narrows the invoice list. An empty or "all" status matches
// every status. DateFrom and DateTo are inclusive ISO-8601 bounds compared
// as strings against the stored date; malformed bounds are passed through
// unvalidated and compare lexicographically.
type InvoiceFilter struct {
	Status   string
	DateFrom string
	DateTo   string
}

// MatchesAll reports whether the filter's status clause passes everything
func (f InvoiceFilter) MatchesAll() bool {
	return f.Status == "" || f.Status == "all"
}

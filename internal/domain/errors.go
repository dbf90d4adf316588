package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity indicates a quantity input that is not a
	// non-negative number
	ErrInvalidQuantity = errors.New("quantity must be a non-negative number")

	// ErrUnknownClient indicates a client name that does not resolve to a
	// stored client
	ErrUnknownClient = errors.New("unknown client")

	// ErrEmptyInvoice indicates an invoice whose subtotal is not above zero
	ErrEmptyInvoice = errors.New("invoice has no billable quantities")

	// ErrInvoiceNotFound indicates an invoice ID with no stored record
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrClientNotFound indicates a client ID with no stored record
	ErrClientNotFound = errors.New("client not found")

	// ErrItemNotFound indicates a catalog item ID with no stored record
	ErrItemNotFound = errors.New("catalog item not found")
)

// ClientHasInvoicesError blocks client deletion while invoices still
// reference the client. Count is the number of referencing invoices, so the
// caller can tell the user what is in the way.
type ClientHasInvoicesError struct {
	ClientID int64
	Count    int
}

func (e *ClientHasInvoicesError) Error() string {
	return fmt.Sprintf("client %d has %d invoice(s) and cannot be deleted", e.ClientID, e.Count)
}

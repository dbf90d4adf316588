package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/billfold/internal/db"
	"github.com/andy/billfold/internal/domain"
	"github.com/shopspring/decimal"
)

// InvoiceRepo is a SQLite implementation of InvoiceRepository
type InvoiceRepo struct {
	db *db.DB
}

// NewInvoiceRepo creates a new InvoiceRepo
func NewInvoiceRepo(database *db.DB) *InvoiceRepo {
	return &InvoiceRepo{db: database}
}

// Create inserts a new invoice into the database
func (r *InvoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return fmt.Errorf("invalid invoice: %w", err)
	}

	query := `
		INSERT INTO invoices (client_id, line_items, subtotal, date, status)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		invoice.ClientID,
		invoice.LineItems,
		invoice.Subtotal.String(),
		formatDate(invoice.Date),
		string(invoice.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get invoice ID: %w", err)
	}

	invoice.ID = id
	return nil
}

// GetByID retrieves an invoice by ID
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := `
		SELECT id, client_id, line_items, subtotal, date, status
		FROM invoices
		WHERE id = ?
	`

	invoice := &domain.Invoice{}
	var subtotal, date, status string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.ClientID,
		&invoice.LineItems,
		&subtotal,
		&date,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.Subtotal, err = parseAmount(subtotal); err != nil {
		return nil, err
	}
	if invoice.Date, err = parseDate(date); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}
	invoice.Status = domain.InvoiceStatus(status)

	return invoice, nil
}

// buildListQuery assembles the filtered summary query. All clauses are
// conjunctive; date bounds are compared as strings against the stored
// YYYY-MM-DD text, so malformed bounds compare lexicographically rather
// than failing.
func buildListQuery(filter domain.InvoiceFilter) (string, []interface{}) {
	query := `
		SELECT invoices.id, clients.name, invoices.subtotal, invoices.date, invoices.status
		FROM invoices
		JOIN clients ON invoices.client_id = clients.id
		WHERE 1=1
	`
	args := make([]interface{}, 0)

	if !filter.MatchesAll() {
		query += " AND invoices.status = ?"
		args = append(args, filter.Status)
	}

	if filter.DateFrom != "" {
		query += " AND invoices.date >= ?"
		args = append(args, filter.DateFrom)
	}

	if filter.DateTo != "" {
		query += " AND invoices.date <= ?"
		args = append(args, filter.DateTo)
	}

	query += " ORDER BY invoices.id"
	return query, args
}

// List retrieves invoice summaries matching the filter, joined with the
// client display name
func (r *InvoiceRepo) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.InvoiceSummary, error) {
	query, args := buildListQuery(filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.InvoiceSummary, 0)
	for rows.Next() {
		summary := &domain.InvoiceSummary{}
		var subtotal, status string

		err := rows.Scan(
			&summary.ID,
			&summary.ClientName,
			&subtotal,
			&summary.Date,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}

		if summary.Subtotal, err = parseAmount(subtotal); err != nil {
			return nil, err
		}
		summary.Status = domain.InvoiceStatus(status)

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return summaries, nil
}

// UpdateLineItems overwrites the client, line items, and subtotal of an
// existing invoice. The creation date and payment status are deliberately
// left alone.
func (r *InvoiceRepo) UpdateLineItems(ctx context.Context, id int64, clientID int64, lineItems string, subtotal decimal.Decimal) error {
	query := `
		UPDATE invoices
		SET client_id = ?, line_items = ?, subtotal = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		clientID,
		lineItems,
		subtotal.String(),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

// SetStatus updates the payment status. Setting the current status again
// is a no-op success.
func (r *InvoiceRepo) SetStatus(ctx context.Context, id int64, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = ? WHERE id = ?",
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set invoice status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

// Delete removes an invoice
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

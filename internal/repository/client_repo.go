package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/billfold/internal/db"
	"github.com/andy/billfold/internal/domain"
)

// ClientRepo is a SQLite implementation of ClientRepository
type ClientRepo struct {
	db *db.DB
}

// NewClientRepo creates a new ClientRepo
func NewClientRepo(database *db.DB) *ClientRepo {
	return &ClientRepo{db: database}
}

// Create inserts a new client into the database
func (r *ClientRepo) Create(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("invalid client: %w", err)
	}

	query := `
		INSERT INTO clients (name, billing_address, contact_name, phone_number, email)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		client.Name,
		client.BillingAddress,
		client.ContactName,
		client.PhoneNumber,
		client.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get client ID: %w", err)
	}

	client.ID = id
	return nil
}

// GetByID retrieves a client by ID
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `
		SELECT id, name, billing_address, contact_name, phone_number, email
		FROM clients
		WHERE id = ?
	`

	client := &domain.Client{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.BillingAddress,
		&client.ContactName,
		&client.PhoneNumber,
		&client.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}

// GetByName retrieves a client by display name, or nil if no client has it
func (r *ClientRepo) GetByName(ctx context.Context, name string) (*domain.Client, error) {
	query := `
		SELECT id, name, billing_address, contact_name, phone_number, email
		FROM clients
		WHERE name = ?
	`

	client := &domain.Client{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&client.ID,
		&client.Name,
		&client.BillingAddress,
		&client.ContactName,
		&client.PhoneNumber,
		&client.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}

// List retrieves all clients in insertion order
func (r *ClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	query := `
		SELECT id, name, billing_address, contact_name, phone_number, email
		FROM clients
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client := &domain.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.BillingAddress,
			&client.ContactName,
			&client.PhoneNumber,
			&client.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}

// Update updates an existing client
func (r *ClientRepo) Update(ctx context.Context, client *domain.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("invalid client: %w", err)
	}

	query := `
		UPDATE clients
		SET name = ?, billing_address = ?, contact_name = ?, phone_number = ?, email = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		client.Name,
		client.BillingAddress,
		client.ContactName,
		client.PhoneNumber,
		client.Email,
		client.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// CountInvoices returns how many invoices reference the client
func (r *ClientRepo) CountInvoices(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM invoices WHERE client_id = ?", id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// Delete removes a client. Deletion is refused with
// domain.ClientHasInvoicesError while any invoice references the client.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	count, err := r.CountInvoices(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ClientHasInvoicesError{ClientID: id, Count: count}
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

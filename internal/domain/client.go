package domain

import (
	"errors"
	"strings"
)

// Client is a billable customer. The billing fields are copied verbatim
// into rendered invoices.
type Client struct {
	ID             int64
	Name           string
	BillingAddress string
	ContactName    string
	PhoneNumber    string
	Email          string
}

// NewClient creates a new client with the required name field
func NewClient(name string) *Client {
	return &Client{
		Name: strings.TrimSpace(name),
	}
}

// Validate returns an error if the client is invalid
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("client name is required")
	}
	return nil
}

package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewInvoice_Defaults(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	inv := NewInvoice(7, "Pump rental: 2 @ $230.0 = $460.00\n", decimal.NewFromInt(460), date)

	if inv.Status != InvoiceStatusUnpaid {
		t.Errorf("Status = %s, want unpaid", inv.Status)
	}
	if err := inv.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestInvoice_Validate(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		invoice *Invoice
		wantErr bool
	}{
		{"valid", &Invoice{ClientID: 1, LineItems: "x: 1 @ $1.0 = $1.00\n", Date: date, Status: InvoiceStatusPaid}, false},
		{"no client", &Invoice{LineItems: "x", Date: date, Status: InvoiceStatusUnpaid}, true},
		{"no line items", &Invoice{ClientID: 1, Date: date, Status: InvoiceStatusUnpaid}, true},
		{"no date", &Invoice{ClientID: 1, LineItems: "x", Status: InvoiceStatusUnpaid}, true},
		{"bad status", &Invoice{ClientID: 1, LineItems: "x", Date: date, Status: "overdue"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.invoice.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvoiceFilter_MatchesAll(t *testing.T) {
	if !(InvoiceFilter{}).MatchesAll() {
		t.Error("empty status should match all")
	}
	if !(InvoiceFilter{Status: "all"}).MatchesAll() {
		t.Error(`"all" should match all`)
	}
	if (InvoiceFilter{Status: "paid"}).MatchesAll() {
		t.Error(`"paid" should not match all`)
	}
}

func TestCatalogItem_Validate(t *testing.T) {
	if err := NewCatalogItem("Slurry", decimal.NewFromInt(40)).Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	if err := NewCatalogItem("  ", decimal.NewFromInt(40)).Validate(); err == nil {
		t.Error("blank name should fail validation")
	}
	if err := NewCatalogItem("Slurry", decimal.NewFromInt(-1)).Validate(); err == nil {
		t.Error("negative price should fail validation")
	}
}

func TestDefaultCatalog(t *testing.T) {
	items := DefaultCatalog()
	if len(items) != 6 {
		t.Fatalf("got %d items, want 6", len(items))
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			t.Errorf("seed item %q invalid: %v", item.Name, err)
		}
	}
	if !items[5].UnitPrice.Equal(decimal.RequireFromString("113.05")) {
		t.Errorf("ferry fee price = %s, want 113.05", items[5].UnitPrice)
	}
}

func TestClientHasInvoicesError(t *testing.T) {
	var err error = &ClientHasInvoicesError{ClientID: 7, Count: 3}

	var target *ClientHasInvoicesError
	if !errors.As(err, &target) {
		t.Fatal("errors.As failed to match")
	}
	if target.Count != 3 {
		t.Errorf("Count = %d, want 3", target.Count)
	}

	want := "client 7 has 3 invoice(s) and cannot be deleted"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewClient_TrimsName(t *testing.T) {
	c := NewClient("  ACME Concrete  ")
	if c.Name != "ACME Concrete" {
		t.Errorf("Name = %q", c.Name)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

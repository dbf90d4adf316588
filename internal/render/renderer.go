// Package render turns a stored invoice into a customer-facing HTML
// document by substituting named placeholders into a template.
package render

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/andy/billfold/internal/lineitem"
	"github.com/shopspring/decimal"
)

// DueDays is the fixed payment term added to the invoice date
const DueDays = 30

// taxRate is the fixed 5% GST applied to the subtotal at render time;
// it is not stored on the invoice
var taxRate = decimal.RequireFromString("0.05")

// longDateLayout renders dates like "January 05, 2024"
const longDateLayout = "January 02, 2006"

//go:embed template.html
var defaultTemplate string

// DefaultTemplate returns the built-in invoice template
func DefaultTemplate() string {
	return defaultTemplate
}

// Document is a rendered invoice. Filename is derived from the invoice ID;
// writing the file is the caller's job.
type Document struct {
	HTML     string
	Filename string
}

// Renderer substitutes invoice data into a template. Placeholders use the
// literal form {{key}}; template text that matches no known key is left
// untouched.
type Renderer struct {
	template string
}

// New creates a renderer for the given template text
func New(template string) *Renderer {
	return &Renderer{template: template}
}

// Render builds the document for one invoice. Client and item text is
// substituted into the markup verbatim, without HTML escaping; the stored
// format has never escaped and existing records depend on passing through
// as-is.
func (r *Renderer) Render(invoice *domain.Invoice, client *domain.Client, preferences map[string]string) *Document {
	dueDate := invoice.Date.AddDate(0, 0, DueDays)
	tax := invoice.Subtotal.Mul(taxRate).Round(2)
	total := invoice.Subtotal.Add(tax)

	context := map[string]string{
		"invoice_number":  strconv.FormatInt(invoice.ID, 10),
		"invoice_date":    invoice.Date.Format(longDateLayout),
		"due_date":        dueDate.Format(longDateLayout),
		"client_name":     client.Name,
		"client_address":  client.BillingAddress,
		"client_contact":  client.ContactName,
		"client_phone":    client.PhoneNumber,
		"client_email":    client.Email,
		"company_name":    pref(preferences, "company_name", "Your Company Name"),
		"company_address": pref(preferences, "company_address", "Your Company Address"),
		"company_city":    pref(preferences, "company_city", ""),
		"company_state":   pref(preferences, "company_state", ""),
		"company_postal":  pref(preferences, "company_postal", ""),
		"gst_number":      pref(preferences, "gst_number", ""),
		"company_phone":   pref(preferences, "company_phone", ""),
		"company_email":   pref(preferences, "company_email", ""),
		"company_website": pref(preferences, "company_website", ""),
		"line_items":      renderRows(invoice.LineItems),
		"subtotal":        "$" + invoice.Subtotal.StringFixed(2),
		"tax":             "$" + tax.StringFixed(2),
		"total":           "$" + total.StringFixed(2),
	}

	html := r.template
	for key, value := range context {
		html = strings.ReplaceAll(html, "{{"+key+"}}", value)
	}

	return &Document{
		HTML:     html,
		Filename: fmt.Sprintf("invoice_%d.html", invoice.ID),
	}
}

// DueDate returns the payment deadline for an invoice dated on the given day
func DueDate(invoiceDate time.Time) time.Time {
	return invoiceDate.AddDate(0, 0, DueDays)
}

// renderRows decodes the stored blob and builds one table row per line.
// Lines the encoder marked with the zero-quantity sentinel stay in the
// stored blob but are suppressed from the customer-facing document.
func renderRows(blob string) string {
	var b strings.Builder

	for _, line := range lineitem.Decode(blob) {
		if line.Quantity == lineitem.ZeroQuantity {
			continue
		}

		fmt.Fprintf(&b, `
                <tr>
                    <td>%s</td>
                    <td>%s</td>
                    <td class="right">$%s</td>
                    <td class="right">$%s</td>
                </tr>
`,
			line.Quantity,
			line.Item,
			line.UnitPrice,
			line.LineTotal,
		)
	}

	return b.String()
}

// pref reads a preference value, falling back when the key is unset
func pref(preferences map[string]string, key, fallback string) string {
	if v, ok := preferences[key]; ok {
		return v
	}
	return fallback
}

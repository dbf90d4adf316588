package render

import (
	"testing"
	"time"

	"github.com/andy/billfold/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(t *testing.T) *domain.Invoice {
	t.Helper()
	return &domain.Invoice{
		ID:        12,
		ClientID:  7,
		LineItems: "Pump rental: 2 @ $230.0 = $460.00\n",
		Subtotal:  decimal.RequireFromString("460"),
		Date:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Status:    domain.InvoiceStatusUnpaid,
	}
}

func testClient() *domain.Client {
	return &domain.Client{
		ID:             7,
		Name:           "ACME Concrete",
		BillingAddress: "1 Plant Rd",
		ContactName:    "Pat",
		PhoneNumber:    "555-0100",
		Email:          "pat@acme.example",
	}
}

func TestRender_TaxAndTotal(t *testing.T) {
	r := New("{{subtotal}}|{{tax}}|{{total}}")

	doc := r.Render(testInvoice(t), testClient(), nil)

	require.Equal(t, "$460.00|$23.00|$483.00", doc.HTML)
}

func TestRender_Dates(t *testing.T) {
	r := New("{{invoice_date}} due {{due_date}}")

	doc := r.Render(testInvoice(t), testClient(), nil)

	// 30 days after January 5 is February 4
	require.Equal(t, "January 05, 2024 due February 04, 2024", doc.HTML)
}

func TestRender_Filename(t *testing.T) {
	r := New("")

	doc := r.Render(testInvoice(t), testClient(), nil)

	require.Equal(t, "invoice_12.html", doc.Filename)
}

func TestRender_SuppressesZeroQuantityLines(t *testing.T) {
	invoice := testInvoice(t)
	invoice.LineItems = "Pump rental: 2 @ $230.0 = $460.00\n" +
		"Slurry: 0.0 @ $40.0 = $0.00\n"

	r := New("{{line_items}}")
	doc := r.Render(invoice, testClient(), nil)

	assert.Contains(t, doc.HTML, "Pump rental")
	assert.Contains(t, doc.HTML, "$230.0")
	assert.NotContains(t, doc.HTML, "Slurry")
}

func TestRender_LineItemRowMarkup(t *testing.T) {
	r := New("{{line_items}}")

	doc := r.Render(testInvoice(t), testClient(), nil)

	assert.Contains(t, doc.HTML, "<td>2</td>")
	assert.Contains(t, doc.HTML, "<td>Pump rental</td>")
	assert.Contains(t, doc.HTML, `<td class="right">$230.0</td>`)
	assert.Contains(t, doc.HTML, `<td class="right">$460.00</td>`)
}

func TestRender_PreferenceFallbacks(t *testing.T) {
	r := New("{{company_name}}|{{company_address}}|{{gst_number}}")

	doc := r.Render(testInvoice(t), testClient(), map[string]string{})

	require.Equal(t, "Your Company Name|Your Company Address|", doc.HTML)
}

func TestRender_PreferencesSubstituted(t *testing.T) {
	r := New("{{company_name}} GST {{gst_number}}")

	doc := r.Render(testInvoice(t), testClient(), map[string]string{
		"company_name": "Billfold Pumping Ltd",
		"gst_number":   "123456789",
	})

	require.Equal(t, "Billfold Pumping Ltd GST 123456789", doc.HTML)
}

func TestRender_UnknownPlaceholderLeftAlone(t *testing.T) {
	r := New("{{client_name}} {{not_a_key}}")

	doc := r.Render(testInvoice(t), testClient(), nil)

	require.Equal(t, "ACME Concrete {{not_a_key}}", doc.HTML)
}

func TestRender_NoHTMLEscaping(t *testing.T) {
	client := testClient()
	client.Name = "Smith & Sons <Ltd>"

	r := New("{{client_name}}")
	doc := r.Render(testInvoice(t), client, nil)

	require.Equal(t, "Smith & Sons <Ltd>", doc.HTML)
}

func TestDefaultTemplate_CoversPlaceholders(t *testing.T) {
	tpl := DefaultTemplate()

	for _, key := range []string{
		"invoice_number", "invoice_date", "due_date",
		"client_name", "company_name",
		"line_items", "subtotal", "tax", "total",
	} {
		assert.Contains(t, tpl, "{{"+key+"}}", "template is missing {{%s}}", key)
	}

	// A fully rendered default template has no leftover placeholders
	r := New(tpl)
	doc := r.Render(testInvoice(t), testClient(), map[string]string{
		"company_city": "Vancouver", "company_state": "BC", "company_postal": "V5K",
		"company_phone": "555", "company_email": "a@b.c", "company_website": "b.c",
		"company_name": "X", "company_address": "Y", "gst_number": "Z",
	})
	assert.NotContains(t, doc.HTML, "{{")
}

func TestDueDate(t *testing.T) {
	issued := time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC)

	due := DueDate(issued)

	require.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), due)
}

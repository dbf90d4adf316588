package repository

import (
	"strings"
	"testing"

	"github.com/andy/billfold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery_NoFilter(t *testing.T) {
	query, args := buildListQuery(domain.InvoiceFilter{})

	assert.NotContains(t, query, "invoices.status = ?")
	assert.NotContains(t, query, "invoices.date")
	assert.Contains(t, query, "ORDER BY invoices.id")
	assert.Empty(t, args)
}

func TestBuildListQuery_StatusAll(t *testing.T) {
	query, args := buildListQuery(domain.InvoiceFilter{Status: "all"})

	assert.NotContains(t, query, "invoices.status = ?")
	assert.Empty(t, args)
}

func TestBuildListQuery_StatusOnly(t *testing.T) {
	query, args := buildListQuery(domain.InvoiceFilter{Status: "paid"})

	assert.Contains(t, query, "AND invoices.status = ?")
	assert.Equal(t, []interface{}{"paid"}, args)
}

func TestBuildListQuery_DateRange(t *testing.T) {
	query, args := buildListQuery(domain.InvoiceFilter{
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
	})

	assert.Contains(t, query, "AND invoices.date >= ?")
	assert.Contains(t, query, "AND invoices.date <= ?")
	assert.Equal(t, []interface{}{"2024-01-01", "2024-12-31"}, args)
}

func TestBuildListQuery_AllClausesAreConjunctive(t *testing.T) {
	query, args := buildListQuery(domain.InvoiceFilter{
		Status:   "unpaid",
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
	})

	// Status binds before the date bounds
	require.Equal(t, []interface{}{"unpaid", "2024-01-01", "2024-12-31"}, args)
	assert.Equal(t, 3, strings.Count(query, " AND "))
	assert.Contains(t, query, "WHERE 1=1")
}

func TestBuildListQuery_BoundsPassThroughUnvalidated(t *testing.T) {
	// Malformed bounds still bind; they compare lexicographically against
	// the stored date text and simply match nothing useful
	_, args := buildListQuery(domain.InvoiceFilter{DateFrom: "not-a-date"})

	require.Equal(t, []interface{}{"not-a-date"}, args)
}

func TestBuildListQuery_JoinsClientName(t *testing.T) {
	query, _ := buildListQuery(domain.InvoiceFilter{})

	assert.Contains(t, query, "JOIN clients ON invoices.client_id = clients.id")
	assert.Contains(t, query, "clients.name")
}

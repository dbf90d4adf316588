package lineitem

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEncode_MatchesStoredFormat(t *testing.T) {
	blob := Encode([]Entry{
		{Name: "Pump rental", Quantity: d("2"), UnitPrice: d("230.00")},
	})

	require.Equal(t, "Pump rental: 2 @ $230.0 = $460.00\n", blob)
}

func TestEncode_ZeroQuantityUsesSentinel(t *testing.T) {
	blob := Encode([]Entry{
		{Name: "Slurry", Quantity: d("0"), UnitPrice: d("40")},
	})

	require.Equal(t, "Slurry: 0.0 @ $40.0 = $0.00\n", blob)
}

func TestEncode_FractionalPriceKeptVerbatim(t *testing.T) {
	blob := Encode([]Entry{
		{Name: "Ferry fees incurred", Quantity: d("1"), UnitPrice: d("113.05")},
	})

	require.Equal(t, "Ferry fees incurred: 1 @ $113.05 = $113.05\n", blob)
}

func TestRoundTrip(t *testing.T) {
	entries := []Entry{
		{Name: "Pump rental", Quantity: d("2"), UnitPrice: d("230")},
		{Name: "Meters of pumped concrete", Quantity: d("12.5"), UnitPrice: d("5")},
		{Name: "Ferry fees incurred", Quantity: d("1.5"), UnitPrice: d("113.05")},
	}

	lines := Decode(Encode(entries))
	require.Len(t, lines, 3)

	assert.Equal(t, Line{Item: "Pump rental", Quantity: "2", UnitPrice: "230.0", LineTotal: "460.00"}, lines[0])
	assert.Equal(t, Line{Item: "Meters of pumped concrete", Quantity: "12.5", UnitPrice: "5.0", LineTotal: "62.50"}, lines[1])
	assert.Equal(t, Line{Item: "Ferry fees incurred", Quantity: "1.5", UnitPrice: "113.05", LineTotal: "169.58"}, lines[2])
}

func TestDecode_SkipsMalformedLines(t *testing.T) {
	blob := "no separator here\n" +
		"Missing the parts: just text\n" +
		"Slurry: 2 @ $40.0 = $80.00\n" +
		"\n" +
		"   \n"

	lines := Decode(blob)
	require.Len(t, lines, 1)
	assert.Equal(t, "Slurry", lines[0].Item)
}

func TestDecode_TrimsWhitespaceAndDollarSigns(t *testing.T) {
	lines := Decode("  Slurry :  2  @  $40.0  =  $80.00  \n")

	require.Len(t, lines, 1)
	assert.Equal(t, Line{Item: "Slurry", Quantity: "2", UnitPrice: "40.0", LineTotal: "80.00"}, lines[0])
}

func TestDecode_ReadsTotalWithoutRecomputing(t *testing.T) {
	// Historical blobs are the record; a stored total wins even when it no
	// longer matches quantity times price.
	lines := Decode("Slurry: 2 @ $40.0 = $99.99\n")

	require.Len(t, lines, 1)
	assert.Equal(t, "99.99", lines[0].LineTotal)
}

func TestDecode_ZeroQuantityLinesAreReturned(t *testing.T) {
	// Filtering zero-quantity lines is the renderer's job, not the codec's
	blob := Encode([]Entry{
		{Name: "Slurry", Quantity: d("0"), UnitPrice: d("40")},
	})

	lines := Decode(blob)
	require.Len(t, lines, 1)
	assert.Equal(t, ZeroQuantity, lines[0].Quantity)
}

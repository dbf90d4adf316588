// Package lineitem encodes invoice line items to and from the stored text
// format:
//
//	<item name>: <quantity> @ $<unit price> = $<line total>
//
// one line per catalog item, newline-terminated. The format performs no
// escaping: an item name containing ':' followed by '@' and '=' cannot be
// decoded. That is a constraint of the stored format, kept for
// compatibility with existing invoice records.
package lineitem

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ZeroQuantity is the quantity text the encoder emits for a zero quantity.
// The renderer suppresses lines whose decoded quantity equals it.
const ZeroQuantity = "0.0"

// Entry is one row fed to Encode, in catalog order.
type Entry struct {
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Line is one decoded row. All fields are text exactly as stored (trimmed,
// with the leading dollar sign removed from the money fields). LineTotal is
// read back from the blob, never recomputed, so historical wording survives
// price or rounding changes.
type Line struct {
	Item      string
	Quantity  string
	UnitPrice string
	LineTotal string
}

// Encode renders the entries into the stored blob. The line total is
// quantity x unit price rounded to 2 decimals. Zero quantities are
// normalized to ZeroQuantity; integral unit prices keep one trailing
// decimal place so blobs match records written by earlier versions.
func Encode(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		total := e.Quantity.Mul(e.UnitPrice).Round(2)
		fmt.Fprintf(&b, "%s: %s @ $%s = $%s\n",
			e.Name,
			formatQuantity(e.Quantity),
			formatPrice(e.UnitPrice),
			total.StringFixed(2),
		)
	}
	return b.String()
}

// Decode parses a stored blob back into lines. Blank lines are dropped.
// A line missing the ':' separator, or whose remainder lacks '@' or '=',
// is silently skipped rather than failing the whole blob; stored records
// have always been read this permissively.
func Decode(blob string) []Line {
	lines := make([]Line, 0)

	for _, raw := range strings.Split(blob, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		name, rest, ok := strings.Cut(raw, ":")
		if !ok {
			continue
		}
		if !strings.Contains(rest, "@") || !strings.Contains(rest, "=") {
			continue
		}

		quantity, remainder, _ := strings.Cut(rest, "@")
		price, total, _ := strings.Cut(remainder, "=")

		lines = append(lines, Line{
			Item:      strings.TrimSpace(name),
			Quantity:  strings.TrimSpace(quantity),
			UnitPrice: trimMoney(price),
			LineTotal: trimMoney(total),
		})
	}

	return lines
}

// formatQuantity emits the exact decimal form of the quantity, with zero
// normalized to the sentinel the renderer filters on
func formatQuantity(q decimal.Decimal) string {
	if q.IsZero() {
		return ZeroQuantity
	}
	return q.String()
}

// formatPrice keeps one decimal place on integral prices ("230" -> "230.0")
// to stay byte-compatible with blobs written by earlier versions
func formatPrice(p decimal.Decimal) string {
	if p.IsInteger() {
		return p.StringFixed(1)
	}
	return p.String()
}

func trimMoney(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "$")
}

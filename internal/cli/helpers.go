package cli

import (
	"fmt"
	"strconv"
	"strings"
)

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// parseID parses a numeric record ID argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID '%s': %w", arg, err)
	}
	return id, nil
}

// parseQuantities parses repeated --item flags of the form "itemID=quantity"
// into the quantity map the invoice service expects. The quantity text is
// passed through untouched; the service validates it.
func parseQuantities(specs []string) (map[int64]string, error) {
	quantities := make(map[int64]string, len(specs))

	for _, spec := range specs {
		idStr, qty, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid item spec '%s': expected itemID=quantity", spec)
		}

		id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item ID in '%s': %w", spec, err)
		}

		quantities[id] = qty
	}

	return quantities, nil
}

package importer

import (
	"strconv"
	"strings"
)

// Cell conversions fail closed: a value that does not convert reports
// ok=false and the caller decides whether that skips a row or a block.
// Nothing in this file returns an error.

// ParseAmount reads a whole-currency-unit amount. Thousands separators and
// a currency prefix are tolerated; fractional units are accepted only when
// the fraction is zero, since the ledger models whole units.
func ParseAmount(value string) (int64, bool) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "฿")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0, false
	}

	if dot := strings.IndexByte(cleaned, '.'); dot >= 0 {
		fraction := cleaned[dot+1:]
		if strings.Trim(fraction, "0") != "" {
			return 0, false
		}
		cleaned = cleaned[:dot]
		if cleaned == "" {
			return 0, false
		}
	}

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

// labelValue resolves "Label: value" metadata in a header block row. Both
// conventions seen in uploads are handled: label and value inside one cell
// ("ID: 021"), and a label cell followed by the value in the next
// non-empty cell ("ID:" | "021").
func labelValue(row []string, label string) (string, bool) {
	normalizedLabel := normalizeHeader(strings.TrimSuffix(label, ":"))
	for i, cell := range row {
		trimmed := strings.TrimSpace(cell)
		if trimmed == "" {
			continue
		}

		if colon := strings.IndexByte(trimmed, ':'); colon >= 0 {
			if normalizeHeader(trimmed[:colon]) == normalizedLabel {
				value := strings.TrimSpace(trimmed[colon+1:])
				if value != "" {
					return value, true
				}
				return nextNonEmpty(row, i+1)
			}
			continue
		}

		if normalizeHeader(trimmed) == normalizedLabel {
			return nextNonEmpty(row, i+1)
		}
	}
	return "", false
}

func nextNonEmpty(row []string, from int) (string, bool) {
	for _, cell := range row[from:] {
		trimmed := strings.TrimSpace(cell)
		if trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

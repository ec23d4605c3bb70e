package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Choice is one selectable entry parsed from an option's raw choices text.
// Choices are derived data; only the raw text is persisted.
type Choice struct {
	Value string
	Label string
	Price decimal.Decimal
}

// ParseChoices parses the line-oriented choice format used by select and radio
// options. Each non-blank line is either "value" or "value|label:price". A
// missing label falls back to the value and a missing or unparseable price is
// zero. Line order is preserved and duplicate values are kept as-is; lookups
// resolve to the first match.
func ParseChoices(raw string) []Choice {
	var choices []Choice
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		value := strings.TrimSpace(parts[0])
		if value == "" {
			continue
		}

		c := Choice{Value: value, Label: value, Price: decimal.Zero}
		if len(parts) == 2 {
			c.Label, c.Price = parseLabelPrice(parts[1], value)
		}
		choices = append(choices, c)
	}
	return choices
}

// parseLabelPrice splits "label:price". Everything after the first ':' is
// treated as the price segment; a segment that does not parse as a number
// prices at zero.
func parseLabelPrice(part, fallbackLabel string) (string, decimal.Decimal) {
	label := part
	price := decimal.Zero

	if idx := strings.Index(part, ":"); idx >= 0 {
		label = part[:idx]
		if p, err := decimal.NewFromString(strings.TrimSpace(part[idx+1:])); err == nil {
			price = p
		}
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = fallbackLabel
	}
	return label, price
}

// FindChoice returns the first choice whose value matches.
func FindChoice(choices []Choice, value string) (Choice, bool) {
	for _, c := range choices {
		if c.Value == value {
			return c, true
		}
	}
	return Choice{}, false
}

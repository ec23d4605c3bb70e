package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeImpact returns the monetary delta one submitted option value adds to
// a booking subtotal. It is a pure function of the option and the value.
//
// An empty submission never prices, even on a required option; requiredness is
// a validation concern. Results are clamped at zero so a misconfigured
// negative impact cannot reduce a subtotal.
//
// For number and quantity options the "percentage" price type intentionally
// behaves like "fixed": the flat impact is returned and no percentage is
// applied against any base. The legacy system shipped with this rule and
// bookings priced under it must keep reproducing it.
func ComputeImpact(opt *Option, submitted string) decimal.Decimal {
	value := strings.TrimSpace(submitted)
	if value == "" {
		return decimal.Zero
	}

	var impact decimal.Decimal
	switch cfg := opt.Config().(type) {
	case ToggleConfig:
		if isChecked(value) {
			impact = opt.PriceImpact
		}
	case ChoiceConfig:
		impact = choiceImpact(opt, cfg, value)
	case NumericConfig:
		impact = numericImpact(opt, value)
	case TextConfig:
		impact = opt.PriceImpact
	default:
		impact = opt.PriceImpact
	}

	if impact.IsNegative() {
		return decimal.Zero
	}
	return impact
}

func choiceImpact(opt *Option, cfg ChoiceConfig, value string) decimal.Decimal {
	choice, ok := FindChoice(cfg.Choices, value)

	if opt.PriceType == PriceChoice {
		if !ok {
			return decimal.Zero
		}
		return choice.Price
	}

	// Per-choice price wins when present, otherwise the option-level impact
	// is the baseline.
	if ok && choice.Price.IsPositive() {
		return choice.Price
	}
	return opt.PriceImpact
}

func numericImpact(opt *Option, value string) decimal.Decimal {
	switch opt.PriceType {
	case PriceMultiply:
		n, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero
		}
		return opt.PriceImpact.Mul(n)
	default:
		// fixed, percentage and unset all price flat.
		return opt.PriceImpact
	}
}

func isChecked(value string) bool {
	return value == "1" || strings.EqualFold(value, "true")
}

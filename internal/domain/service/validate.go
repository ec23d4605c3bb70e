package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldError attributes one validation failure to the option that rejected
// the submitted value.
type FieldError struct {
	OptionID uuid.UUID
	Field    string
	Message  string
}

func (e FieldError) Error() string {
	return e.Field + " " + e.Message
}

// ValidateValue checks a submitted value against the option's constraints and
// returns every violation. An empty slice means the value is acceptable.
//
// A required option rejects an empty submission and nothing else is checked.
// An optional empty submission is always acceptable. The literal "0" is a real
// value, not an empty one.
func ValidateValue(opt *Option, submitted string) []FieldError {
	value := strings.TrimSpace(submitted)
	if value == "" {
		if opt.Required {
			return []FieldError{{OptionID: opt.ID, Field: opt.Name, Message: "is required"}}
		}
		return nil
	}

	var errs []FieldError
	fail := func(msg string) {
		errs = append(errs, FieldError{OptionID: opt.ID, Field: opt.Name, Message: msg})
	}

	switch cfg := opt.Config().(type) {
	case NumericConfig:
		n, err := decimal.NewFromString(value)
		if err != nil {
			fail("must be a number")
			break
		}
		if cfg.Min != nil && n.LessThan(*cfg.Min) {
			fail(fmt.Sprintf("must be at least %s", cfg.Min.String()))
		}
		if cfg.Max != nil && n.GreaterThan(*cfg.Max) {
			fail(fmt.Sprintf("must be at most %s", cfg.Max.String()))
		}
	case TextConfig:
		length := utf8.RuneCountInString(value)
		if cfg.MinLength != nil && length < *cfg.MinLength {
			fail(fmt.Sprintf("must be at least %d characters", *cfg.MinLength))
		}
		if cfg.MaxLength != nil && length > *cfg.MaxLength {
			fail(fmt.Sprintf("must be at most %d characters", *cfg.MaxLength))
		}
	case ChoiceConfig:
		if _, ok := FindChoice(cfg.Choices, value); !ok {
			fail("is not a valid choice")
		}
	}

	return errs
}

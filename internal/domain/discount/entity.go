package discount

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode     = errors.New("discount code cannot be empty")
	ErrInvalidType   = errors.New("discount type must be percentage or fixed")
	ErrInvalidAmount = errors.New("discount amount cannot be negative")
	ErrExpired       = errors.New("discount has expired")
	ErrExhausted     = errors.New("discount usage limit reached")
	ErrInactive      = errors.New("discount is not active")
)

type Type string

const (
	TypePercentage Type = "percentage"
	TypeFixed      Type = "fixed"
)

func (t Type) IsValid() bool {
	return t == TypePercentage || t == TypeFixed
}

// Discount is an owner-scoped code redeemed at booking time. Usage count
// increments exactly once per successful redemption; validity is time- and
// count-gated independently of the active flag.
type Discount struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Code       string
	Type       Type
	Amount     decimal.Decimal
	ExpiryDate *time.Time
	UsageLimit *int32
	UsageCount int32
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func New(ownerID uuid.UUID, code string, typ Type, amount decimal.Decimal, expiry *time.Time, usageLimit *int32) (*Discount, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil, ErrEmptyCode
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	if amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	return &Discount{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Code:       code,
		Type:       typ,
		Amount:     amount,
		ExpiryDate: expiry,
		UsageLimit: usageLimit,
		Active:     true,
	}, nil
}

// ValidateAt reports why the discount cannot be redeemed at t, or nil when it
// can. Expiry and exhaustion dominate the active flag: an exhausted code is
// invalid no matter what the flag says.
func (d *Discount) ValidateAt(t time.Time) error {
	if d.ExpiryDate != nil && t.After(*d.ExpiryDate) {
		return ErrExpired
	}
	if d.UsageLimit != nil && d.UsageCount >= *d.UsageLimit {
		return ErrExhausted
	}
	if !d.Active {
		return ErrInactive
	}
	return nil
}

// ComputeAmount returns the discount against a subtotal, rounded to cents.
// Percentage applies amount/100 to the subtotal; fixed clamps at the subtotal
// so a booking never discounts below zero.
func (d *Discount) ComputeAmount(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	switch d.Type {
	case TypePercentage:
		return subtotal.Mul(d.Amount).Div(decimal.NewFromInt(100)).Round(2)
	case TypeFixed:
		if d.Amount.GreaterThan(subtotal) {
			return subtotal.Round(2)
		}
		return d.Amount.Round(2)
	default:
		return decimal.Zero
	}
}

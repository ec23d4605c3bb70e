package booking

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoServices          = errors.New("booking must contain at least one service")
	ErrDuplicateService    = errors.New("a service cannot appear twice in one booking")
	ErrInvalidQuantity     = errors.New("service quantity must be positive")
	ErrNegativeUnitPrice   = errors.New("unit price cannot be negative")
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrInvalidEmail        = errors.New("customer email is invalid")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// Customer is the contact snapshot captured with a booking.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	ZipCode string
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrMissingCustomerName
	}
	email := strings.TrimSpace(c.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// ServiceLine snapshots one booked service. UnitPrice is the service price at
// booking time and stays accurate after the owner edits or deletes the
// service.
type ServiceLine struct {
	ServiceID  uuid.UUID
	Quantity   int32
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

func NewServiceLine(serviceID uuid.UUID, quantity int32, unitPrice decimal.Decimal) (ServiceLine, error) {
	if quantity <= 0 {
		return ServiceLine{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return ServiceLine{}, ErrNegativeUnitPrice
	}
	return ServiceLine{
		ServiceID:  serviceID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt32(quantity)).Round(2),
	}, nil
}

// OptionLine snapshots one submitted option value and the impact it priced at.
// The value is stored as text regardless of the option's underlying type.
type OptionLine struct {
	ServiceOptionID uuid.UUID
	Value           string
	PriceImpact     decimal.Decimal
}

// Booking is the aggregate root for one customer transaction. It owns its
// service and option lines; the whole aggregate is written in one transaction
// or not at all.
type Booking struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	customer       Customer
	serviceDate    time.Time
	subtotal       decimal.Decimal
	discountCode   *string
	discountAmount decimal.Decimal
	totalPrice     decimal.Decimal
	status         Status
	notes          string
	serviceLines   []ServiceLine
	optionLines    []OptionLine
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking assembles and prices the aggregate. Subtotal is the sum of all
// service line totals plus all option impacts; discountAmount is clamped to
// the subtotal so the total can never go negative. The booking starts pending.
func NewBooking(
	ownerID uuid.UUID,
	customer Customer,
	serviceDate time.Time,
	serviceLines []ServiceLine,
	optionLines []OptionLine,
	discountCode *string,
	discountAmount decimal.Decimal,
	notes string,
) (*Booking, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(serviceLines) == 0 {
		return nil, ErrNoServices
	}

	seen := make(map[uuid.UUID]struct{}, len(serviceLines))
	subtotal := decimal.Zero
	for _, line := range serviceLines {
		if _, dup := seen[line.ServiceID]; dup {
			return nil, ErrDuplicateService
		}
		seen[line.ServiceID] = struct{}{}
		subtotal = subtotal.Add(line.TotalPrice)
	}
	for _, line := range optionLines {
		subtotal = subtotal.Add(line.PriceImpact)
	}
	subtotal = subtotal.Round(2)

	if discountAmount.IsNegative() {
		discountAmount = decimal.Zero
	}
	if discountAmount.GreaterThan(subtotal) {
		discountAmount = subtotal
	}
	discountAmount = discountAmount.Round(2)

	return &Booking{
		id:             uuid.New(),
		ownerID:        ownerID,
		customer:       customer,
		serviceDate:    serviceDate,
		subtotal:       subtotal,
		discountCode:   discountCode,
		discountAmount: discountAmount,
		totalPrice:     subtotal.Sub(discountAmount).Round(2),
		status:         StatusPending,
		notes:          strings.TrimSpace(notes),
		serviceLines:   serviceLines,
		optionLines:    optionLines,
	}, nil
}

// Reconstruct rebuilds a persisted booking without re-running creation rules.
func Reconstruct(
	id, ownerID uuid.UUID,
	customer Customer,
	serviceDate time.Time,
	subtotal decimal.Decimal,
	discountCode *string,
	discountAmount, totalPrice decimal.Decimal,
	status Status,
	notes string,
	serviceLines []ServiceLine,
	optionLines []OptionLine,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		ownerID:        ownerID,
		customer:       customer,
		serviceDate:    serviceDate,
		subtotal:       subtotal,
		discountCode:   discountCode,
		discountAmount: discountAmount,
		totalPrice:     totalPrice,
		status:         status,
		notes:          notes,
		serviceLines:   serviceLines,
		optionLines:    optionLines,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Transition moves the booking through the status state machine. Money fields
// are never touched.
func (b *Booking) Transition(target Status) error {
	if !b.status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	b.status = target
	return nil
}

func (b *Booking) ID() uuid.UUID                   { return b.id }
func (b *Booking) OwnerID() uuid.UUID              { return b.ownerID }
func (b *Booking) Customer() Customer              { return b.customer }
func (b *Booking) ServiceDate() time.Time          { return b.serviceDate }
func (b *Booking) Subtotal() decimal.Decimal       { return b.subtotal }
func (b *Booking) DiscountCode() *string           { return b.discountCode }
func (b *Booking) DiscountAmount() decimal.Decimal { return b.discountAmount }
func (b *Booking) TotalPrice() decimal.Decimal     { return b.totalPrice }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) Notes() string                   { return b.notes }
func (b *Booking) ServiceLines() []ServiceLine     { return b.serviceLines }
func (b *Booking) OptionLines() []OptionLine       { return b.optionLines }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time            { return b.updatedAt }

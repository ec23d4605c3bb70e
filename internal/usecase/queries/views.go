package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read-side views returned to handlers. Views are flat snapshots of the
// normalized tables; they never feed back into pricing.

type ChoiceView struct {
	Value string
	Label string
	Price decimal.Decimal
}

type OptionView struct {
	ID           uuid.UUID
	ServiceID    uuid.UUID
	Name         string
	Description  string
	Type         string
	Required     bool
	DefaultValue string
	Placeholder  string
	MinValue     *decimal.Decimal
	MaxValue     *decimal.Decimal
	PriceImpact  decimal.Decimal
	PriceType    string
	Choices      []ChoiceView
	Unit         string
	MinLength    *int
	MaxLength    *int
	Rows         *int
	DisplayOrder int
}

type ServiceView struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	DurationMin int
	Icon        string
	ImageURL    string
	Category    string
	Status      string
	Options     []OptionView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BookingServiceView struct {
	ServiceID   uuid.UUID
	ServiceName *string
	Quantity    int32
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

type BookingOptionView struct {
	ServiceOptionID uuid.UUID
	OptionName      *string
	Value           string
	PriceImpact     decimal.Decimal
}

type BookingView struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	ZipCode         string
	ServiceDate     time.Time
	Subtotal        decimal.Decimal
	DiscountCode    *string
	DiscountAmount  decimal.Decimal
	TotalPrice      decimal.Decimal
	Status          string
	Notes           string
	Services        []BookingServiceView
	Options         []BookingOptionView
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AreaView struct {
	ID      uuid.UUID
	ZipCode string
	Label   string
	Active  bool
}

type DiscountView struct {
	ID         uuid.UUID
	Code       string
	Type       string
	Amount     decimal.Decimal
	UsageLimit *int32
	UsageCount int32
	ExpiresAt  *time.Time
	Active     bool
	CreatedAt  time.Time
}

type DiscountPreview struct {
	Code           string
	Valid          bool
	Reason         string
	DiscountAmount decimal.Decimal
}

type StatusCount struct {
	Status string
	Count  int64
}

type TopService struct {
	ServiceID uuid.UUID
	Name      string
	Bookings  int64
	Revenue   decimal.Decimal
}

type TrendPoint struct {
	Month    time.Time
	Bookings int64
	Revenue  decimal.Decimal
}

type DashboardView struct {
	TotalBookings   int64
	PendingBookings int64
	TotalRevenue    decimal.Decimal
	ByStatus        []StatusCount
	TopServices     []TopService
	MonthlyTrend    []TrendPoint
	Recent          []BookingView
}

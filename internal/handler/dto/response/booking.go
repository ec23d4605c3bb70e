package response

import (
	"time"

	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BookingServiceResponse struct {
	ServiceID   uuid.UUID       `json:"serviceId"`
	ServiceName *string         `json:"serviceName"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type BookingOptionResponse struct {
	ServiceOptionID uuid.UUID       `json:"serviceOptionId"`
	OptionName      *string         `json:"optionName"`
	Value           string          `json:"value"`
	PriceImpact     decimal.Decimal `json:"priceImpact"`
}

type BookingResponse struct {
	ID              uuid.UUID                `json:"id"`
	CustomerName    string                   `json:"customerName"`
	CustomerEmail   string                   `json:"customerEmail"`
	CustomerPhone   string                   `json:"customerPhone,omitempty"`
	CustomerAddress string                   `json:"customerAddress,omitempty"`
	ZipCode         string                   `json:"zipCode"`
	ServiceDate     time.Time                `json:"serviceDate"`
	Subtotal        decimal.Decimal          `json:"subtotal"`
	DiscountCode    *string                  `json:"discountCode,omitempty"`
	DiscountAmount  decimal.Decimal          `json:"discountAmount"`
	TotalPrice      decimal.Decimal          `json:"totalPrice"`
	Status          string                   `json:"status"`
	Notes           string                   `json:"notes,omitempty"`
	Services        []BookingServiceResponse `json:"services"`
	Options         []BookingOptionResponse  `json:"options"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// FromBookingView maps field-for-field; the view and response shapes are
// kept name-compatible so the copy stays mechanical.
func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var resp BookingResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookingViews(views []queries.BookingView) ([]*BookingResponse, error) {
	out := make([]*BookingResponse, len(views))
	for i := range views {
		resp, err := FromBookingView(&views[i])
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingServiceRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int32     `json:"quantity"`
}

type BookingOptionRequest struct {
	OptionID uuid.UUID `json:"option_id" binding:"required"`
	Value    string    `json:"value"`
}

type CreateBookingRequest struct {
	CustomerName    string                  `json:"customer_name" binding:"required"`
	CustomerEmail   string                  `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                  `json:"customer_phone"`
	CustomerAddress string                  `json:"customer_address"`
	ZipCode         string                  `json:"zip_code" binding:"required"`
	ServiceDate     time.Time               `json:"service_date" binding:"required"`
	Services        []BookingServiceRequest `json:"services" binding:"required,min=1,dive"`
	Options         []BookingOptionRequest  `json:"options" binding:"dive"`
	DiscountCode    *string                 `json:"discount_code,omitempty"`
	Notes           string                  `json:"notes"`
}

func (r CreateBookingRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(strings.ToUpper(*r.DiscountCode))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

package repository

import (
	"context"

	"servicebook/internal/domain/booking"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create writes the whole aggregate: one bookings row, one booking_services
// row per selected service and one booking_service_options row per submitted
// option value. The caller supplies the transaction; a failed insert anywhere
// rolls back everything.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	const insertBooking = `
INSERT INTO bookings (
    id, user_id, customer_name, customer_email, customer_phone, customer_address,
    zip_code, service_date, subtotal, discount_code, discount_amount, total_price, status, notes
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`
	cust := b.Customer()
	_, err := tx.Exec(ctx, insertBooking,
		b.ID(), b.OwnerID(), cust.Name, cust.Email, cust.Phone, cust.Address,
		cust.ZipCode, b.ServiceDate(), b.Subtotal().StringFixed(2), b.DiscountCode(),
		b.DiscountAmount().StringFixed(2), b.TotalPrice().StringFixed(2), b.Status().String(), b.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	const insertService = `
INSERT INTO booking_services (id, booking_id, service_id, quantity, unit_price, total_price)
VALUES ($1, $2, $3, $4, $5, $6)
`
	for _, line := range b.ServiceLines() {
		_, err := tx.Exec(ctx, insertService,
			uuid.New(), b.ID(), line.ServiceID, line.Quantity,
			line.UnitPrice.StringFixed(2), line.TotalPrice.StringFixed(2),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create booking service line", err)
		}
	}

	const insertOption = `
INSERT INTO booking_service_options (id, booking_id, service_option_id, option_value, price_impact)
VALUES ($1, $2, $3, $4, $5)
`
	for _, line := range b.OptionLines() {
		_, err := tx.Exec(ctx, insertOption,
			uuid.New(), b.ID(), line.ServiceOptionID, line.Value, line.PriceImpact.StringFixed(2),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to create booking option line", err)
		}
	}

	return nil
}

// UpdateStatus persists a status transition. Money columns are never written.
func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID, ownerID uuid.UUID, status booking.Status) error {
	const q = `UPDATE bookings SET status = $3, updated_at = now() WHERE id = $1 AND user_id = $2`
	tag, err := dbtx.Exec(ctx, q, bookingID, ownerID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// StatusForOwner reads the current status, scoped to the acting owner.
func (r *BookingRepository) StatusForOwner(ctx context.Context, dbtx db.DBTX, bookingID, ownerID uuid.UUID) (booking.Status, error) {
	const q = `SELECT status FROM bookings WHERE id = $1 AND user_id = $2`
	var status string
	if err := dbtx.QueryRow(ctx, q, bookingID, ownerID).Scan(&status); err != nil {
		return "", infra.WrapRepoErr("failed to find booking", err)
	}
	return booking.Status(status), nil
}

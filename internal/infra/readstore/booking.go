package readstore

import (
	"context"
	"strconv"

	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BookingReadStore hydrates booking views: the header row plus its service
// and option lines, with names joined in so deleted catalog entries surface
// as null instead of breaking history.
type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(database db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: database}
}

const bookingViewColumns = `
id, user_id, customer_name, customer_email, customer_phone, customer_address, zip_code,
service_date, subtotal::text, discount_code, discount_amount::text, total_price::text,
status, notes, created_at, updated_at`

func (s *BookingReadStore) FindByID(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	q := `SELECT ` + bookingViewColumns + ` FROM bookings WHERE id = $1`
	return s.findOne(ctx, q, bookingID)
}

func (s *BookingReadStore) FindByIDForOwner(ctx context.Context, bookingID, ownerID uuid.UUID) (*queries.BookingView, error) {
	q := `SELECT ` + bookingViewColumns + ` FROM bookings WHERE id = $1 AND user_id = $2`
	return s.findOne(ctx, q, bookingID, ownerID)
}

func (s *BookingReadStore) findOne(ctx context.Context, q string, args ...any) (*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows)
	}
	if err := s.attachLines(ctx, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter queries.BookingFilter) ([]queries.BookingView, error) {
	q := `SELECT ` + bookingViewColumns + ` FROM bookings WHERE user_id = $1`
	args := []any{ownerID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		q += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		q += ` AND service_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		q += ` AND service_date <= $` + strconv.Itoa(len(args))
	}
	q += ` ORDER BY created_at DESC, id`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		q += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views, err := scanBookingViews(rows)
	if err != nil {
		return nil, err
	}
	if err := s.attachLines(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *BookingReadStore) attachLines(ctx context.Context, views []queries.BookingView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	index := make(map[uuid.UUID]int, len(views))
	for i := range views {
		ids[i] = views[i].ID
		index[views[i].ID] = i
	}

	if err := s.attachServiceLines(ctx, ids, index, views); err != nil {
		return err
	}
	return s.attachOptionLines(ctx, ids, index, views)
}

func (s *BookingReadStore) attachServiceLines(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, views []queries.BookingView) error {
	const q = `
SELECT bs.booking_id, bs.service_id, s.name, bs.quantity, bs.unit_price::text, bs.total_price::text
FROM booking_services bs
LEFT JOIN services s ON s.id = bs.service_id
WHERE bs.booking_id = ANY($1)
ORDER BY bs.booking_id, bs.id`
	rows, err := s.db.Query(ctx, q, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list booking service lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID            uuid.UUID
			line                 queries.BookingServiceView
			unitPrice, linePrice string
		)
		if err := rows.Scan(&bookingID, &line.ServiceID, &line.ServiceName,
			&line.Quantity, &unitPrice, &linePrice); err != nil {
			return infra.WrapRepoErr("failed to scan booking service line", err)
		}
		if line.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return infra.WrapRepoErr("invalid booking line unit price", err)
		}
		if line.TotalPrice, err = decimal.NewFromString(linePrice); err != nil {
			return infra.WrapRepoErr("invalid booking line total price", err)
		}
		i := index[bookingID]
		views[i].Services = append(views[i].Services, line)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read booking service lines", err)
	}
	return nil
}

func (s *BookingReadStore) attachOptionLines(ctx context.Context, ids []uuid.UUID, index map[uuid.UUID]int, views []queries.BookingView) error {
	const q = `
SELECT bso.booking_id, bso.service_option_id, so.name, bso.option_value, bso.price_impact::text
FROM booking_service_options bso
LEFT JOIN service_options so ON so.id = bso.service_option_id
WHERE bso.booking_id = ANY($1)
ORDER BY bso.booking_id, bso.id`
	rows, err := s.db.Query(ctx, q, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list booking option lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookingID uuid.UUID
			line      queries.BookingOptionView
			impact    string
		)
		if err := rows.Scan(&bookingID, &line.ServiceOptionID, &line.OptionName,
			&line.Value, &impact); err != nil {
			return infra.WrapRepoErr("failed to scan booking option line", err)
		}
		if line.PriceImpact, err = decimal.NewFromString(impact); err != nil {
			return infra.WrapRepoErr("invalid booking line price impact", err)
		}
		i := index[bookingID]
		views[i].Options = append(views[i].Options, line)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read booking option lines", err)
	}
	return nil
}

func scanBookingViews(rows pgx.Rows) ([]queries.BookingView, error) {
	defer rows.Close()

	var out []queries.BookingView
	for rows.Next() {
		var (
			v                         queries.BookingView
			subtotal, discount, total string
		)
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.CustomerName, &v.CustomerEmail, &v.CustomerPhone,
			&v.CustomerAddress, &v.ZipCode, &v.ServiceDate, &subtotal, &v.DiscountCode,
			&discount, &total, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}

		var err error
		if v.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
			return nil, infra.WrapRepoErr("invalid booking subtotal", err)
		}
		if v.DiscountAmount, err = decimal.NewFromString(discount); err != nil {
			return nil, infra.WrapRepoErr("invalid booking discount amount", err)
		}
		if v.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return nil, infra.WrapRepoErr("invalid booking total price", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return out, nil
}

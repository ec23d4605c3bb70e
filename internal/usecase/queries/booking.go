package queries

import (
	"context"
	"time"

	"servicebook/internal/infra"
	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingFilter narrows a booking listing. Zero values mean "no filter".
type BookingFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Limit  int
}

type BookingReadStore interface {
	FindByID(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
	FindByIDForOwner(ctx context.Context, bookingID, ownerID uuid.UUID) (*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter BookingFilter) ([]BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, bookingID, ownerID uuid.UUID) (*BookingView, error)
	// GetBookingSystem bypasses owner scoping; used for idempotent replays
	// where the result is returned to the original caller.
	GetBookingSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, ownerID uuid.UUID, filter BookingFilter) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, bookingID, ownerID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByIDForOwner(ctx, bookingID, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetBookingSystem(ctx context.Context, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, ownerID uuid.UUID, filter BookingFilter) ([]BookingView, error) {
	views, err := q.store.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

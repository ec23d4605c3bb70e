package commands

import (
	"context"
	"time"

	"servicebook/internal/domain/area"
	"servicebook/internal/domain/booking"
	"servicebook/internal/domain/discount"
	"servicebook/internal/domain/service"
	"servicebook/internal/infra/db"
	"servicebook/internal/infra/repository"

	"github.com/google/uuid"
)

// Write-side ports. The concrete pgx repositories satisfy these; commands
// depend on the interfaces so transactions are testable with fakes.

type ServiceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, svc *service.Service) error
	Update(ctx context.Context, dbtx db.DBTX, svc *service.Service) error
	Delete(ctx context.Context, dbtx db.DBTX, serviceID, ownerID uuid.UUID) error
	FindByIDForOwner(ctx context.Context, dbtx db.DBTX, serviceID, ownerID uuid.UUID) (*service.Service, error)
}

type OptionRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, opt *service.Option) error
	Update(ctx context.Context, dbtx db.DBTX, opt *service.Option) error
	Delete(ctx context.Context, dbtx db.DBTX, optionID, serviceID uuid.UUID) error
	DeleteByService(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID) error
	FindByID(ctx context.Context, dbtx db.DBTX, optionID uuid.UUID) (*service.Option, error)
	ListByService(ctx context.Context, dbtx db.DBTX, serviceID uuid.UUID) ([]service.Option, error)
	ListByServices(ctx context.Context, dbtx db.DBTX, serviceIDs []uuid.UUID) (map[uuid.UUID][]service.Option, error)
	UpdateDisplayOrder(ctx context.Context, dbtx db.DBTX, optionID, serviceID uuid.UUID, order int) error
}

type AreaRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, a *area.Area) error
	Update(ctx context.Context, dbtx db.DBTX, a *area.Area) error
	Delete(ctx context.Context, dbtx db.DBTX, areaID, ownerID uuid.UUID) error
	FindCovered(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, zip string) (*area.Area, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, d *discount.Discount) error
	Update(ctx context.Context, dbtx db.DBTX, d *discount.Discount) error
	Delete(ctx context.Context, dbtx db.DBTX, discountID, ownerID uuid.UUID) error
	FindByCode(ctx context.Context, dbtx db.DBTX, ownerID uuid.UUID, code string) (*discount.Discount, error)
	IncrementUsage(ctx context.Context, dbtx db.DBTX, discountID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID, ownerID uuid.UUID, status booking.Status) error
	StatusForOwner(ctx context.Context, dbtx db.DBTX, bookingID, ownerID uuid.UUID) (booking.Status, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, dbtx db.DBTX, key, ownerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, dbtx db.DBTX, key, ownerID uuid.UUID) (*repository.IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, dbtx db.DBTX, key, ownerID, resultBookingID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

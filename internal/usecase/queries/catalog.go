package queries

import (
	"context"

	"servicebook/internal/infra"
	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// CatalogReadStore is the read side of services and their options.
type CatalogReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]ServiceView, error)
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]ServiceView, error)
	FindByID(ctx context.Context, serviceID, ownerID uuid.UUID) (*ServiceView, error)
}

// CatalogQueries serves both the owner dashboard (all services) and the
// public booking form (active services only).
type CatalogQueries interface {
	ListServices(ctx context.Context, ownerID uuid.UUID) ([]ServiceView, error)
	ListBookableServices(ctx context.Context, ownerID uuid.UUID) ([]ServiceView, error)
	GetService(ctx context.Context, serviceID, ownerID uuid.UUID) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, ownerID uuid.UUID) ([]ServiceView, error) {
	views, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListBookableServices(ctx context.Context, ownerID uuid.UUID) ([]ServiceView, error) {
	views, err := q.store.ListActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, serviceID, ownerID uuid.UUID) (*ServiceView, error) {
	view, err := q.store.FindByID(ctx, serviceID, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

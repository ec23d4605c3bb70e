package queries

import (
	"context"

	"servicebook/internal/domain/area"
	"servicebook/internal/infra"
	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AreaReadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]AreaView, error)
	FindCovered(ctx context.Context, ownerID uuid.UUID, zip string) (*AreaView, error)
	OwnersCovering(ctx context.Context, zip string) ([]uuid.UUID, error)
}

type AreaQueries interface {
	ListAreas(ctx context.Context, ownerID uuid.UUID) ([]AreaView, error)
	// CheckCoverage gates the public booking form: it answers whether the
	// owner actively services the submitted ZIP.
	CheckCoverage(ctx context.Context, ownerID uuid.UUID, zip string) (*AreaView, error)
	// FindOwnersCovering answers discovery across tenants.
	FindOwnersCovering(ctx context.Context, zip string) ([]uuid.UUID, error)
}

type areaQueriesImpl struct {
	store AreaReadStore
}

func NewAreaQueries(store AreaReadStore) AreaQueries {
	return &areaQueriesImpl{store: store}
}

func (q *areaQueriesImpl) ListAreas(ctx context.Context, ownerID uuid.UUID) ([]AreaView, error) {
	views, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return views, nil
}

func (q *areaQueriesImpl) CheckCoverage(ctx context.Context, ownerID uuid.UUID, zip string) (*AreaView, error) {
	if !area.ValidZip(zip) {
		return nil, ErrInvalidZip
	}
	view, err := q.store.FindCovered(ctx, ownerID, zip)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrZipNotCovered
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *areaQueriesImpl) FindOwnersCovering(ctx context.Context, zip string) ([]uuid.UUID, error) {
	if !area.ValidZip(zip) {
		return nil, ErrInvalidZip
	}
	owners, err := q.store.OwnersCovering(ctx, zip)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return owners, nil
}

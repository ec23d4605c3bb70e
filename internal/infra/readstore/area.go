package readstore

import (
	"context"

	"servicebook/internal/infra/db"
	"servicebook/internal/infra/repository"
	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AreaReadStore struct {
	db    db.DBTX
	areas *repository.AreaRepository
}

func NewAreaReadStore(database db.DBTX, areas *repository.AreaRepository) *AreaReadStore {
	return &AreaReadStore{db: database, areas: areas}
}

func (s *AreaReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.AreaView, error) {
	areas, err := s.areas.ListByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	views := make([]queries.AreaView, len(areas))
	for i, a := range areas {
		views[i] = queries.AreaView{ID: a.ID, ZipCode: a.ZipCode, Label: a.Label, Active: a.Active}
	}
	return views, nil
}

func (s *AreaReadStore) FindCovered(ctx context.Context, ownerID uuid.UUID, zip string) (*queries.AreaView, error) {
	a, err := s.areas.FindCovered(ctx, s.db, ownerID, zip)
	if err != nil {
		return nil, err
	}
	return &queries.AreaView{ID: a.ID, ZipCode: a.ZipCode, Label: a.Label, Active: a.Active}, nil
}

func (s *AreaReadStore) OwnersCovering(ctx context.Context, zip string) ([]uuid.UUID, error) {
	return s.areas.OwnersCovering(ctx, s.db, zip)
}

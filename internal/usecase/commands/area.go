package commands

import (
	"context"

	reqdto "servicebook/internal/handler/dto/request"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AreaCommands interface {
	CreateArea(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateAreaRequest) (uuid.UUID, error)
	UpdateArea(ctx context.Context, areaID, ownerID uuid.UUID, req reqdto.UpdateAreaRequest) error
	DeleteArea(ctx context.Context, areaID, ownerID uuid.UUID) error
}

type areaUseCaseImpl struct {
	areaRepo AreaRepository
	db       db.DBTX
}

func NewAreaUseCase(areaRepo AreaRepository, database db.DBTX) AreaCommands {
	return &areaUseCaseImpl{areaRepo: areaRepo, db: database}
}

func (a *areaUseCaseImpl) CreateArea(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateAreaRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain(ownerID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := a.areaRepo.Create(ctx, a.db, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateZip
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID, nil
}

func (a *areaUseCaseImpl) UpdateArea(ctx context.Context, areaID, ownerID uuid.UUID, req reqdto.UpdateAreaRequest) error {
	entity, err := req.ToDomain(areaID, ownerID)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := a.areaRepo.Update(ctx, a.db, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrAreaNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrDuplicateZip
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (a *areaUseCaseImpl) DeleteArea(ctx context.Context, areaID, ownerID uuid.UUID) error {
	if err := a.areaRepo.Delete(ctx, a.db, areaID, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAreaNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

package commands

import (
	"context"

	reqdto "servicebook/internal/handler/dto/request"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
)

type DiscountCommands interface {
	CreateDiscount(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateDiscountRequest) (uuid.UUID, error)
	UpdateDiscount(ctx context.Context, discountID, ownerID uuid.UUID, req reqdto.UpdateDiscountRequest) error
	DeleteDiscount(ctx context.Context, discountID, ownerID uuid.UUID) error
}

type discountUseCaseImpl struct {
	discountRepo DiscountRepository
	db           db.DBTX
}

func NewDiscountUseCase(discountRepo DiscountRepository, database db.DBTX) DiscountCommands {
	return &discountUseCaseImpl{discountRepo: discountRepo, db: database}
}

func (d *discountUseCaseImpl) CreateDiscount(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateDiscountRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain(ownerID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := d.discountRepo.Create(ctx, d.db, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateCode
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID, nil
}

func (d *discountUseCaseImpl) UpdateDiscount(ctx context.Context, discountID, ownerID uuid.UUID, req reqdto.UpdateDiscountRequest) error {
	entity, err := req.ToDomain(discountID, ownerID)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	if err := d.discountRepo.Update(ctx, d.db, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrDiscountNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return ErrDuplicateCode
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (d *discountUseCaseImpl) DeleteDiscount(ctx context.Context, discountID, ownerID uuid.UUID) error {
	if err := d.discountRepo.Delete(ctx, d.db, discountID, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDiscountNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

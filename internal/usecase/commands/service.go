package commands

import (
	"context"
	"errors"

	"servicebook/internal/domain/service"
	reqdto "servicebook/internal/handler/dto/request"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/pkg/errs"
	"servicebook/internal/usecase/queries"
	"servicebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogCommands interface {
	CreateService(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, serviceID, ownerID uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error)
	DeleteService(ctx context.Context, serviceID, ownerID uuid.UUID) error
	AddOption(ctx context.Context, serviceID, ownerID uuid.UUID, req reqdto.OptionRequest) (*queries.ServiceView, error)
	UpdateOption(ctx context.Context, optionID, serviceID, ownerID uuid.UUID, req reqdto.OptionRequest) (*queries.ServiceView, error)
	DeleteOption(ctx context.Context, optionID, serviceID, ownerID uuid.UUID) error
	ReorderOptions(ctx context.Context, serviceID, ownerID uuid.UUID, req reqdto.ReorderOptionsRequest) error
}

type catalogUseCaseImpl struct {
	serviceRepo    ServiceRepository
	optionRepo     OptionRepository
	catalogQueries queries.CatalogQueries
	db             db.DBTX
	tx             shared.TxRunner
}

func NewCatalogUseCase(
	serviceRepo ServiceRepository,
	optionRepo OptionRepository,
	catalogQueries queries.CatalogQueries,
	database db.DBTX,
	tx shared.TxRunner,
) CatalogCommands {
	return &catalogUseCaseImpl{
		serviceRepo:    serviceRepo,
		optionRepo:     optionRepo,
		catalogQueries: catalogQueries,
		db:             database,
		tx:             tx,
	}
}

func (c *catalogUseCaseImpl) CreateService(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateServiceRequest) (*queries.ServiceView, error) {
	svc, err := req.ToDomain(ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.serviceRepo.Create(ctx, c.db, svc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.catalogQueries.GetService(ctx, svc.ID, ownerID)
}

func (c *catalogUseCaseImpl) UpdateService(ctx context.Context, serviceID, ownerID uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error) {
	svc, err := req.ToDomain(serviceID, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.serviceRepo.Update(ctx, c.db, svc); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrServiceNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.catalogQueries.GetService(ctx, serviceID, ownerID)
}

// DeleteService removes the service and its options in one transaction so a
// half-deleted catalog entry can never be observed.
func (c *catalogUseCaseImpl) DeleteService(ctx context.Context, serviceID, ownerID uuid.UUID) error {
	err := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := c.serviceRepo.Delete(ctx, tx, serviceID, ownerID); err != nil {
			return err
		}
		return c.optionRepo.DeleteByService(ctx, tx, serviceID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogUseCaseImpl) AddOption(ctx context.Context, serviceID, ownerID uuid.UUID, req reqdto.OptionRequest) (*queries.ServiceView, error) {
	if err := c.verifyServiceOwner(ctx, serviceID, ownerID); err != nil {
		return nil, err
	}

	opt, err := req.ToDomain(serviceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.optionRepo.Create(ctx, c.db, opt); err != nil {
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrServiceNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.catalogQueries.GetService(ctx, serviceID, ownerID)
}

func (c *catalogUseCaseImpl) UpdateOption(ctx context.Context, optionID, serviceID, ownerID uuid.UUID, req reqdto.OptionRequest) (*queries.ServiceView, error) {
	if err := c.verifyServiceOwner(ctx, serviceID, ownerID); err != nil {
		return nil, err
	}

	opt, err := req.ToDomain(serviceID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	opt.ID = optionID

	if err := c.optionRepo.Update(ctx, c.db, opt); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrOptionNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateName
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.catalogQueries.GetService(ctx, serviceID, ownerID)
}

func (c *catalogUseCaseImpl) DeleteOption(ctx context.Context, optionID, serviceID, ownerID uuid.UUID) error {
	if err := c.verifyServiceOwner(ctx, serviceID, ownerID); err != nil {
		return err
	}

	if err := c.optionRepo.Delete(ctx, c.db, optionID, serviceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOptionNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// ReorderOptions rewrites display_order to match the submitted sequence.
// Every option of the service must appear exactly once; the whole rewrite is
// one transaction so concurrent readers never see a torn ordering.
func (c *catalogUseCaseImpl) ReorderOptions(ctx context.Context, serviceID, ownerID uuid.UUID, req reqdto.ReorderOptionsRequest) error {
	if err := c.verifyServiceOwner(ctx, serviceID, ownerID); err != nil {
		return err
	}

	err := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		existing, err := c.optionRepo.ListByService(ctx, tx, serviceID)
		if err != nil {
			return err
		}
		if err := validateReorder(existing, req.OptionIDs); err != nil {
			return err
		}
		for i, optionID := range req.OptionIDs {
			if err := c.optionRepo.UpdateDisplayOrder(ctx, tx, optionID, serviceID, i+1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOptionMismatch) {
			return err
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func validateReorder(existing []service.Option, submitted []uuid.UUID) error {
	if len(existing) != len(submitted) {
		return ErrOptionMismatch
	}
	known := make(map[uuid.UUID]bool, len(existing))
	for _, opt := range existing {
		known[opt.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(submitted))
	for _, id := range submitted {
		if !known[id] || seen[id] {
			return ErrOptionMismatch
		}
		seen[id] = true
	}
	return nil
}

func (c *catalogUseCaseImpl) verifyServiceOwner(ctx context.Context, serviceID, ownerID uuid.UUID) error {
	if _, err := c.serviceRepo.FindByIDForOwner(ctx, c.db, serviceID, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"servicebook/internal/domain/booking"
	"servicebook/internal/domain/discount"
	"servicebook/internal/domain/service"
	reqdto "servicebook/internal/handler/dto/request"
	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/pkg/clock"
	"servicebook/internal/pkg/errs"
	"servicebook/internal/usecase/queries"
	"servicebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const idempotencyTTL = 24 * time.Hour

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateBookingRequest, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	TransitionStatus(ctx context.Context, bookingID, ownerID uuid.UUID, req reqdto.TransitionBookingRequest) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	bookingRepo      BookingRepository
	serviceRepo      ServiceRepository
	optionRepo       OptionRepository
	areaRepo         AreaRepository
	discountRepo     DiscountRepository
	idempotencyRepo  IdempotencyRepository
	notificationRepo NotificationRepository
	bookingQueries   queries.BookingQueries
	db               db.DBTX
	tx               shared.TxRunner
	clock            clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	optionRepo OptionRepository,
	areaRepo AreaRepository,
	discountRepo DiscountRepository,
	idempotencyRepo IdempotencyRepository,
	notificationRepo NotificationRepository,
	bookingQueries queries.BookingQueries,
	database db.DBTX,
	tx shared.TxRunner,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:      bookingRepo,
		serviceRepo:      serviceRepo,
		optionRepo:       optionRepo,
		areaRepo:         areaRepo,
		discountRepo:     discountRepo,
		idempotencyRepo:  idempotencyRepo,
		notificationRepo: notificationRepo,
		bookingQueries:   bookingQueries,
		db:               database,
		tx:               tx,
		clock:            clk,
	}
}

func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	ownerID uuid.UUID,
	req reqdto.CreateBookingRequest,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := b.clock.Now().Add(idempotencyTTL)

	replayed, err := b.handleIdempotency(ctx, idempotencyKey, ownerID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateBookingResult{Booking: replayed, IsReplayed: true}, nil
	}

	view, err := b.createNewBooking(ctx, ownerID, req, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view, IsReplayed: false}, nil
}

func (b *bookingUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, ownerID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	claimed, err := b.idempotencyRepo.TryInsert(ctx, b.db, idempotencyKey, ownerID, "POST /bookings", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	existing, err := b.idempotencyRepo.Get(ctx, b.db, idempotencyKey, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyConflict
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed idempotency record missing booking id")
		}
		return b.bookingQueries.GetBookingSystem(ctx, *existing.ResultBookingID)

	case "processing":
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (b *bookingUseCaseImpl) createNewBooking(
	ctx context.Context,
	ownerID uuid.UUID,
	req reqdto.CreateBookingRequest,
	idempotencyKey uuid.UUID,
) (*queries.BookingView, error) {
	if _, err := b.areaRepo.FindCovered(ctx, b.db, ownerID, req.ZipCode); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrZipNotCovered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	serviceLines, options, err := b.loadCatalog(ctx, ownerID, req.Services)
	if err != nil {
		return nil, err
	}

	optionLines, err := b.validateOptions(options, req.Options)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, line := range serviceLines {
		subtotal = subtotal.Add(line.TotalPrice)
	}
	for _, line := range optionLines {
		subtotal = subtotal.Add(line.PriceImpact)
	}
	subtotal = subtotal.Round(2)

	discountEntity, discountAmount, err := b.resolveDiscount(ctx, ownerID, req.GetDiscountCode(), subtotal)
	if err != nil {
		return nil, err
	}

	var discountCode *string
	if discountEntity != nil {
		discountCode = &discountEntity.Code
	}

	entity, err := booking.NewBooking(ownerID, booking.Customer{
		Name:    req.CustomerName,
		Email:   req.CustomerEmail,
		Phone:   req.CustomerPhone,
		Address: req.CustomerAddress,
		ZipCode: req.ZipCode,
	}, req.ServiceDate, serviceLines, optionLines, discountCode, discountAmount, req.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return b.executeBookingTransaction(ctx, entity, discountEntity, idempotencyKey, ownerID)
}

func (b *bookingUseCaseImpl) loadCatalog(
	ctx context.Context,
	ownerID uuid.UUID,
	lines []reqdto.BookingServiceRequest,
) ([]booking.ServiceLine, map[uuid.UUID]*service.Option, error) {
	serviceLines := make([]booking.ServiceLine, 0, len(lines))
	serviceIDs := make([]uuid.UUID, 0, len(lines))

	for _, line := range lines {
		svc, err := b.serviceRepo.FindByIDForOwner(ctx, b.db, line.ServiceID, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, nil, ErrServiceNotFound
			}
			return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !svc.Bookable() {
			return nil, nil, ErrServiceNotBookable
		}

		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		serviceLine, err := booking.NewServiceLine(svc.ID, quantity, svc.Price)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrDomainValidation)
		}
		serviceLines = append(serviceLines, serviceLine)
		serviceIDs = append(serviceIDs, svc.ID)
	}

	byService, err := b.optionRepo.ListByServices(ctx, b.db, serviceIDs)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	options := make(map[uuid.UUID]*service.Option)
	for _, opts := range byService {
		for i := range opts {
			options[opts[i].ID] = &opts[i]
		}
	}
	return serviceLines, options, nil
}

// validateOptions checks every submitted value and every required option of
// the booked services, accumulating all field errors before failing so the
// customer sees the whole problem at once.
func (b *bookingUseCaseImpl) validateOptions(
	options map[uuid.UUID]*service.Option,
	submitted []reqdto.BookingOptionRequest,
) ([]booking.OptionLine, error) {
	values := make(map[uuid.UUID]string, len(submitted))
	for _, s := range submitted {
		if _, ok := options[s.OptionID]; !ok {
			return nil, ErrOptionMismatch
		}
		values[s.OptionID] = s.Value
	}

	var fieldErrors []service.FieldError
	for _, opt := range options {
		fieldErrors = append(fieldErrors, service.ValidateValue(opt, values[opt.ID])...)
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	var optionLines []booking.OptionLine
	for _, s := range submitted {
		if strings.TrimSpace(s.Value) == "" {
			continue
		}
		opt := options[s.OptionID]
		optionLines = append(optionLines, booking.OptionLine{
			ServiceOptionID: opt.ID,
			Value:           s.Value,
			PriceImpact:     service.ComputeImpact(opt, s.Value),
		})
	}
	return optionLines, nil
}

// resolveDiscount is a hard gate: an invalid code fails the booking rather
// than silently pricing without it.
func (b *bookingUseCaseImpl) resolveDiscount(
	ctx context.Context,
	ownerID uuid.UUID,
	code *string,
	subtotal decimal.Decimal,
) (*discount.Discount, decimal.Decimal, error) {
	if code == nil {
		return nil, decimal.Zero, nil
	}

	entity, err := b.discountRepo.FindByCode(ctx, b.db, ownerID, *code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, decimal.Zero, ErrDiscountNotFound
		}
		return nil, decimal.Zero, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := entity.ValidateAt(b.clock.Now()); err != nil {
		return nil, decimal.Zero, errs.Mark(err, ErrInvalidDiscount)
	}
	return entity, entity.ComputeAmount(subtotal), nil
}

func (b *bookingUseCaseImpl) executeBookingTransaction(
	ctx context.Context,
	entity *booking.Booking,
	discountEntity *discount.Discount,
	idempotencyKey, ownerID uuid.UUID,
) (*queries.BookingView, error) {
	err := b.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := b.bookingRepo.Create(ctx, tx, entity); err != nil {
			return err
		}
		if discountEntity != nil {
			if err := b.discountRepo.IncrementUsage(ctx, tx, discountEntity.ID); err != nil {
				return err
			}
		}
		if err := b.createNotificationJob(ctx, tx, "booking_created", entity.ID()); err != nil {
			return err
		}
		return b.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, ownerID, entity.ID())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindCheckViolated) {
			return nil, ErrDiscountExhausted
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := b.bookingQueries.GetBookingSystem(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingUseCaseImpl) TransitionStatus(
	ctx context.Context,
	bookingID, ownerID uuid.UUID,
	req reqdto.TransitionBookingRequest,
) (*queries.BookingView, error) {
	target := booking.Status(req.Status)
	if !target.IsValid() {
		return nil, ErrInvalidTransition
	}

	current, err := b.bookingRepo.StatusForOwner(ctx, b.db, bookingID, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !current.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	err = b.tx.RunInTx(ctx, func(tx db.DBTX) error {
		if err := b.bookingRepo.UpdateStatus(ctx, tx, bookingID, ownerID, target); err != nil {
			return err
		}
		return b.createNotificationJob(ctx, tx, "booking_status_changed", bookingID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return b.bookingQueries.GetBooking(ctx, bookingID, ownerID)
}

func (b *bookingUseCaseImpl) createNotificationJob(ctx context.Context, tx db.DBTX, topic string, bookingID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return b.notificationRepo.CreateJob(ctx, tx, "email", topic, payload, b.clock.Now())
}

func calculateRequestHash(req reqdto.CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

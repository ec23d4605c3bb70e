package commands

import (
	"fmt"
	"strings"

	"servicebook/internal/domain/service"
	"servicebook/internal/pkg/errs"
)

var (
	ErrServiceNotFound         = errs.New("service not found")
	ErrOptionNotFound          = errs.New("option not found")
	ErrAreaNotFound            = errs.New("service area not found")
	ErrDiscountNotFound        = errs.New("discount not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDuplicateName           = errs.New("name already in use")
	ErrDuplicateZip            = errs.New("zip code already registered")
	ErrDuplicateCode           = errs.New("discount code already in use")
	ErrServiceNotBookable      = errs.New("service is not bookable")
	ErrZipNotCovered           = errs.New("zip code not covered")
	ErrInvalidDiscount         = errs.New("discount cannot be redeemed")
	ErrDiscountExhausted       = errs.New("discount usage limit reached")
	ErrInvalidTransition       = errs.New("invalid booking status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrOptionMismatch          = errs.New("option does not belong to service")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyConflict     = errs.New("idempotency key reused with different request")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ValidationError carries everything wrong with a submitted booking form at
// once, so the customer can fix all fields in a single round trip.
type ValidationError struct {
	Fields []service.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

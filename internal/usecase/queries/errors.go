package queries

import "servicebook/internal/pkg/errs"

var (
	ErrServiceNotFound  = errs.New("service not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrZipNotCovered    = errs.New("zip code not covered")
	ErrInvalidZip       = errs.New("invalid zip code")
	ErrDiscountNotFound = errs.New("discount not found")
	ErrQueryFailed      = errs.New("query failed")
)

package area

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidZip = errors.New("zip code must match 12345 or 12345-6789")
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// ValidZip reports whether zip is a well-formed US ZIP or ZIP+4 code.
func ValidZip(zip string) bool {
	return zipPattern.MatchString(zip)
}

// Area is one ZIP code a business owner services. The owner may hold each ZIP
// at most once; an inactive area is treated as not covered.
type Area struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ZipCode   string
	Label     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(ownerID uuid.UUID, zip, label string) (*Area, error) {
	zip = strings.TrimSpace(zip)
	if !ValidZip(zip) {
		return nil, ErrInvalidZip
	}

	return &Area{
		ID:      uuid.New(),
		OwnerID: ownerID,
		ZipCode: zip,
		Label:   strings.TrimSpace(label),
		Active:  true,
	}, nil
}

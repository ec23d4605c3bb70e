package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("service name cannot be empty")
	ErrNegativePrice   = errors.New("service price cannot be negative")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrInvalidStatus   = errors.New("invalid service status")
)

// Service is one bookable offering owned by a business owner.
type Service struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	DurationMin int
	Icon        string
	ImageURL    string
	Category    string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewService(ownerID uuid.UUID, name, description string, price decimal.Decimal, durationMin int, icon, imageURL, category string, status Status) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if status == "" {
		status = StatusDraft
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return &Service{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		DurationMin: durationMin,
		Icon:        icon,
		ImageURL:    imageURL,
		Category:    strings.TrimSpace(category),
		Status:      status,
	}, nil
}

// Bookable reports whether the service may appear on the public form.
func (s *Service) Bookable() bool {
	return s.Status == StatusActive
}

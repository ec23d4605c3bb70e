package request

import (
	"servicebook/internal/domain/area"

	"github.com/google/uuid"
)

type CreateAreaRequest struct {
	ZipCode string `json:"zip_code" binding:"required"`
	Label   string `json:"label"`
}

func (r CreateAreaRequest) ToDomain(ownerID uuid.UUID) (*area.Area, error) {
	return area.New(ownerID, r.ZipCode, r.Label)
}

type UpdateAreaRequest struct {
	ZipCode string `json:"zip_code" binding:"required"`
	Label   string `json:"label"`
	Active  bool   `json:"active"`
}

func (r UpdateAreaRequest) ToDomain(areaID, ownerID uuid.UUID) (*area.Area, error) {
	a, err := area.New(ownerID, r.ZipCode, r.Label)
	if err != nil {
		return nil, err
	}
	a.ID = areaID
	a.Active = r.Active
	return a, nil
}

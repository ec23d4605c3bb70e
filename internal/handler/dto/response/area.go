package response

import (
	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AreaResponse struct {
	ID      uuid.UUID `json:"id"`
	ZipCode string    `json:"zipCode"`
	Label   string    `json:"label,omitempty"`
	Active  bool      `json:"active"`
}

type CoverageResponse struct {
	Covered bool   `json:"covered"`
	ZipCode string `json:"zipCode"`
	Label   string `json:"label,omitempty"`
}

func FromAreaView(v *queries.AreaView) *AreaResponse {
	return &AreaResponse{
		ID:      v.ID,
		ZipCode: v.ZipCode,
		Label:   v.Label,
		Active:  v.Active,
	}
}

func FromAreaViews(views []queries.AreaView) []*AreaResponse {
	out := make([]*AreaResponse, len(views))
	for i := range views {
		out[i] = FromAreaView(&views[i])
	}
	return out
}

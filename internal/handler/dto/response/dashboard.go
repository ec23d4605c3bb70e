package response

import (
	"time"

	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TopServiceResponse struct {
	ServiceID uuid.UUID       `json:"serviceId"`
	Name      string          `json:"name"`
	Bookings  int64           `json:"bookings"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type TrendPointResponse struct {
	Month    time.Time       `json:"month"`
	Bookings int64           `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type DashboardResponse struct {
	TotalBookings   int64                 `json:"totalBookings"`
	PendingBookings int64                 `json:"pendingBookings"`
	TotalRevenue    decimal.Decimal       `json:"totalRevenue"`
	ByStatus        []StatusCountResponse `json:"byStatus"`
	TopServices     []TopServiceResponse  `json:"topServices"`
	MonthlyTrend    []TrendPointResponse  `json:"monthlyTrend"`
	Recent          []*BookingResponse    `json:"recent"`
}

func FromDashboardView(v *queries.DashboardView) (*DashboardResponse, error) {
	recent, err := FromBookingViews(v.Recent)
	if err != nil {
		return nil, err
	}

	byStatus := make([]StatusCountResponse, len(v.ByStatus))
	for i, sc := range v.ByStatus {
		byStatus[i] = StatusCountResponse{Status: sc.Status, Count: sc.Count}
	}
	topServices := make([]TopServiceResponse, len(v.TopServices))
	for i, ts := range v.TopServices {
		topServices[i] = TopServiceResponse{ServiceID: ts.ServiceID, Name: ts.Name, Bookings: ts.Bookings, Revenue: ts.Revenue}
	}
	trend := make([]TrendPointResponse, len(v.MonthlyTrend))
	for i, tp := range v.MonthlyTrend {
		trend[i] = TrendPointResponse{Month: tp.Month, Bookings: tp.Bookings, Revenue: tp.Revenue}
	}

	return &DashboardResponse{
		TotalBookings:   v.TotalBookings,
		PendingBookings: v.PendingBookings,
		TotalRevenue:    v.TotalRevenue,
		ByStatus:        byStatus,
		TopServices:     topServices,
		MonthlyTrend:    trend,
		Recent:          recent,
	}, nil
}

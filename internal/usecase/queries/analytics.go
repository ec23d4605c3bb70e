package queries

import (
	"context"
	"time"

	"servicebook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	dashboardTopServices = 5
	dashboardTrendMonths = 6
	dashboardRecentLimit = 10
)

type AnalyticsReadStore interface {
	CountByStatus(ctx context.Context, ownerID uuid.UUID) ([]StatusCount, error)
	TotalRevenue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
	TopServices(ctx context.Context, ownerID uuid.UUID, limit int) ([]TopService, error)
	MonthlyTrend(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]TrendPoint, error)
	RecentBookings(ctx context.Context, ownerID uuid.UUID, limit int) ([]BookingView, error)
}

type AnalyticsQueries interface {
	Dashboard(ctx context.Context, ownerID uuid.UUID, now time.Time) (*DashboardView, error)
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
}

func NewAnalyticsQueries(store AnalyticsReadStore) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store}
}

func (q *analyticsQueriesImpl) Dashboard(ctx context.Context, ownerID uuid.UUID, now time.Time) (*DashboardView, error) {
	byStatus, err := q.store.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	var total, pending int64
	for _, sc := range byStatus {
		total += sc.Count
		if sc.Status == "pending" {
			pending = sc.Count
		}
	}

	revenue, err := q.store.TotalRevenue(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	top, err := q.store.TopServices(ctx, ownerID, dashboardTopServices)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	since := startOfMonth(now).AddDate(0, -(dashboardTrendMonths - 1), 0)
	trend, err := q.store.MonthlyTrend(ctx, ownerID, since)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	recent, err := q.store.RecentBookings(ctx, ownerID, dashboardRecentLimit)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &DashboardView{
		TotalBookings:   total,
		PendingBookings: pending,
		TotalRevenue:    revenue,
		ByStatus:        byStatus,
		TopServices:     top,
		MonthlyTrend:    trend,
		Recent:          recent,
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

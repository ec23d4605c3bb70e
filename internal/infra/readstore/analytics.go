package readstore

import (
	"context"
	"time"

	"servicebook/internal/infra"
	"servicebook/internal/infra/db"
	"servicebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsReadStore answers the owner dashboard aggregates. Revenue counts
// only bookings that were not cancelled.
type AnalyticsReadStore struct {
	db       db.DBTX
	bookings *BookingReadStore
}

func NewAnalyticsReadStore(database db.DBTX, bookings *BookingReadStore) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: database, bookings: bookings}
}

func (s *AnalyticsReadStore) CountByStatus(ctx context.Context, ownerID uuid.UUID) ([]queries.StatusCount, error) {
	const q = `SELECT status, COUNT(*) FROM bookings WHERE user_id = $1 GROUP BY status ORDER BY status`
	rows, err := s.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	defer rows.Close()

	var out []queries.StatusCount
	for rows.Next() {
		var sc queries.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read status counts", err)
	}
	return out, nil
}

func (s *AnalyticsReadStore) TotalRevenue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	const q = `
SELECT COALESCE(SUM(total_price), 0)::text
FROM bookings
WHERE user_id = $1 AND status <> 'cancelled'`
	var total string
	if err := s.db.QueryRow(ctx, q, ownerID).Scan(&total); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum revenue", err)
	}
	revenue, err := decimal.NewFromString(total)
	if err != nil {
		return decimal.Zero, infra.WrapRepoErr("invalid revenue total", err)
	}
	return revenue, nil
}

func (s *AnalyticsReadStore) TopServices(ctx context.Context, ownerID uuid.UUID, limit int) ([]queries.TopService, error) {
	const q = `
SELECT bs.service_id, COALESCE(s.name, ''), COUNT(DISTINCT bs.booking_id), COALESCE(SUM(bs.total_price), 0)::text
FROM booking_services bs
JOIN bookings b ON b.id = bs.booking_id
LEFT JOIN services s ON s.id = bs.service_id
WHERE b.user_id = $1 AND b.status <> 'cancelled'
GROUP BY bs.service_id, s.name
ORDER BY COUNT(DISTINCT bs.booking_id) DESC, SUM(bs.total_price) DESC
LIMIT $2`
	rows, err := s.db.Query(ctx, q, ownerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank services", err)
	}
	defer rows.Close()

	var out []queries.TopService
	for rows.Next() {
		var (
			ts      queries.TopService
			revenue string
		)
		if err := rows.Scan(&ts.ServiceID, &ts.Name, &ts.Bookings, &revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service ranking", err)
		}
		if ts.Revenue, err = decimal.NewFromString(revenue); err != nil {
			return nil, infra.WrapRepoErr("invalid service revenue", err)
		}
		out = append(out, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rankings", err)
	}
	return out, nil
}

func (s *AnalyticsReadStore) MonthlyTrend(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]queries.TrendPoint, error) {
	const q = `
SELECT date_trunc('month', service_date) AS month, COUNT(*), COALESCE(SUM(total_price), 0)::text
FROM bookings
WHERE user_id = $1 AND status <> 'cancelled' AND service_date >= $2
GROUP BY month
ORDER BY month`
	rows, err := s.db.Query(ctx, q, ownerID, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute monthly trend", err)
	}
	defer rows.Close()

	var out []queries.TrendPoint
	for rows.Next() {
		var (
			tp      queries.TrendPoint
			revenue string
		)
		if err := rows.Scan(&tp.Month, &tp.Bookings, &revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trend point", err)
		}
		if tp.Revenue, err = decimal.NewFromString(revenue); err != nil {
			return nil, infra.WrapRepoErr("invalid trend revenue", err)
		}
		out = append(out, tp)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read monthly trend", err)
	}
	return out, nil
}

func (s *AnalyticsReadStore) RecentBookings(ctx context.Context, ownerID uuid.UUID, limit int) ([]queries.BookingView, error) {
	return s.bookings.ListByOwner(ctx, ownerID, queries.BookingFilter{Limit: limit})
}

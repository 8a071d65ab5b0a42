package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dealflow/internal/models/db_models"
)

type StatusAggRow struct {
	Status db_models.DealStatus
	Count  int64
	Total  float64
}

type RevenueRow struct {
	Bucket string
	Sum    float64
}

type PlatformAggRow struct {
	Platform string
	Count    int64
}

type DashboardRepository interface {
	AggregateByStatus(ctx context.Context, userID uuid.UUID) ([]StatusAggRow, error)
	AggregateByPlatform(ctx context.Context, userID uuid.UUID) ([]PlatformAggRow, error)
	PaidRevenueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (float64, error)
	MonthlyPaidRevenue(ctx context.Context, userID uuid.UUID, since time.Time) ([]RevenueRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) AggregateByStatus(ctx context.Context, userID uuid.UUID) ([]StatusAggRow, error) {
	var rows []StatusAggRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Select("status, count(*) as count, coalesce(sum(price), 0) as total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *dashboardRepository) AggregateByPlatform(ctx context.Context, userID uuid.UUID) ([]PlatformAggRow, error) {
	var rows []PlatformAggRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Select("platform, count(*) as count").
		Where("user_id = ?", userID).
		Group("platform").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *dashboardRepository) PaidRevenueBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Select("coalesce(sum(price), 0)").
		Where("user_id = ? AND status = ? AND updated_at >= ? AND updated_at < ?",
			userID, db_models.StatusPaid, start.Unix(), end.Unix()).
		Scan(&total).Error

	return total, err
}

func (r *dashboardRepository) MonthlyPaidRevenue(ctx context.Context, userID uuid.UUID, since time.Time) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Select("to_char(to_timestamp(updated_at), 'YYYY-MM') as bucket, coalesce(sum(price), 0) as sum").
		Where("user_id = ? AND status = ? AND updated_at >= ?",
			userID, db_models.StatusPaid, since.Unix()).
		Group("bucket").
		Order("bucket asc").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

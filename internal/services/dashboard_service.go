package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dealflow/internal/models/response_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildSummary(ctx context.Context, userID uuid.UUID) (*response_models.DashboardSummary, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
	profileRepo   repositories.ProfileRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository, profileRepo repositories.ProfileRepository) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		profileRepo:   profileRepo,
	}
}

func (s *DashboardService) BuildSummary(ctx context.Context, userID uuid.UUID) (*response_models.DashboardSummary, error) {
	rows, err := s.dashboardRepo.AggregateByStatus(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byStatus := make(map[string]response_models.StatusBreakdown, len(rows))
	var totalCount int64
	var totalValue float64
	for _, r := range rows {
		byStatus[string(r.Status)] = response_models.StatusBreakdown{
			Count: r.Count,
			Total: r.Total,
		}
		totalCount += r.Count
		totalValue += r.Total
	}
	var avgDealSize float64
	if totalCount > 0 {
		avgDealSize = totalValue / float64(totalCount)
	}

	platformRows, err := s.dashboardRepo.AggregateByPlatform(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byPlatform := make(map[string]int64, len(platformRows))
	for _, r := range platformRows {
		byPlatform[r.Platform] = r.Count
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthRevenue, err := s.dashboardRepo.PaidRevenueBetween(ctx, userID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	seriesRows, err := s.dashboardRepo.MonthlyPaidRevenue(ctx, userID, monthStart.AddDate(-1, 0, 0))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	series := make([]response_models.SeriesPoint, 0, len(seriesRows))
	for _, r := range seriesRows {
		series = append(series, response_models.SeriesPoint{Bucket: r.Bucket, Value: r.Sum})
	}

	var revenueGoal float64
	if profile, err := s.profileRepo.FindByAccountID(ctx, userID); err == nil && profile != nil {
		revenueGoal = profile.RevenueGoal
	}

	return &response_models.DashboardSummary{
		ByStatus:      byStatus,
		AvgDealSize:   avgDealSize,
		ByPlatform:    byPlatform,
		MonthRevenue:  monthRevenue,
		RevenueGoal:   revenueGoal,
		RevenueSeries: series,
	}, nil
}

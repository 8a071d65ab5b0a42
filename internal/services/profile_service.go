package services

import (
	"context"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
	"dealflow/internal/models/request_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

type ProfileServiceInterface interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.Profile, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*db_models.Profile, error) {
	profile, err := s.profileRepo.FindByAccountID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrNotFoundOrForbidden
	}
	return profile, nil
}

func (s *ProfileService) UpdateSettings(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*db_models.Profile, error) {
	// Only settings columns: admission status and the admin flag can never
	// travel through this path.
	profile, err := s.profileRepo.UpsertSettings(ctx, userID, map[string]interface{}{
		"full_name":        request.FullName,
		"payment_details":  request.PaymentDetails,
		"bank_name":        request.BankName,
		"account_number":   request.AccountNumber,
		"routing_number":   request.RoutingNumber,
		"instagram_handle": request.InstagramHandle,
		"tiktok_handle":    request.TiktokHandle,
		"revenue_goal":     request.RevenueGoal,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return profile, nil
}

package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

// AdmissionService drives the signup gate: pending -> approved | rejected,
// both terminal. Every action re-checks the caller's admin flag against the
// database; a client-asserted role is never trusted.
type AdmissionServiceInterface interface {
	ListPendingApplications(ctx context.Context, adminID uuid.UUID) ([]db_models.Profile, error)
	ApproveApplication(ctx context.Context, adminID, applicantID uuid.UUID) error
	RejectApplication(ctx context.Context, adminID, applicantID uuid.UUID) error
}

type AdmissionService struct {
	profileRepo repositories.ProfileRepository
	mailService IMailService
}

func NewAdmissionService(profileRepo repositories.ProfileRepository, mailService IMailService) AdmissionServiceInterface {
	return &AdmissionService{
		profileRepo: profileRepo,
		mailService: mailService,
	}
}

func (s *AdmissionService) requireAdmin(ctx context.Context, adminID uuid.UUID) error {
	profile, err := s.profileRepo.FindByAccountID(ctx, adminID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if profile == nil || !profile.IsAdmin {
		return utils.ErrNotFoundOrForbidden
	}
	return nil
}

func (s *AdmissionService) ListPendingApplications(ctx context.Context, adminID uuid.UUID) ([]db_models.Profile, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	profiles, err := s.profileRepo.ListPending(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return profiles, nil
}

func (s *AdmissionService) ApproveApplication(ctx context.Context, adminID, applicantID uuid.UUID) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	affected, err := s.profileRepo.SetApplicationStatus(ctx, applicantID, db_models.ApplicationApproved)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}

	// The approval is the durable fact; the welcome email is advisory and
	// its failure never rolls the transition back.
	applicant, err := s.profileRepo.FindByAccountID(ctx, applicantID)
	if err == nil && applicant != nil && applicant.Email != "" {
		if sendErr := s.mailService.SendWelcomeEmail(applicant.Email, applicant.FullName); sendErr != nil {
			log.Printf("Welcome email failed (non-critical) for %s: %v", applicant.Email, sendErr)
		}
	}

	return nil
}

func (s *AdmissionService) RejectApplication(ctx context.Context, adminID, applicantID uuid.UUID) error {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return err
	}

	affected, err := s.profileRepo.SetApplicationStatus(ctx, applicantID, db_models.ApplicationRejected)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}

	return nil
}

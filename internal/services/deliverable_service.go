package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

// DeliverableService re-derives parent-deal ownership on every operation.
// Authenticating the caller alone is not enough: a deliverable id from a
// different user's deal must look exactly like a missing one.
type DeliverableServiceInterface interface {
	AddDeliverable(ctx context.Context, userID, dealID uuid.UUID, label string) (*db_models.Deliverable, error)
	ToggleDeliverable(ctx context.Context, userID, id uuid.UUID, completed bool) error
	UpdateProof(ctx context.Context, userID, id uuid.UUID, proof string) error
	DeleteDeliverable(ctx context.Context, userID, id uuid.UUID) error
	ListForDeal(ctx context.Context, userID, dealID uuid.UUID) ([]db_models.Deliverable, error)
}

type DeliverableService struct {
	deliverableRepo repositories.DeliverableRepository
}

func NewDeliverableService(deliverableRepo repositories.DeliverableRepository) DeliverableServiceInterface {
	return &DeliverableService{deliverableRepo: deliverableRepo}
}

func (s *DeliverableService) AddDeliverable(ctx context.Context, userID, dealID uuid.UUID, label string) (*db_models.Deliverable, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("%w: label is required", utils.ErrValidation)
	}

	owned, err := s.deliverableRepo.DealExistsForUser(ctx, dealID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !owned {
		return nil, utils.ErrNotFoundOrForbidden
	}

	deliverable := &db_models.Deliverable{
		DealID: dealID,
		Label:  label,
	}
	if err := s.deliverableRepo.Insert(ctx, deliverable); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return deliverable, nil
}

func (s *DeliverableService) ToggleDeliverable(ctx context.Context, userID, id uuid.UUID, completed bool) error {
	affected, err := s.deliverableRepo.Toggle(ctx, id, userID, completed)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}
	return nil
}

func (s *DeliverableService) UpdateProof(ctx context.Context, userID, id uuid.UUID, proof string) error {
	affected, err := s.deliverableRepo.UpdateProof(ctx, id, userID, proof)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}
	return nil
}

func (s *DeliverableService) DeleteDeliverable(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := s.deliverableRepo.Delete(ctx, id, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}
	return nil
}

func (s *DeliverableService) ListForDeal(ctx context.Context, userID, dealID uuid.UUID) ([]db_models.Deliverable, error) {
	owned, err := s.deliverableRepo.DealExistsForUser(ctx, dealID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !owned {
		return nil, utils.ErrNotFoundOrForbidden
	}

	deliverables, err := s.deliverableRepo.ListForDeal(ctx, dealID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return deliverables, nil
}

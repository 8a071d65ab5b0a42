package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"dealflow/internal/models/db_models"
	"dealflow/internal/models/request_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

// defaultDeliverables is the checklist seeded onto every new deal.
var defaultDeliverables = []string{
	"Draft submitted",
	"Content posted",
	"Proof uploaded",
}

type DealServiceInterface interface {
	CreateDeal(ctx context.Context, userID uuid.UUID, request request_models.DealRequest) (*db_models.Deal, error)
	UpdateDeal(ctx context.Context, userID, dealID uuid.UUID, request request_models.DealRequest) (*db_models.Deal, error)
	UpdateDealStatus(ctx context.Context, userID, dealID uuid.UUID, status string) error
	DeleteDeal(ctx context.Context, userID, dealID uuid.UUID) error
	ListDeals(ctx context.Context, userID uuid.UUID) ([]db_models.Deal, error)
	GetDeal(ctx context.Context, userID, dealID uuid.UUID) (*db_models.Deal, error)
}

type DealService struct {
	dealRepo        repositories.DealRepository
	deliverableRepo repositories.DeliverableRepository
}

func NewDealService(dealRepo repositories.DealRepository, deliverableRepo repositories.DeliverableRepository) DealServiceInterface {
	return &DealService{
		dealRepo:        dealRepo,
		deliverableRepo: deliverableRepo,
	}
}

// dealFields is the well-typed result of coercing the raw form input.
type dealFields struct {
	BrandName    string
	ContactEmail string
	Price        float64
	Status       db_models.DealStatus
	Platform     string
	DueDate      *time.Time
}

// parseDealFields is the single coercion step for the deal form: it either
// yields a fully typed record or a validation error naming the bad field.
func parseDealFields(request request_models.DealRequest) (*dealFields, error) {
	brandName := strings.TrimSpace(request.BrandName)
	if brandName == "" {
		return nil, fmt.Errorf("%w: brand name is required", utils.ErrValidation)
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(request.Price), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a number", utils.ErrValidation)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", utils.ErrValidation)
	}

	status := db_models.DealStatus(request.Status)
	if status == "" {
		status = db_models.StatusLead
	}
	if !db_models.ValidDealStatus(status) {
		return nil, fmt.Errorf("%w: status must be lead, working or paid", utils.ErrValidation)
	}

	platform := strings.TrimSpace(request.Platform)
	if platform == "" {
		platform = "Instagram"
	}

	var dueDate *time.Time
	if request.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", request.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due date must be YYYY-MM-DD", utils.ErrValidation)
		}
		dueDate = &parsed
	}

	return &dealFields{
		BrandName:    brandName,
		ContactEmail: strings.TrimSpace(request.ContactEmail),
		Price:        price,
		Status:       status,
		Platform:     platform,
		DueDate:      dueDate,
	}, nil
}

func (s *DealService) CreateDeal(ctx context.Context, userID uuid.UUID, request request_models.DealRequest) (*db_models.Deal, error) {
	fields, err := parseDealFields(request)
	if err != nil {
		return nil, err
	}

	// Owner is always the caller, never a client-supplied field.
	deal := &db_models.Deal{
		UserID:       userID,
		BrandName:    fields.BrandName,
		ContactEmail: fields.ContactEmail,
		Price:        fields.Price,
		Status:       fields.Status,
		Platform:     fields.Platform,
		DueDate:      fields.DueDate,
	}

	if err := s.dealRepo.Insert(ctx, deal); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Seeding the checklist is a convenience, not an invariant: a failure
	// here leaves the deal in place with an empty checklist.
	seeds := make([]db_models.Deliverable, 0, len(defaultDeliverables))
	for _, label := range defaultDeliverables {
		seeds = append(seeds, db_models.Deliverable{DealID: deal.ID, Label: label})
	}
	if err := s.deliverableRepo.InsertBatch(ctx, seeds); err != nil {
		log.Printf("Failed to seed default deliverables for deal %s: %v", deal.ID, err)
	}

	return deal, nil
}

func (s *DealService) UpdateDeal(ctx context.Context, userID, dealID uuid.UUID, request request_models.DealRequest) (*db_models.Deal, error) {
	fields, err := parseDealFields(request)
	if err != nil {
		return nil, err
	}

	affected, err := s.dealRepo.UpdateFields(ctx, dealID, userID, map[string]interface{}{
		"brand_name":    fields.BrandName,
		"contact_email": fields.ContactEmail,
		"price":         fields.Price,
		"status":        fields.Status,
		"platform":      fields.Platform,
		"due_date":      fields.DueDate,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if affected == 0 {
		return nil, utils.ErrNotFoundOrForbidden
	}

	return s.dealRepo.FindByIDForUser(ctx, dealID, userID)
}

func (s *DealService) UpdateDealStatus(ctx context.Context, userID, dealID uuid.UUID, status string) error {
	newStatus := db_models.DealStatus(status)
	if !db_models.ValidDealStatus(newStatus) {
		return fmt.Errorf("%w: status must be lead, working or paid", utils.ErrValidation)
	}

	affected, err := s.dealRepo.UpdateStatus(ctx, dealID, userID, newStatus)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}

	return nil
}

func (s *DealService) DeleteDeal(ctx context.Context, userID, dealID uuid.UUID) error {
	affected, err := s.dealRepo.DeleteWithDeliverables(ctx, dealID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotFoundOrForbidden
	}

	return nil
}

func (s *DealService) ListDeals(ctx context.Context, userID uuid.UUID) ([]db_models.Deal, error) {
	deals, err := s.dealRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return deals, nil
}

func (s *DealService) GetDeal(ctx context.Context, userID, dealID uuid.UUID) (*db_models.Deal, error) {
	deal, err := s.dealRepo.FindByIDForUser(ctx, dealID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if deal == nil {
		return nil, utils.ErrNotFoundOrForbidden
	}
	return deal, nil
}

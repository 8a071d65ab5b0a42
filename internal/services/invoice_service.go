package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"dealflow/internal/models/response_models"
	"dealflow/internal/repositories"
	"dealflow/pkg/utils"
)

type InvoiceServiceInterface interface {
	GetInvoice(ctx context.Context, userID, dealID uuid.UUID) (*response_models.InvoiceResponse, error)
	// SendInvoice exists purely to dispatch the email, so unlike every
	// other notification in the system a failed send fails the operation.
	SendInvoice(ctx context.Context, userID, dealID uuid.UUID, recipient string) error
}

type InvoiceService struct {
	dealRepo    repositories.DealRepository
	profileRepo repositories.ProfileRepository
	mailService IMailService
}

func NewInvoiceService(
	dealRepo repositories.DealRepository,
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
) InvoiceServiceInterface {
	return &InvoiceService{
		dealRepo:    dealRepo,
		profileRepo: profileRepo,
		mailService: mailService,
	}
}

func (s *InvoiceService) GetInvoice(ctx context.Context, userID, dealID uuid.UUID) (*response_models.InvoiceResponse, error) {
	deal, err := s.dealRepo.FindByIDForUser(ctx, dealID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if deal == nil {
		return nil, utils.ErrNotFoundOrForbidden
	}

	profile, err := s.profileRepo.FindByAccountID(ctx, deal.UserID)
	if err != nil {
		log.Printf("Failed to load payout profile for invoice %s: %v", dealID, err)
	}

	return &response_models.InvoiceResponse{Deal: *deal, Profile: profile}, nil
}

func (s *InvoiceService) SendInvoice(ctx context.Context, userID, dealID uuid.UUID, recipient string) error {
	deal, err := s.dealRepo.FindByIDForUser(ctx, dealID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if deal == nil {
		return utils.ErrNotFoundOrForbidden
	}

	var senderName, paymentDetails string
	if profile, err := s.profileRepo.FindByAccountID(ctx, userID); err == nil && profile != nil {
		senderName = profile.FullName
		paymentDetails = profile.PaymentDetails
	}

	err = s.mailService.SendInvoiceEmail(recipient, InvoiceEmailData{
		SenderName:     senderName,
		BrandName:      deal.BrandName,
		Price:          deal.Price,
		PaymentDetails: paymentDetails,
		InvoiceID:      deal.ID.String(),
	})
	if err != nil {
		log.Printf("Invoice email failed for deal %s: %v", dealID, err)
		return utils.ErrDispatchFailed
	}

	return nil
}

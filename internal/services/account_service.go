package services

import (
	"context"
	"log"
	"strings"
	"time"

	"dealflow/internal/models/db_models"
	"dealflow/internal/models/request_models"
	"dealflow/internal/models/response_models"
	"dealflow/internal/repositories"
	mem "dealflow/pkg/memcache"
	"dealflow/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	// SubmitApplication creates the account plus a pending admission
	// profile; the new user cannot do anything until an admin approves.
	SubmitApplication(ctx context.Context, request request_models.ApplyRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
	tokens      *utils.TokenMaker
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
	tokens *utils.TokenMaker,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		mailService: mailService,
		resetTokens: resetTokens,
		tokens:      tokens,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	// Admin flag comes from the profile row so the client can route to the
	// admin screen; authorization itself is re-checked on every admin call.
	isAdmin := false
	if profile, err := a.profileRepo.FindByAccountID(ctx, account.ID); err == nil && profile != nil {
		isAdmin = profile.IsAdmin
	}

	return &response_models.LoginResponse{Token: token, IsAdmin: isAdmin}, nil
}

func (a *AccountService) SubmitApplication(ctx context.Context, request request_models.ApplyRequest) error {
	email := strings.TrimSpace(request.Email)

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	profile := &db_models.Profile{
		FullName:            request.FullName,
		InstagramHandle:     request.Instagram,
		TiktokHandle:        request.Tiktok,
		SocialHandle:        socialSummary(request),
		BrandDealsCount:     request.BrandDealsCount,
		BiggestDealSize:     request.BiggestDealSize,
		IsAgencyRepresented: request.IsAgencyRepresented,
		ApplicationStatus:   db_models.ApplicationPending,
	}

	if err := a.accountRepo.InsertWithProfile(ctx, account, profile); err != nil {
		if err == utils.ErrEmailAlreadyExists {
			return err
		}
		return utils.ErrDatabaseError
	}

	return nil
}

// socialSummary consolidates the social fields into one display line,
// e.g. "IG: @jane, YT: janedoe".
func socialSummary(r request_models.ApplyRequest) string {
	parts := make([]string, 0, 4)
	if r.Instagram != "" {
		parts = append(parts, "IG: "+r.Instagram)
	}
	if r.Tiktok != "" {
		parts = append(parts, "TT: "+r.Tiktok)
	}
	if r.Youtube != "" {
		parts = append(parts, "YT: "+r.Youtube)
	}
	if r.Website != "" {
		parts = append(parts, "Web: "+r.Website)
	}
	return strings.Join(parts, ", ")
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// The caller always gets a generic "if the email exists" answer.
		return nil
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Failed to send reset email to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	email := a.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordByEmail(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

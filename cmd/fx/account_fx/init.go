package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dealflow/internal/repositories"
	"dealflow/internal/services"
	mem "dealflow/pkg/memcache"
	"dealflow/pkg/utils"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	tokens *utils.TokenMaker,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, profileRepo, mailService, resetTokens, tokens)
}

package invoice_fx

import (
	"go.uber.org/fx"

	"dealflow/internal/repositories"
	"dealflow/internal/services"
)

var Module = fx.Provide(provideInvoiceService)

func provideInvoiceService(
	dealRepo repositories.DealRepository,
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
) services.InvoiceServiceInterface {
	return services.NewInvoiceService(dealRepo, profileRepo, mailService)
}

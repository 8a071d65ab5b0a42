package admission_fx

import (
	"go.uber.org/fx"

	"dealflow/internal/repositories"
	"dealflow/internal/services"
)

var Module = fx.Provide(provideAdmissionService)

func provideAdmissionService(
	profileRepo repositories.ProfileRepository,
	mailService services.IMailService,
) services.AdmissionServiceInterface {
	return services.NewAdmissionService(profileRepo, mailService)
}

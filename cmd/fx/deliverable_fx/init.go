package deliverable_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dealflow/internal/repositories"
	"dealflow/internal/services"
)

var Module = fx.Provide(provideDeliverableRepo, provideDeliverableService)

func provideDeliverableRepo(db *gorm.DB) repositories.DeliverableRepository {
	return repositories.NewDeliverableRepository(db)
}

func provideDeliverableService(deliverableRepo repositories.DeliverableRepository) services.DeliverableServiceInterface {
	return services.NewDeliverableService(deliverableRepo)
}

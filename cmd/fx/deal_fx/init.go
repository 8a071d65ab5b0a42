package deal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dealflow/internal/repositories"
	"dealflow/internal/services"
)

var Module = fx.Provide(provideDealRepo, provideDealService)

func provideDealRepo(db *gorm.DB) repositories.DealRepository {
	return repositories.NewDealRepository(db)
}

func provideDealService(
	dealRepo repositories.DealRepository,
	deliverableRepo repositories.DeliverableRepository,
) services.DealServiceInterface {
	return services.NewDealService(dealRepo, deliverableRepo)
}

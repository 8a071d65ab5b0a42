package controllers_fx

import (
	"go.uber.org/fx"

	"dealflow/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDealController),
	fx.Provide(controllers.NewDeliverableController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewAdmissionController),
	fx.Provide(controllers.NewInvoiceController),
	fx.Provide(controllers.NewDashboardController),
)

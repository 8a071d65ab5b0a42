package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dealflow/cmd/fx/account_fx"
	"dealflow/cmd/fx/admission_fx"
	"dealflow/cmd/fx/config_fx"
	"dealflow/cmd/fx/controllers_fx"
	"dealflow/cmd/fx/dashboard_fx"
	"dealflow/cmd/fx/db_fx"
	"dealflow/cmd/fx/deal_fx"
	"dealflow/cmd/fx/deliverable_fx"
	"dealflow/cmd/fx/invoice_fx"
	"dealflow/cmd/fx/mail_fx"
	"dealflow/cmd/fx/memcache_fx"
	"dealflow/cmd/fx/profile_fx"
	"dealflow/internal/api/controllers"
	"dealflow/pkg/config"
	"dealflow/pkg/middleware"
	"dealflow/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		profile_fx.Module,
		account_fx.Module,
		deal_fx.Module,
		deliverable_fx.Module,
		admission_fx.Module,
		invoice_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.App) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tokens *utils.TokenMaker,
	accountController *controllers.AccountController,
	dealController *controllers.DealController,
	deliverableController *controllers.DeliverableController,
	profileController *controllers.ProfileController,
	admissionController *controllers.AdmissionController,
	invoiceController *controllers.InvoiceController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens,
		accountController, dealController, deliverableController,
		profileController, admissionController, invoiceController,
		dashboardController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	tokens *utils.TokenMaker,
	accountController *controllers.AccountController,
	dealController *controllers.DealController,
	deliverableController *controllers.DeliverableController,
	profileController *controllers.ProfileController,
	admissionController *controllers.AdmissionController,
	invoiceController *controllers.InvoiceController,
	dashboardController *controllers.DashboardController,
) {
	accounts := r.Group("/accounts")
	accounts.POST("/apply", accountController.Apply)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(tokens))

	deals := authed.Group("/deals")
	deals.POST("", dealController.CreateDeal)
	deals.GET("", dealController.ListDeals)
	deals.GET("/board", dealController.GetBoard)
	deals.PUT("/:id", dealController.UpdateDeal)
	deals.PATCH("/:id/status", dealController.UpdateDealStatus)
	deals.DELETE("/:id", dealController.DeleteDeal)
	deals.POST("/:id/deliverables", deliverableController.AddDeliverable)
	deals.GET("/:id/deliverables", deliverableController.ListForDeal)

	deliverables := authed.Group("/deliverables")
	deliverables.PATCH("/:id/toggle", deliverableController.ToggleDeliverable)
	deliverables.PATCH("/:id/proof", deliverableController.UpdateProof)
	deliverables.DELETE("/:id", deliverableController.DeleteDeliverable)

	profiles := authed.Group("/profiles")
	profiles.GET("/me", profileController.GetMyProfile)
	profiles.PUT("/me", profileController.UpdateSettings)

	admin := authed.Group("/admin")
	admin.GET("/applications", admissionController.ListPending)
	admin.POST("/applications/:id/approve", admissionController.Approve)
	admin.POST("/applications/:id/reject", admissionController.Reject)

	invoices := authed.Group("/invoices")
	invoices.GET("/:id", invoiceController.GetInvoice)
	invoices.POST("/:id/send", invoiceController.SendInvoice)

	dashboard := authed.Group("/dashboard")
	dashboard.GET("/summary", dashboardController.GetSummary)
}

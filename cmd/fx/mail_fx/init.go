package mail_fx

import (
	"go.uber.org/fx"

	"dealflow/internal/services"
	"dealflow/pkg/config"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.App) services.IMailService {
	return services.NewMailService(services.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.AppName,
		UseSSL:   cfg.SMTPPort == 465,

		AppName:    cfg.AppName,
		AppBaseURL: cfg.AppBaseURL,
	})
}

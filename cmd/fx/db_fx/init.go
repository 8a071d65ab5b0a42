package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dealflow/internal/infra"
	"dealflow/pkg/config"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg config.App) *gorm.DB {
	return infra.InitPostgresql(cfg.PostgresURL)
}

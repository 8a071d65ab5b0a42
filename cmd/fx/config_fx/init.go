package config_fx

import (
	"log"
	"time"

	"go.uber.org/fx"

	"dealflow/pkg/config"
	"dealflow/pkg/utils"
)

var Module = fx.Provide(provideConfig, provideTokenMaker)

func provideConfig() config.App {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func provideTokenMaker(cfg config.App) *utils.TokenMaker {
	return utils.NewTokenMaker(cfg.JWTSecret, time.Duration(cfg.JWTExpireMin)*time.Minute)
}

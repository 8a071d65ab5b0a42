package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port        string `envconfig:"PORT" default:"8080"`
	PostgresURL string `envconfig:"POSTGRES_URL" required:"true"`

	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	// SMTP. An empty password switches the mail service to the local
	// simulated-send fallback so state transitions never depend on the
	// email provider being reachable.
	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"SMTP_USERNAME"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"no-reply@dealflow.app"`

	AppName    string `envconfig:"APP_NAME" default:"DealFlow"`
	AppBaseURL string `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

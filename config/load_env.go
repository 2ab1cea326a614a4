package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Debug("No .env file found, using OS environment", slog.String("file", envFile))
	}
}

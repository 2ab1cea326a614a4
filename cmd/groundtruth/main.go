package main

import (
	"log/slog"
	"os"

	"github.com/spacesedan/groundtruth/config"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("[Main] groundtruth failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

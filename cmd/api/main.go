package main

import (
	"log"

	"registration-backend/internal/bootstrap"
	"registration-backend/internal/shared/config"
	"registration-backend/internal/shared/server"
	"registration-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("api starting", map[string]any{
		"addr":  addr,
		"env":   cfg.Env,
		"store": cfg.ObjectStoreType,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

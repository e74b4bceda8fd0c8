// Package server runs the reference API for the POS dashboards: the REST
// contract over Postgres plus the push-event publisher.
package server

import (
	"context"
	"fmt"
	"net/http"

	"resto-pos/internal/config"
	"resto-pos/internal/connections/database"
	"resto-pos/internal/connections/rabbitmq"
	"resto-pos/internal/httpx"
	"resto-pos/internal/logger"
	"resto-pos/internal/server/handlers"
	"resto-pos/internal/server/repository"
	"resto-pos/internal/server/service"
)

func Run(ctx context.Context, cfg config.Config) error {
	lg := logger.New("api-server")
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	rmq, err := rabbitmq.Dial(cfg.Rabbit)
	if err != nil {
		return fmt.Errorf("rabbitmq: %w", err)
	}
	defer rmq.Close()
	lg.Info("connected", map[string]any{"exchange": rmq.Exchange()})

	repo := repository.New(db)
	svc := service.New(repo, &amqpPublisher{client: rmq}, cfg.HTTP.JWTSecret, lg)

	mux := http.NewServeMux()
	handlers.New(svc).Routes(mux)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	lg.Info("listening", map[string]any{"addr": addr})
	return httpx.New(addr, mux).Run(ctx)
}

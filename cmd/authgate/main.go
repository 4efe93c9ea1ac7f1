package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/porterhq/authgate"
	fiberadapter "github.com/porterhq/authgate/adapters/fiber"
	pgxadapter "github.com/porterhq/authgate/adapters/pgx"
	"github.com/porterhq/authgate/internal/config"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	secret, err := cfg.DecodeSecret()
	if err != nil {
		log.Error("failed to decode signing secret", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error("failed to create connection pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.New())

	auth, err := authgate.New(authgate.Config{
		Secret:   secret,
		TokenTTL: cfg.TokenTTL,
		Store:    pgxadapter.New(pool),
		HTTP:     fiberadapter.NewWithLogger(app, log),
	})
	if err != nil {
		log.Error("failed to assemble auth core", "error", err)
		os.Exit(1)
	}

	log.Info("starting authgate", "addr", cfg.ListenAddr, "token_ttl", auth.Codec.TTL())

	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

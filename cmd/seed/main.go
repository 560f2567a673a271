// seed наполняет базу демонстрационными данными для локальной разработки:
// пользователи josh и dorrie, пять треков и четыре ссылки.
// С флагом -reset схема предварительно пересоздаётся (goose down-to 0 + up).
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pribylovaa/go-tracks-api/internal/config"
	"github.com/pribylovaa/go-tracks-api/internal/password"
	"github.com/pribylovaa/go-tracks-api/internal/service"
	"github.com/pribylovaa/go-tracks-api/internal/storage/postgres"
	"github.com/pribylovaa/go-tracks-api/internal/token"
)

func main() {
	var (
		configPath string
		reset      bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&reset, "reset", false, "drop and recreate schema before seeding")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	str, err := postgres.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()

	if reset {
		err = str.Reset(ctx)
	} else {
		err = str.Migrate(ctx)
	}
	if err != nil {
		log.Error("seed_schema_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Пароли хэшируются тем же Hasher, что и в сервере.
	srvc := service.New(str, password.New(cfg.Password), token.NewIssuer(cfg.Auth))

	if err := seed(ctx, srvc); err != nil {
		log.Error("seed_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("seed_done", slog.Bool("reset", reset))
}

package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/api"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/config"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/database"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/migrations"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/seed"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	seed.LoadInventory(db, cfg.InventoryCSV, logger)

	handler := api.New(store.New(db), cfg.Secret, logger)

	logger.Info().Str("port", cfg.HTTPPort).Msg("healthcare dashboard server starting")
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

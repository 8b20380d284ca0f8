package main

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-web-scaffold/internal/app"
	"github.com/MKhiriev/go-web-scaffold/internal/logger"
)

// devAddress is where the development server listens. Loopback only: this
// process is for local work and is never meant to be reachable from outside.
const devAddress = "127.0.0.1:5000"

func main() {
	log := logger.NewConsoleLogger("web-scaffold-dev")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Err(err).Msg("error loading .env file")
	}

	application, err := app.New("", log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}

	log.Info().Str("address", devAddress).Msg("development server listening")
	log.Info().Msg("restart the process to pick up code changes (or run it under a file watcher)")

	srv := &http.Server{
		Addr:    devAddress,
		Handler: application,
	}
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("development server stopped")
	}
}

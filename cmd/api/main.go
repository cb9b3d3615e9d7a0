package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kerem/notesphere/internal/pkg/logger"
	"github.com/kerem/notesphere/internal/server"
)

// @title NoteSphere API
// @version 1.0
// @description API for the NoteSphere course-note sharing platform

// @host localhost:4000
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
